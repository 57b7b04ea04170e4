// Package report genera los documentos descargables del inventario:
// planilla de saldos por ubicación (xlsx) y comprobante de traslado (PDF).
package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

const balanceSheet = "Saldos"

var balanceHeaders = []string{
	"Código", "Repuesto", "Unidad", "En stock", "Total recibido",
	"Total consumido", "Mínimo", "Criticidad", "Precio unitario", "Valor en stock",
}

var balanceWidths = []float64{14, 40, 10, 12, 15, 16, 10, 12, 16, 16}

// BalanceSheetWriter escribe la planilla de saldos con excelize.
type BalanceSheetWriter struct {
	now func() time.Time
}

// NewBalanceSheetWriter construye el generador.
func NewBalanceSheetWriter() *BalanceSheetWriter {
	return &BalanceSheetWriter{now: time.Now}
}

// WriteBalances genera un libro con una hoja "Saldos": título, cabecera, una fila por saldo
// y una fila de totales.
func (w *BalanceSheetWriter) WriteBalances(_ context.Context, locationName string, rows []repository.BalanceView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", balanceSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo título: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo totales: %w", err)
	}

	_ = f.SetCellValue(balanceSheet, "A1", "Saldos de inventario: "+locationName)
	_ = f.SetCellValue(balanceSheet, "A2", "Generado "+w.now().Format("02/01/2006 15:04"))
	_ = f.SetCellStyle(balanceSheet, "A1", "A1", titleStyle)

	const headerRow = 4
	for i, h := range balanceHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		_ = f.SetCellValue(balanceSheet, cell, h)
		_ = f.SetCellStyle(balanceSheet, cell, cell, headerStyle)
	}

	var inStock, received, consumed int64
	var stockValue float64
	row := headerRow + 1
	for _, b := range rows {
		price := 0.0
		if b.UnitPrice != nil {
			price = b.UnitPrice.InexactFloat64()
		}
		value := price * float64(b.InStock)
		values := []any{
			b.PartCode, b.PartName, b.UnitOfIssue, b.InStock, b.TotalReceived,
			b.TotalConsumption, b.MinimumQuantity, b.Criticality, price, value,
		}
		for i, v := range values {
			col, _ := excelize.ColumnNumberToName(i + 1)
			_ = f.SetCellValue(balanceSheet, fmt.Sprintf("%s%d", col, row), v)
		}
		inStock += b.InStock
		received += b.TotalReceived
		consumed += b.TotalConsumption
		stockValue += value
		row++
	}

	_ = f.SetCellValue(balanceSheet, fmt.Sprintf("A%d", row), "Totales")
	_ = f.SetCellValue(balanceSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%d repuestos", len(rows)))
	_ = f.SetCellValue(balanceSheet, fmt.Sprintf("D%d", row), inStock)
	_ = f.SetCellValue(balanceSheet, fmt.Sprintf("E%d", row), received)
	_ = f.SetCellValue(balanceSheet, fmt.Sprintf("F%d", row), consumed)
	_ = f.SetCellValue(balanceSheet, fmt.Sprintf("J%d", row), stockValue)
	_ = f.SetCellStyle(balanceSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), totalStyle)

	for i, width := range balanceWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(balanceSheet, col, col, width)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
