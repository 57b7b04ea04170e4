package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cmms-inventario/internal/domain/entity"
	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

func TestWriteBalances(t *testing.T) {
	price := decimal.RequireFromString("12.50")
	rows := []repository.BalanceView{
		{
			Balance:  entity.Balance{ID: 1, PartID: 1, LocationID: 7, InStock: 10, TotalReceived: 12, TotalConsumption: 2},
			PartCode: "P-001", PartName: "Rodamiento 6204", UnitOfIssue: "UND", UnitPrice: &price,
			MinimumQuantity: 5, Criticality: entity.CriticalityHigh,
		},
		{
			Balance:  entity.Balance{ID: 2, PartID: 2, LocationID: 7, InStock: 3, TotalReceived: 3},
			PartCode: "Q-001", PartName: "Correa A42", UnitOfIssue: "UND",
		},
	}
	w := NewBalanceSheetWriter()
	w.now = func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }

	data, err := w.WriteBalances(context.Background(), "Almacén central", rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(balanceSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Saldos de inventario: Almacén central", title)

	header, _ := f.GetCellValue(balanceSheet, "A4")
	assert.Equal(t, "Código", header)

	code, _ := f.GetCellValue(balanceSheet, "A5")
	stock, _ := f.GetCellValue(balanceSheet, "D5")
	value, _ := f.GetCellValue(balanceSheet, "J5")
	assert.Equal(t, "P-001", code)
	assert.Equal(t, "10", stock)
	assert.Equal(t, "125", value)

	totalLabel, _ := f.GetCellValue(balanceSheet, "A7")
	totalStock, _ := f.GetCellValue(balanceSheet, "D7")
	assert.Equal(t, "Totales", totalLabel)
	assert.Equal(t, "13", totalStock)
}

func TestWriteBalances_SinFilas(t *testing.T) {
	data, err := NewBalanceSheetWriter().WriteBalances(context.Background(), "Vacía", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	label, _ := f.GetCellValue(balanceSheet, "A5")
	assert.Equal(t, "Totales", label)
}

func TestRenderTransferSlip(t *testing.T) {
	cost := decimal.RequireFromString("15000")
	view := &repository.TransferView{
		TransferHeader: entity.TransferHeader{
			ID: 42, TransferDate: time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC),
			FromLocationID: 1, ToLocationID: 2, Status: entity.TransferStatusCompleted, Notes: "Urgente",
		},
		FromLocationName:  "Almacén central",
		ToLocationName:    "Taller planta 2",
		TransferredByName: "Técnico de turno",
		Items: []repository.TransferItemView{
			{PartID: 1, PartCode: "P-001", PartName: "Rodamiento", Quantity: 4, UnitCost: &cost},
			{PartID: 2, PartCode: "Q-001", PartName: "Correa", Quantity: 1},
		},
	}

	data, err := NewTransferSlipRenderer("Planta Norte").RenderTransferSlip(context.Background(), view)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"999":      "999",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"-1000000": "-1.000.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}
