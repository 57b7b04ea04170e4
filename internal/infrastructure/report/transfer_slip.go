package report

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cmms-inventario/internal/domain/repository"
)

// Layout A4 del comprobante:
//
//	┌──────────────────────────────────────────────────┐
//	│  Empresa / planta         │  Traslado N° + Fecha │
//	│  ORIGEN → DESTINO  ·  responsable  ·  estado     │
//	│  TABLA: Código | Repuesto | Cant | C.Unit | Subt │
//	│  Totales                                         │
//	│  Notas  ·  QR  ·  firmas entrega / recibe        │
//	└──────────────────────────────────────────────────┘

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// TransferSlipRenderer genera el comprobante de traslado con Maroto v2.
type TransferSlipRenderer struct {
	issuer string // nombre que aparece en la cabecera (APP_NAME)
}

// NewTransferSlipRenderer construye el generador.
func NewTransferSlipRenderer(issuer string) *TransferSlipRenderer {
	return &TransferSlipRenderer{issuer: issuer}
}

// RenderTransferSlip genera el PDF y devuelve sus bytes.
func (r *TransferSlipRenderer) RenderTransferSlip(_ context.Context, t *repository.TransferView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Traslado %d", t.ID), true).
		WithAuthor(r.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(slipHeaderRow(r.issuer, t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(routeRow(t))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(t.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(slipTotalsRow(t.Items))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(t)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

func slipHeaderRow(issuer string, t *repository.TransferView) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(issuer, "Mantenimiento"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario de repuestos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE TRASLADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", t.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+t.TransferDate.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func routeRow(t *repository.TransferView) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("ORIGEN → DESTINO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s → %s", t.FromLocationName, t.ToLocationName), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Responsable: %s   |   Estado: %s",
				nonEmpty(t.TransferredByName, "—"), t.Status,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Repuesto", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("Costo unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func itemRows(items []repository.TransferItemView) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		unit, subtotal := "—", "—"
		if it.UnitCost != nil {
			unit = "$" + formatMoney(it.UnitCost.StringFixed(0))
			subtotal = "$" + formatMoney(it.UnitCost.Mul(decimal.NewFromInt(it.Quantity)).StringFixed(0))
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(it.PartCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(it.PartName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(unit, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(subtotal, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func slipTotalsRow(items []repository.TransferItemView) core.Row {
	var units int64
	total := decimal.Zero
	for _, it := range items {
		units += it.Quantity
		if it.UnitCost != nil {
			total = total.Add(it.UnitCost.Mul(decimal.NewFromInt(it.Quantity)))
		}
	}
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: colorPrimary})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(label("Unidades:"), text.New("Valor trasladado:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6,
		})),
		col.New(3).Add(value(fmt.Sprintf("%d", units)), text.New("$"+formatMoney(total.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 6, Color: colorPrimary,
		})),
	)
}

func footerRows(t *repository.TransferView) []core.Row {
	var rows []core.Row
	if t.Notes != "" {
		rows = append(rows, row.New(12).Add(col.New(12).Add(
			text.New("Notas", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(t.Notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		)))
	}
	rows = append(rows,
		row.New(35).Add(
			col.New(3).Add(code.NewQr(fmt.Sprintf("TRASLADO:%d", t.ID), props.Rect{Percent: 90, Center: true})),
			col.New(9).Add(text.New(
				"Este comprobante acompaña el movimiento físico de los repuestos listados.\n"+
					"Verifique cantidades al recibir y firme en el espacio correspondiente.",
				props.Text{Size: 8, Top: 4, Left: 3, Color: colorGray},
			)),
		),
		row.New(18).Add(
			col.New(6).Add(text.New("______________________________\nEntrega", props.Text{
				Size: 8, Align: align.Center, Top: 8,
			})),
			col.New(6).Add(text.New("______________________________\nRecibe", props.Text{
				Size: 8, Align: align.Center, Top: 8,
			})),
		),
	)
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "-1000000" → "-1.000.000"
func formatMoney(s string) string {
	sign := ""
	if len(s) > 0 && s[0] == '-' {
		sign, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + string(buf)
}
