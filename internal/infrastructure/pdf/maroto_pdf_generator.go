// Package pdf genera la versión imprimible de cotizaciones y facturas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  QUOTATION / INVOICE          │  N° documento + fechas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: nombre, empresa, contacto, dirección              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Descripción | Cant. | P.Unit | Total                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  NOTAS                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	// Issuer nombre que firma el documento (APP_NAME).
	Issuer string
}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{Issuer: issuer}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(_ context.Context, doc billing.PrintableDocument) ([]byte, error) {
	title := documentTitle(doc.Kind)
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("%s %s", title, doc.Number), true).
		WithAuthor(g.Issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc.Customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))
	if doc.Notes != nil && strings.TrimSpace(*doc.Notes) != "" {
		m.AddRows(notesRows(*doc.Notes)...)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func documentTitle(kind string) string {
	if kind == billing.DocumentKindInvoice {
		return "INVOICE"
	}
	return "QUOTATION"
}

func dueLabel(kind string) string {
	if kind == billing.DocumentKindInvoice {
		return "Due date"
	}
	return "Valid until"
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tipo de documento (izq) y número, fechas y estado (der).
func headerRow(title string, doc billing.PrintableDocument) core.Row {
	due := "—"
	if doc.DueDate != nil && !doc.DueDate.IsZero() {
		due = doc.DueDate.String()
	}
	return row.New(22).Add(
		col.New(6).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Color: colorPrimary, Top: 1,
			}),
			text.New("Status: "+strings.ToUpper(doc.Status), props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(nonEmpty(doc.Number, "—"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Date: "+nonEmpty(doc.Date.String(), "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New(dueLabel(doc.Kind)+": "+due, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente; vacío si la referencia no existe.
func customerRow(c *entity.Customer) core.Row {
	name, company, contact, address := "—", "", "", ""
	if c != nil {
		name = c.Name
		company = deref(c.Company)
		contact = strings.Trim(strings.Join([]string{deref(c.Email), deref(c.Phone)}, "   |   "), " |")
		address = deref(c.Address)
	}
	return row.New(22).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(company, props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New(contact, props.Text{Size: 8, Top: 15, Color: colorGray}),
			text.New(address, props.Text{Size: 8, Top: 19, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 2, align.Center),
		h("Unit price", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableLineRows: una fila por línea, en el orden del documento.
func tableLineRows(lines []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				nonEmpty(l.Description, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money.Quantity(l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(l.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalRow(doc billing.PrintableDocument) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(money.Format(doc.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func notesRows(notes string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("NOTES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, l := range strings.Split(notes, "\n") {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 8, Color: colorGray, Top: 0.5}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
