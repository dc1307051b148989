package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/listing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

// lineEditor operaciones de líneas comunes a QuotationEditor e InvoiceEditor.
type lineEditor interface {
	Len() int
	Line(i int) (entity.LineItem, error)
	Lines() []entity.LineItem
	AddLine()
	RemoveLine(i int) bool
	SetDescription(i int, s string) error
	SetQuantity(i int, q decimal.Decimal) error
	SetUnitPrice(i int, p decimal.Decimal) error
	SelectServiceByID(i int, serviceID string) error
	Total() decimal.Decimal
}

func itemFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "item", Usage: `línea libre "descripción:cantidad:precio" (repetible)`},
		&cli.StringSliceFlag{Name: "service", Usage: `línea desde el catálogo "SERVICE_ID[:cantidad]" (repetible)`},
		&cli.StringFlag{Name: "notes"},
		&cli.StringFlag{Name: "status"},
		&cli.StringFlag{Name: "date", Usage: "YYYY-MM-DD (por defecto hoy)"},
	}
}

// nextLine devuelve la línea a rellenar: la primera si sigue en blanco, si no agrega una.
func nextLine(e lineEditor, fresh *bool) int {
	if *fresh {
		*fresh = false
		return 0
	}
	e.AddLine()
	return e.Len() - 1
}

// applyItems agrega las líneas de --service e --item. fresh indica que la línea 0
// es la línea en blanco de un documento nuevo y se reutiliza.
func applyItems(c *cli.Context, e lineEditor, fresh bool) error {
	for _, spec := range c.StringSlice("service") {
		id, qty, err := parseServiceSpec(spec)
		if err != nil {
			return err
		}
		i := nextLine(e, &fresh)
		if err := e.SetQuantity(i, qty); err != nil {
			return err
		}
		if err := e.SelectServiceByID(i, id); err != nil {
			return err
		}
	}
	for _, spec := range c.StringSlice("item") {
		desc, qty, price, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		i := nextLine(e, &fresh)
		if err := e.SetDescription(i, desc); err != nil {
			return err
		}
		if err := e.SetQuantity(i, qty); err != nil {
			return err
		}
		if err := e.SetUnitPrice(i, price); err != nil {
			return err
		}
	}
	return nil
}

// parseItemSpec interpreta "descripción:cantidad:precio"; la descripción puede contener ":".
func parseItemSpec(spec string) (string, decimal.Decimal, decimal.Decimal, error) {
	last := strings.LastIndex(spec, ":")
	if last < 0 {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("línea inválida %q: se espera descripción:cantidad:precio", spec)
	}
	mid := strings.LastIndex(spec[:last], ":")
	if mid < 0 {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("línea inválida %q: se espera descripción:cantidad:precio", spec)
	}
	qty, err := decimal.NewFromString(strings.TrimSpace(spec[mid+1 : last]))
	if err != nil {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("cantidad inválida en %q", spec)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(spec[last+1:]))
	if err != nil {
		return "", decimal.Zero, decimal.Zero, fmt.Errorf("precio inválido en %q", spec)
	}
	return strings.TrimSpace(spec[:mid]), qty, price, nil
}

// parseServiceSpec interpreta "SERVICE_ID[:cantidad]"; sin cantidad usa 1.
func parseServiceSpec(spec string) (string, decimal.Decimal, error) {
	id, qtyStr, found := strings.Cut(spec, ":")
	qty := decimal.NewFromInt(1)
	if found {
		q, err := decimal.NewFromString(strings.TrimSpace(qtyStr))
		if err != nil {
			return "", decimal.Zero, fmt.Errorf("cantidad inválida en %q", spec)
		}
		qty = q
	}
	return strings.TrimSpace(id), qty, nil
}

// removeLines elimina las posiciones de --remove-line (base 1), de mayor a menor.
func removeLines(c *cli.Context, e lineEditor) {
	positions := c.IntSlice("remove-line")
	for k := len(positions) - 1; k >= 0; k-- {
		if !e.RemoveLine(positions[k] - 1) {
			fmt.Fprintf(c.App.ErrWriter, "no se eliminó la línea %d\n", positions[k])
		}
	}
}

func printRows(c *cli.Context, rows []listing.Row, dueLabel string) error {
	w := table(c.App.Writer)
	fmt.Fprintf(w, "ID\tNUMBER\tCUSTOMER\tDATE\t%s\tSTATUS\tTOTAL\n", dueLabel)
	for _, r := range rows {
		due := ""
		if r.Due != nil {
			due = r.Due.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", r.ID, r.Number, r.CustomerName, r.Date.String(), due, r.Status, money.Format(r.Total))
	}
	return w.Flush()
}

func printLines(c *cli.Context, lines []entity.LineItem, total decimal.Decimal) error {
	w := table(c.App.Writer)
	fmt.Fprintln(w, "#\tDESCRIPTION\tQTY\tUNIT PRICE\tTOTAL")
	for i, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, l.Description, money.Quantity(l.Quantity), money.Format(l.UnitPrice), money.Format(l.Total))
	}
	fmt.Fprintf(w, "\t\t\tTOTAL\t%s\n", money.Format(total))
	return w.Flush()
}

func parseDateFlag(c *cli.Context) (*entity.Date, error) {
	v := strings.TrimSpace(c.String("date"))
	if v == "" {
		return nil, nil
	}
	d, err := entity.ParseDate(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func writePDF(c *cli.Context, data []byte, fallback string) error {
	out := c.String("out")
	if out == "" {
		out = fallback
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, out)
	return nil
}
