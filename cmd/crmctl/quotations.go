package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/editor"
	"github.com/jhoicas/Facturacion-api/internal/application/listing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func quotationsCommand() *cli.Command {
	newFlags := append(itemFlags(),
		&cli.StringFlag{Name: "customer", Usage: "ID del cliente", Required: true},
		&cli.StringFlag{Name: "number", Usage: "número (por defecto el siguiente sugerido)"},
		&cli.StringFlag{Name: "valid-until", Usage: "YYYY-MM-DD"},
	)
	editFlags := append(itemFlags(),
		&cli.StringFlag{Name: "customer", Usage: "ID del cliente"},
		&cli.IntSliceFlag{Name: "remove-line", Usage: "posición (desde 1) a eliminar (repetible)"},
	)
	return &cli.Command{
		Name:    "quotations",
		Aliases: []string{"q"},
		Usage:   "gestionar cotizaciones",
		Subcommands: []*cli.Command{
			{Name: "list", Usage: "listar cotizaciones", Action: listQuotations},
			{Name: "show", Usage: "ver cotización con líneas", ArgsUsage: "ID", Action: showQuotation},
			{Name: "new", Usage: "crear cotización", Flags: newFlags, Action: newQuotation},
			{Name: "edit", Usage: "editar cotización", ArgsUsage: "ID", Flags: editFlags, Action: editQuotation},
			{Name: "delete", Usage: "eliminar cotización", ArgsUsage: "ID", Flags: []cli.Flag{yesFlag}, Action: deleteQuotation},
			{Name: "pdf", Usage: "descargar PDF", ArgsUsage: "ID", Flags: []cli.Flag{&cli.StringFlag{Name: "out", Aliases: []string{"o"}}}, Action: quotationPDF},
		},
	}
}

func listQuotations(c *cli.Context) error {
	rows, err := listing.Quotations(c.Context, clientFrom(c))
	if err != nil {
		return err
	}
	return printRows(c, rows, "VALID UNTIL")
}

func showQuotation(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	e := editor.NewQuotationEditor(clientFrom(c), loggerFrom(c))
	if err := e.Load(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s  %s  %s  customer=%s\n", e.Header.QuotationNumber, e.Header.Date, e.Header.Status, e.Header.CustomerID)
	return printLines(c, e.Lines(), e.Total())
}

func applyQuotationHeader(c *cli.Context, e *editor.QuotationEditor) error {
	if v := c.String("customer"); v != "" {
		e.Header.CustomerID = v
	}
	if v := c.String("status"); v != "" {
		e.Header.Status = v
	}
	if v := c.String("notes"); v != "" {
		e.Header.Notes = optional(v)
	}
	d, err := parseDateFlag(c)
	if err != nil {
		return err
	}
	if d != nil {
		e.Header.Date = d
	}
	return nil
}

func newQuotation(c *cli.Context) error {
	e := editor.NewQuotationEditor(clientFrom(c), loggerFrom(c))
	e.New(c.Context)
	if v := c.String("number"); v != "" {
		e.Header.QuotationNumber = v
	}
	if err := applyQuotationHeader(c, e); err != nil {
		return err
	}
	if v := c.String("valid-until"); v != "" {
		d, err := entity.ParseDate(v)
		if err != nil {
			return err
		}
		e.Header.ValidUntil = &d
	}
	if err := applyItems(c, e, true); err != nil {
		return err
	}
	if err := e.Save(c.Context); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s %s total %s\n", e.ID, e.Header.QuotationNumber, e.Total().StringFixed(2))
	return nil
}

func editQuotation(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	e := editor.NewQuotationEditor(clientFrom(c), loggerFrom(c))
	if err := e.Load(c.Context, id); err != nil {
		return err
	}
	if err := applyQuotationHeader(c, e); err != nil {
		return err
	}
	removeLines(c, e)
	if err := applyItems(c, e, false); err != nil {
		return err
	}
	if err := e.Save(c.Context); err != nil {
		return err
	}
	return printLines(c, e.Lines(), e.Total())
}

func deleteQuotation(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	if !confirmDelete(c, "quotation") {
		return nil
	}
	if err := clientFrom(c).DeleteQuotation(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "eliminado")
	return nil
}

func quotationPDF(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	data, err := clientFrom(c).QuotationPDF(c.Context, id)
	if err != nil {
		return err
	}
	return writePDF(c, data, "quotation_"+id+".pdf")
}
