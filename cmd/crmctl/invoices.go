package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/editor"
	"github.com/jhoicas/Facturacion-api/internal/application/listing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func invoicesCommand() *cli.Command {
	newFlags := append(itemFlags(),
		&cli.StringFlag{Name: "customer", Usage: "ID del cliente", Required: true},
		&cli.StringFlag{Name: "number", Usage: "número (por defecto el siguiente sugerido)"},
		&cli.StringFlag{Name: "due", Usage: "vencimiento YYYY-MM-DD"},
	)
	editFlags := append(itemFlags(),
		&cli.StringFlag{Name: "customer", Usage: "ID del cliente"},
		&cli.StringFlag{Name: "due", Usage: "vencimiento YYYY-MM-DD"},
		&cli.IntSliceFlag{Name: "remove-line", Usage: "posición (desde 1) a eliminar (repetible)"},
	)
	return &cli.Command{
		Name:    "invoices",
		Aliases: []string{"i"},
		Usage:   "gestionar facturas",
		Subcommands: []*cli.Command{
			{Name: "list", Usage: "listar facturas", Action: listInvoices},
			{Name: "show", Usage: "ver factura con líneas", ArgsUsage: "ID", Action: showInvoice},
			{Name: "new", Usage: "crear factura", Flags: newFlags, Action: newInvoice},
			{Name: "edit", Usage: "editar factura", ArgsUsage: "ID", Flags: editFlags, Action: editInvoice},
			{Name: "from-quotation", Usage: "generar factura borrador desde una cotización", ArgsUsage: "QUOTATION_ID", Action: invoiceFromQuotation},
			{Name: "delete", Usage: "eliminar factura", ArgsUsage: "ID", Flags: []cli.Flag{yesFlag}, Action: deleteInvoice},
			{Name: "pdf", Usage: "descargar PDF", ArgsUsage: "ID", Flags: []cli.Flag{&cli.StringFlag{Name: "out", Aliases: []string{"o"}}}, Action: invoicePDF},
		},
	}
}

func listInvoices(c *cli.Context) error {
	rows, err := listing.Invoices(c.Context, clientFrom(c))
	if err != nil {
		return err
	}
	return printRows(c, rows, "DUE")
}

func showInvoice(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	e := editor.NewInvoiceEditor(clientFrom(c), loggerFrom(c))
	if err := e.Load(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s  %s  %s  customer=%s\n", e.Header.InvoiceNumber, e.Header.Date, e.Header.Status, e.Header.CustomerID)
	return printLines(c, e.Lines(), e.Total())
}

func applyInvoiceHeader(c *cli.Context, e *editor.InvoiceEditor) error {
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
	if v := c.String("due"); v != "" {
		due, err := entity.ParseDate(v)
		if err != nil {
			return err
		}
		e.Header.DueDate = &due
	}
	return nil
}

func newInvoice(c *cli.Context) error {
	e := editor.NewInvoiceEditor(clientFrom(c), loggerFrom(c))
	e.New(c.Context)
	if v := c.String("number"); v != "" {
		e.Header.InvoiceNumber = v
	}
	if err := applyInvoiceHeader(c, e); err != nil {
		return err
	}
	if err := applyItems(c, e, true); err != nil {
		return err
	}
	if err := e.Save(c.Context); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s %s total %s\n", e.ID, e.Header.InvoiceNumber, e.Total().StringFixed(2))
	return nil
}

func editInvoice(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	e := editor.NewInvoiceEditor(clientFrom(c), loggerFrom(c))
	if err := e.Load(c.Context, id); err != nil {
		return err
	}
	if err := applyInvoiceHeader(c, e); err != nil {
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

func invoiceFromQuotation(c *cli.Context) error {
	id, err := requireArg(c, "QUOTATION_ID")
	if err != nil {
		return err
	}
	invoiceID, err := clientFrom(c).InvoiceFromQuotation(c.Context, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, invoiceID)
	return nil
}

func deleteInvoice(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	if !confirmDelete(c, "invoice") {
		return nil
	}
	if err := clientFrom(c).DeleteInvoice(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "eliminado")
	return nil
}

func invoicePDF(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	data, err := clientFrom(c).InvoicePDF(c.Context, id)
	if err != nil {
		return err
	}
	return writePDF(c, data, "invoice_"+id+".pdf")
}
