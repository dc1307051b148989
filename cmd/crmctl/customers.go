package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

var customerFlags = []cli.Flag{
	&cli.StringFlag{Name: "name", Usage: "nombre (requerido)"},
	&cli.StringFlag{Name: "email"},
	&cli.StringFlag{Name: "phone"},
	&cli.StringFlag{Name: "company"},
	&cli.StringFlag{Name: "address"},
}

func customersCommand() *cli.Command {
	return &cli.Command{
		Name:    "customers",
		Aliases: []string{"c"},
		Usage:   "gestionar clientes",
		Subcommands: []*cli.Command{
			{Name: "list", Usage: "listar clientes", Action: listCustomers},
			{Name: "add", Usage: "crear cliente", Flags: customerFlags, Action: addCustomer},
			{Name: "update", Usage: "actualizar cliente", ArgsUsage: "ID", Flags: customerFlags, Action: updateCustomer},
			{Name: "delete", Usage: "eliminar cliente", ArgsUsage: "ID", Flags: []cli.Flag{yesFlag}, Action: deleteCustomer},
		},
	}
}

func customerRequest(c *cli.Context) dto.CustomerRequest {
	return dto.CustomerRequest{
		Name:    c.String("name"),
		Email:   optional(c.String("email")),
		Phone:   optional(c.String("phone")),
		Company: optional(c.String("company")),
		Address: optional(c.String("address")),
	}
}

func listCustomers(c *cli.Context) error {
	list, err := clientFrom(c).ListCustomers(c.Context)
	if err != nil {
		return err
	}
	printCustomers(c, list)
	return nil
}

func printCustomers(c *cli.Context, list []entity.Customer) {
	w := table(c.App.Writer)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tCOMPANY")
	for _, cu := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", cu.ID, cu.Name, deref(cu.Email), deref(cu.Phone), deref(cu.Company))
	}
	_ = w.Flush()
}

func addCustomer(c *cli.Context) error {
	id, err := clientFrom(c).CreateCustomer(c.Context, customerRequest(c))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, id)
	return nil
}

func updateCustomer(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	if err := clientFrom(c).UpdateCustomer(c.Context, id, customerRequest(c)); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "actualizado")
	return nil
}

func deleteCustomer(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	if !confirmDelete(c, "customer") {
		return nil
	}
	if err := clientFrom(c).DeleteCustomer(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "eliminado")
	return nil
}
