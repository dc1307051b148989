package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/pkg/money"
)

var serviceFlags = []cli.Flag{
	&cli.StringFlag{Name: "name", Usage: "nombre (requerido)"},
	&cli.StringFlag{Name: "description"},
	&cli.StringFlag{Name: "price", Usage: "precio unitario", Value: "0"},
	&cli.StringFlag{Name: "unit", Usage: "unidad (por defecto unit)"},
}

func servicesCommand() *cli.Command {
	return &cli.Command{
		Name:    "services",
		Aliases: []string{"s"},
		Usage:   "gestionar el catálogo de servicios",
		Subcommands: []*cli.Command{
			{Name: "list", Usage: "listar servicios", Action: listServices},
			{Name: "add", Usage: "crear servicio", Flags: serviceFlags, Action: addService},
			{Name: "update", Usage: "actualizar servicio", ArgsUsage: "ID", Flags: serviceFlags, Action: updateService},
			{Name: "delete", Usage: "eliminar servicio", ArgsUsage: "ID", Flags: []cli.Flag{yesFlag}, Action: deleteService},
		},
	}
}

func serviceRequest(c *cli.Context) (dto.ServiceRequest, error) {
	price, err := decimal.NewFromString(c.String("price"))
	if err != nil {
		return dto.ServiceRequest{}, fmt.Errorf("precio inválido %q", c.String("price"))
	}
	return dto.ServiceRequest{
		Name:        c.String("name"),
		Description: optional(c.String("description")),
		UnitPrice:   price,
		Unit:        c.String("unit"),
	}, nil
}

func listServices(c *cli.Context) error {
	list, err := clientFrom(c).ListServices(c.Context)
	if err != nil {
		return err
	}
	w := table(c.App.Writer)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tUNIT")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, money.Format(s.UnitPrice), s.Unit)
	}
	return w.Flush()
}

func addService(c *cli.Context) error {
	in, err := serviceRequest(c)
	if err != nil {
		return err
	}
	id, err := clientFrom(c).CreateService(c.Context, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, id)
	return nil
}

func updateService(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	in, err := serviceRequest(c)
	if err != nil {
		return err
	}
	if err := clientFrom(c).UpdateService(c.Context, id, in); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "actualizado")
	return nil
}

func deleteService(c *cli.Context) error {
	id, err := requireArg(c, "ID")
	if err != nil {
		return err
	}
	if !confirmDelete(c, "service") {
		return nil
	}
	if err := clientFrom(c).DeleteService(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "eliminado")
	return nil
}
