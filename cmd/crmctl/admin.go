package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/editor"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "conteos del tablero",
		Action: func(c *cli.Context) error {
			s, err := clientFrom(c).Stats(c.Context)
			if err != nil {
				return err
			}
			w := table(c.App.Writer)
			fmt.Fprintf(w, "customers\t%d\n", s.Customers)
			fmt.Fprintf(w, "services\t%d\n", s.Services)
			fmt.Fprintf(w, "quotations\t%d\n", s.Quotations)
			fmt.Fprintf(w, "invoices\t%d\n", s.Invoices)
			return w.Flush()
		},
	}
}

func healthCommand() *cli.Command {
	return &cli.Command{
		Name:  "health",
		Usage: "estado de la API y la base de datos",
		Action: func(c *cli.Context) error {
			h, err := clientFrom(c).Health(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s (database %s)\n", h.Status, h.Database)
			return nil
		},
	}
}

// seedCommand carga datos de ejemplo: un cliente, un servicio y una cotización.
func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "cargar datos de ejemplo",
		Action: func(c *cli.Context) error {
			api := clientFrom(c)
			customerID, err := api.CreateCustomer(c.Context, dto.CustomerRequest{
				Name:    "Acme",
				Email:   optional("billing@acme.example"),
				Company: optional("Acme Inc."),
			})
			if err != nil {
				return err
			}
			serviceID, err := api.CreateService(c.Context, dto.ServiceRequest{
				Name:      "Consulting",
				UnitPrice: decimal.NewFromInt(100),
				Unit:      "hour",
			})
			if err != nil {
				return err
			}

			e := editor.NewQuotationEditor(api, loggerFrom(c))
			e.New(c.Context)
			e.Header.CustomerID = customerID
			if err := e.SetQuantity(0, decimal.NewFromInt(2)); err != nil {
				return err
			}
			if err := e.SelectServiceByID(0, serviceID); err != nil {
				return err
			}
			if err := e.Save(c.Context); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "customer %s\nservice %s\nquotation %s (%s)\n", customerID, serviceID, e.ID, e.Header.QuotationNumber)
			return nil
		},
	}
}

// migrateCommand aplica o revierte el esquema directamente contra la base (no usa la API).
func migrateCommand() *cli.Command {
	dsnFlag := &cli.StringFlag{Name: "dsn", Usage: "DSN de PostgreSQL (por defecto DATABASE_URL / DB_*)"}
	dsn := func(c *cli.Context) string {
		if v := c.String("dsn"); v != "" {
			return v
		}
		return configFrom(c).DB.ConnectionString()
	}
	return &cli.Command{
		Name:  "migrate",
		Usage: "migraciones del esquema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Flags: []cli.Flag{dsnFlag},
				Action: func(c *cli.Context) error {
					if err := postgres.Migrate(dsn(c)); err != nil {
						return err
					}
					loggerFrom(c).Info().Msg("migraciones aplicadas")
					return nil
				},
			},
			{
				Name:  "down",
				Flags: []cli.Flag{dsnFlag, yesFlag},
				Action: func(c *cli.Context) error {
					if !confirmDelete(c, "schema") {
						return nil
					}
					if err := postgres.MigrateDown(dsn(c)); err != nil {
						return err
					}
					loggerFrom(c).Info().Msg("migraciones revertidas")
					return nil
				},
			},
		},
	}
}
