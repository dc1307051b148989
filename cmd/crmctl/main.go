// crmctl cliente de línea de comandos de la API de facturación.
//
// Uso: crmctl [--api-url URL] <comando> [subcomando] [opciones]
// Por defecto usa API_URL (http://localhost:3001).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jhoicas/Facturacion-api/pkg/apiclient"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

const (
	metaClient = "client"
	metaLogger = "logger"
	metaConfig = "config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "crmctl",
		Usage: "clientes, servicios, cotizaciones y facturas desde la terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-url", Usage: "URL base de la API", EnvVars: []string{"API_URL"}},
			&cli.DurationFlag{Name: "timeout", Usage: "tiempo máximo por llamada", Value: apiclient.DefaultTimeout},
			&cli.StringFlag{Name: "log-level", Usage: "trace, debug, info, warn, error", Value: "warn"},
		},
		Before: setup,
		Commands: []*cli.Command{
			customersCommand(),
			servicesCommand(),
			quotationsCommand(),
			invoicesCommand(),
			statsCommand(),
			healthCommand(),
			seedCommand(),
			importCommand(),
			migrateCommand(),
		},
	}
}

// setup carga la configuración y deja cliente y logger en el Metadata de la app.
func setup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	baseURL := cfg.Client.APIURL
	if v := c.String("api-url"); v != "" {
		baseURL = v
	}
	timeout := cfg.Client.Timeout
	if c.IsSet("timeout") {
		timeout = c.Duration("timeout")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	log := logger.New(logger.Config{Env: "development", Level: c.String("log-level"), Out: c.App.ErrWriter})
	if c.App.Metadata == nil {
		c.App.Metadata = map[string]interface{}{}
	}
	c.App.Metadata[metaConfig] = cfg
	c.App.Metadata[metaLogger] = log
	c.App.Metadata[metaClient] = apiclient.New(baseURL, timeout)
	return nil
}

func clientFrom(c *cli.Context) *apiclient.Client {
	return c.App.Metadata[metaClient].(*apiclient.Client)
}

func loggerFrom(c *cli.Context) *logger.Logger {
	return c.App.Metadata[metaLogger].(*logger.Logger)
}

func configFrom(c *cli.Context) *config.Config {
	return c.App.Metadata[metaConfig].(*config.Config)
}
