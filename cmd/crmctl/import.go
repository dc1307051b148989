package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/pkg/apiclient"
)

// importCommand carga clientes o servicios desde un CSV con encabezado.
// Columnas de clientes: name,email,phone,company,address.
// Columnas de servicios: name,description,unit_price,unit.
func importCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "charset", Usage: "utf-8 o iso-8859-1", Value: "utf-8"},
		&cli.StringFlag{Name: "comma", Usage: "separador de columnas", Value: ","},
	}
	return &cli.Command{
		Name:  "import",
		Usage: "importar registros desde CSV",
		Subcommands: []*cli.Command{
			{Name: "customers", ArgsUsage: "ARCHIVO.csv", Flags: flags, Action: importCustomers},
			{Name: "services", ArgsUsage: "ARCHIVO.csv", Flags: flags, Action: importServices},
		},
	}
}

// csvRecord fila con acceso por nombre de columna.
type csvRecord map[string]string

func readCSV(c *cli.Context) ([]csvRecord, error) {
	path, err := requireArg(c, "ARCHIVO")
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseCSV(f, c.String("charset"), c.String("comma"))
}

func parseCSV(r io.Reader, charset, comma string) ([]csvRecord, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
	case "iso-8859-1", "iso8859-1", "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado %q", charset)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	if comma != "" {
		cr.Comma = []rune(comma)[0]
	}
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var out []csvRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := make(csvRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = strings.TrimSpace(row[i])
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

func importCustomers(c *cli.Context) error {
	rows, err := readCSV(c)
	if err != nil {
		return err
	}
	return importRows(c, rows, func(api *apiclient.Client, r csvRecord) (string, error) {
		return api.CreateCustomer(c.Context, dto.CustomerRequest{
			Name:    r["name"],
			Email:   optional(r["email"]),
			Phone:   optional(r["phone"]),
			Company: optional(r["company"]),
			Address: optional(r["address"]),
		})
	})
}

func importServices(c *cli.Context) error {
	rows, err := readCSV(c)
	if err != nil {
		return err
	}
	return importRows(c, rows, func(api *apiclient.Client, r csvRecord) (string, error) {
		price := decimal.Zero
		if v := r["unit_price"]; v != "" {
			p, err := decimal.NewFromString(v)
			if err != nil {
				return "", fmt.Errorf("unit_price inválido %q", v)
			}
			price = p
		}
		return api.CreateService(c.Context, dto.ServiceRequest{
			Name:        r["name"],
			Description: optional(r["description"]),
			UnitPrice:   price,
			Unit:        r["unit"],
		})
	})
}

// importRows crea cada fila; las filas con error se informan y no detienen la carga.
func importRows(c *cli.Context, rows []csvRecord, create func(*apiclient.Client, csvRecord) (string, error)) error {
	api := clientFrom(c)
	log := loggerFrom(c)
	var failed int
	for i, r := range rows {
		if _, err := create(api, r); err != nil {
			failed++
			log.Warn().Err(err).Int("row", i+2).Msg("fila no importada")
		}
	}
	fmt.Fprintf(c.App.Writer, "importados %d de %d\n", len(rows)-failed, len(rows))
	if failed > 0 {
		return fmt.Errorf("%d filas con error", failed)
	}
	return nil
}
