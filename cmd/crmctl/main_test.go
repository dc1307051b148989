package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Facturacion-api/internal/interfaces/http"
)

type stubPDF struct{}

func (stubPDF) Generate(context.Context, billing.PrintableDocument) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

type harness struct {
	t   *testing.T
	url string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, apphttp.MemoryDeps(memory.NewStore(), stubPDF{}, nil))
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return &harness{t: t, url: srv.URL}
}

// run ejecuta crmctl con stdin y devuelve stdout.
func (h *harness) run(stdin string, args ...string) (string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"crmctl", "--api-url", h.url}, args...))
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run("", args...)
	require.NoError(h.t, err)
	return out
}

func firstLine(s string) string {
	return strings.TrimSpace(strings.SplitN(s, "\n", 2)[0])
}

func TestCustomers_AddListDeleteWithPrompt(t *testing.T) {
	h := newHarness(t)
	id := firstLine(h.mustRun("customers", "add", "--name", "Acme", "--email", "a@acme.test"))
	require.NotEmpty(t, id)

	out := h.mustRun("customers", "list")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "a@acme.test")

	out, err := h.run("n\n", "customers", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to delete this customer? [y/N]")
	assert.Contains(t, out, "cancelado")
	assert.Contains(t, h.mustRun("customers", "list"), "Acme")

	out, err = h.run("y\n", "customers", "delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "eliminado")
	assert.NotContains(t, h.mustRun("customers", "list"), "Acme")
}

func TestQuotations_NewShowListConvert(t *testing.T) {
	h := newHarness(t)
	customerID := firstLine(h.mustRun("customers", "add", "--name", "Acme"))
	serviceID := firstLine(h.mustRun("services", "add", "--name", "Consulting", "--price", "100"))

	out := h.mustRun("quotations", "new", "--customer", customerID, "--service", serviceID+":2", "--item", "Travel: day 1:1:50")
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	quotationID := fields[0]
	assert.Equal(t, "Q-1001", fields[1])
	assert.Equal(t, "250.00", fields[3])

	out = h.mustRun("quotations", "show", quotationID)
	assert.Contains(t, out, "Consulting")
	assert.Contains(t, out, "Travel: day 1")
	assert.Contains(t, out, "$250.00")

	out = h.mustRun("quotations", "list")
	assert.Contains(t, out, "Q-1001")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "$250.00")

	out = h.mustRun("quotations", "edit", "--remove-line", "2", "--status", "sent", quotationID)
	assert.Contains(t, out, "$200.00")
	assert.NotContains(t, out, "Travel")

	invoiceID := firstLine(h.mustRun("invoices", "from-quotation", quotationID))
	out = h.mustRun("invoices", "show", invoiceID)
	assert.Contains(t, out, "INV-1001")
	assert.Contains(t, out, "$200.00")

	out = h.mustRun("stats")
	assert.Contains(t, out, "quotations  1")
	assert.Contains(t, out, "invoices    1")

	out = h.mustRun("quotations", "delete", "--yes", quotationID)
	assert.Contains(t, out, "eliminado")
	assert.NotContains(t, out, "Are you sure")
}

func TestInvoices_NewWithItems(t *testing.T) {
	h := newHarness(t)
	customerID := firstLine(h.mustRun("customers", "add", "--name", "Acme"))

	out := h.mustRun("invoices", "new", "--customer", customerID, "--due", "2024-04-01", "--item", "Hosting:3:9.99")
	fields := strings.Fields(out)
	require.Len(t, fields, 4)
	assert.Equal(t, "INV-1001", fields[1])
	assert.Equal(t, "29.97", fields[3])

	out = h.mustRun("invoices", "list")
	assert.Contains(t, out, "2024-04-01")
}

func TestErrorsAreReturned(t *testing.T) {
	h := newHarness(t)
	_, err := h.run("", "customers", "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	_, err = h.run("", "quotations", "show")
	require.Error(t, err)
}

func TestParseItemSpec(t *testing.T) {
	desc, qty, price, err := parseItemSpec("Design: phase 1:2:10.5")
	require.NoError(t, err)
	assert.Equal(t, "Design: phase 1", desc)
	assert.Equal(t, "2", qty.String())
	assert.Equal(t, "10.5", price.String())

	_, _, _, err = parseItemSpec("only-description")
	assert.Error(t, err)
	_, _, _, err = parseItemSpec("x:abc:1")
	assert.Error(t, err)
}

func TestParseCSV_Latin1(t *testing.T) {
	// "Café" en ISO-8859-1: 0xE9 para la é.
	data := []byte("name;unit_price\nCaf\xe9;12.5\n")
	rows, err := parseCSV(bytes.NewReader(data), "iso-8859-1", ";")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Café", rows[0]["name"])
	assert.Equal(t, "12.5", rows[0]["unit_price"])

	_, err = parseCSV(bytes.NewReader(data), "ebcdic", ",")
	assert.Error(t, err)
}
