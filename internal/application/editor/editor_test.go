package editor_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/application/editor"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/Facturacion-api/pkg/apiclient"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

func newClient(t *testing.T) *apiclient.Client {
	t.Helper()
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, apphttp.MemoryDeps(memory.NewStore(), nil, nil))
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, 5*time.Second)
}

// failingGateway devuelve error en todas las llamadas.
type failingGateway struct {
	editor.Gateway
	calls int
}

func (g *failingGateway) ListServices(context.Context) ([]entity.Service, error) {
	g.calls++
	return nil, assert.AnError
}

func (g *failingGateway) ListQuotations(context.Context) ([]entity.Quotation, error) {
	g.calls++
	return nil, assert.AnError
}

func (g *failingGateway) GetQuotation(context.Context, string) (*entity.QuotationDocument, error) {
	g.calls++
	return nil, assert.AnError
}

func (g *failingGateway) CreateQuotationDocument(context.Context, dto.QuotationDocumentRequest) (string, error) {
	g.calls++
	return "", assert.AnError
}

func (g *failingGateway) SaveInvoiceDocument(context.Context, string, dto.InvoiceDocumentRequest) error {
	g.calls++
	return assert.AnError
}

func TestQuotationEditor_NewSaveLoad(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	customerID, err := c.CreateCustomer(ctx, dto.CustomerRequest{Name: "Acme"})
	require.NoError(t, err)
	serviceID, err := c.CreateService(ctx, dto.ServiceRequest{Name: "Consulting", UnitPrice: decimal.NewFromInt(100)})
	require.NoError(t, err)

	e := editor.NewQuotationEditor(c, logger.Nop())
	e.New(ctx)
	assert.Equal(t, "Q-1001", e.Header.QuotationNumber)
	assert.Equal(t, "draft", e.Header.Status)
	require.NotNil(t, e.Header.Date)
	assert.Equal(t, 1, e.Len())
	require.Len(t, e.Services(), 1)

	e.Header.CustomerID = customerID
	require.NoError(t, e.SelectServiceByID(0, serviceID))
	require.NoError(t, e.SetQuantity(0, decimal.NewFromInt(2)))
	assert.True(t, e.Total().Equal(decimal.NewFromInt(200)))

	require.NoError(t, e.Save(ctx))
	require.NotEmpty(t, e.ID)
	assert.True(t, e.Header.Total.Equal(decimal.NewFromInt(200)))

	next := editor.NewQuotationEditor(c, logger.Nop())
	next.New(ctx)
	assert.Equal(t, "Q-1002", next.Header.QuotationNumber)

	loaded := editor.NewQuotationEditor(c, logger.Nop())
	require.NoError(t, loaded.Load(ctx, e.ID))
	assert.Equal(t, e.ID, loaded.ID)
	assert.Equal(t, "Q-1001", loaded.Header.QuotationNumber)
	require.Equal(t, 1, loaded.Len())
	line, err := loaded.Line(0)
	require.NoError(t, err)
	assert.Equal(t, "Consulting", line.Description)
	require.NotNil(t, line.ServiceID)
	assert.Equal(t, serviceID, *line.ServiceID)
	assert.True(t, line.Total.Equal(decimal.NewFromInt(200)))

	// Reemplazo: una segunda línea y guardado sobre el mismo documento.
	loaded.AddLine()
	require.NoError(t, loaded.SetDescription(1, "Travel"))
	require.NoError(t, loaded.SetUnitPrice(1, decimal.NewFromInt(50)))
	require.NoError(t, loaded.Save(ctx))

	doc, err := c.GetQuotation(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Travel", doc.Items[1].Description)
	assert.True(t, doc.Total.Equal(decimal.NewFromInt(250)))
}

func TestQuotationEditor_FailuresKeepState(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "debug", Out: &buf})
	gw := &failingGateway{}

	e := editor.NewQuotationEditor(gw, log)
	e.New(ctx)
	assert.Equal(t, "Q-1001", e.Header.QuotationNumber)
	assert.Empty(t, e.Services())

	e.Header.CustomerID = "c-1"
	require.NoError(t, e.SetDescription(0, "Design"))
	require.Error(t, e.Save(ctx))
	assert.Empty(t, e.ID)
	line, err := e.Line(0)
	require.NoError(t, err)
	assert.Equal(t, "Design", line.Description)
	assert.Equal(t, "c-1", e.Header.CustomerID)

	require.Error(t, e.Load(ctx, "q-1"))
	assert.Empty(t, e.ID)
	assert.Equal(t, 1, e.Len())
	line, err = e.Line(0)
	require.NoError(t, err)
	assert.Empty(t, line.Description)

	assert.Contains(t, buf.String(), "error guardando cotización")
	assert.Contains(t, buf.String(), "error cargando cotización")
}

func TestInvoiceEditor_NewSaveLoad(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	customerID, err := c.CreateCustomer(ctx, dto.CustomerRequest{Name: "Acme"})
	require.NoError(t, err)

	e := editor.NewInvoiceEditor(c, nil)
	e.New(ctx)
	assert.Equal(t, "INV-1001", e.Header.InvoiceNumber)
	e.Header.CustomerID = customerID
	require.NoError(t, e.SetDescription(0, "Hosting"))
	require.NoError(t, e.SetQuantity(0, decimal.NewFromInt(3)))
	require.NoError(t, e.SetUnitPrice(0, decimal.RequireFromString("9.99")))
	require.NoError(t, e.Save(ctx))

	loaded := editor.NewInvoiceEditor(c, nil)
	require.NoError(t, loaded.Load(ctx, e.ID))
	assert.Equal(t, "INV-1001", loaded.Header.InvoiceNumber)
	assert.True(t, loaded.Total().Equal(decimal.RequireFromString("29.97")))
	assert.True(t, loaded.Header.Total.Equal(decimal.RequireFromString("29.97")))

	next := editor.NewInvoiceEditor(c, nil)
	next.New(ctx)
	assert.Equal(t, "INV-1002", next.Header.InvoiceNumber)
}

func TestInvoiceEditor_SaveFailureKeepsID(t *testing.T) {
	gw := &failingGateway{}
	e := editor.NewInvoiceEditor(gw, nil)
	e.ID = "inv-1"
	require.Error(t, e.Save(context.Background()))
	assert.Equal(t, "inv-1", e.ID)
	assert.Equal(t, 1, gw.calls)
}

func TestSelectServiceByID_Unknown(t *testing.T) {
	e := editor.NewQuotationEditor(&failingGateway{}, nil)
	assert.Error(t, e.SelectServiceByID(0, "missing"))
}
