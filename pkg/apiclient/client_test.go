package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/Facturacion-api/pkg/apiclient"
)

type stubPDF struct{}

func (stubPDF) Generate(_ context.Context, doc billing.PrintableDocument) ([]byte, error) {
	return []byte("%PDF-1.4 " + doc.Kind), nil
}

func newTestClient(t *testing.T) *apiclient.Client {
	t.Helper()
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, apphttp.MemoryDeps(memory.NewStore(), stubPDF{}, nil))
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL+"/", 5*time.Second)
}

func TestClient_CustomerAndServiceCRUD(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	id, err := c.CreateCustomer(ctx, dto.CustomerRequest{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, c.UpdateCustomer(ctx, id, dto.CustomerRequest{Name: "Acme Corp"}))

	customers, err := c.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme Corp", customers[0].Name)

	svcID, err := c.CreateService(ctx, dto.ServiceRequest{Name: "Consulting", UnitPrice: decimal.NewFromInt(100)})
	require.NoError(t, err)
	services, err := c.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, svcID, services[0].ID)
	assert.Equal(t, "unit", services[0].Unit)

	require.NoError(t, c.DeleteService(ctx, svcID))
	require.NoError(t, c.DeleteCustomer(ctx, id))
	customers, err = c.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestClient_Errors(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.CreateCustomer(ctx, dto.CustomerRequest{})
	require.Error(t, err)
	var apiErr *apiclient.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "VALIDATION", apiErr.Code)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = c.GetQuotation(ctx, "00000000-0000-0000-0000-000000000001")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestClient_DocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	customerID, err := c.CreateCustomer(ctx, dto.CustomerRequest{Name: "Acme"})
	require.NoError(t, err)

	req := dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID},
		Items: []dto.LineItemRequest{
			{Description: "Design", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.RequireFromString("250.50")},
			{Description: "Hosting", Quantity: decimal.NewFromInt(12), UnitPrice: decimal.NewFromInt(10)},
		},
	}
	id, err := c.CreateQuotationDocument(ctx, req)
	require.NoError(t, err)

	doc, err := c.GetQuotation(ctx, id)
	require.NoError(t, err)
	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Design", doc.Items[0].Description)
	assert.True(t, doc.Items[0].Total.Equal(decimal.RequireFromString("250.5")))
	assert.True(t, doc.Items[1].Total.Equal(decimal.NewFromInt(120)))
	assert.True(t, doc.Total.Equal(decimal.RequireFromString("370.5")))

	req.QuotationNumber = doc.QuotationNumber
	req.Items = req.Items[:1]
	require.NoError(t, c.SaveQuotationDocument(ctx, id, req))
	items, err := c.ListQuotationItems(ctx, id)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	pdf, err := c.QuotationPDF(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 quotation", string(pdf))

	invoiceID, err := c.InvoiceFromQuotation(ctx, id)
	require.NoError(t, err)
	inv, err := c.GetInvoice(ctx, invoiceID)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", inv.InvoiceNumber)
	require.Len(t, inv.Items, 1)

	itemID, err := c.CreateInvoiceItem(ctx, dto.InvoiceItemRequest{
		InvoiceID:       invoiceID,
		LineItemRequest: dto.LineItemRequest{Description: "Extra", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)
	invItems, err := c.ListInvoiceItems(ctx, invoiceID)
	require.NoError(t, err)
	require.Len(t, invItems, 2)
	assert.Equal(t, itemID, invItems[1].ID)

	stats, err := c.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.StatsResponse{Customers: 1, Quotations: 1, Invoices: 1}, *stats)

	require.NoError(t, c.DeleteQuotation(ctx, id))
	list, err := c.ListQuotations(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestClient_Health(t *testing.T) {
	c := newTestClient(t)
	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", h.Status)
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := apiclient.New(srv.URL, 0).ListCustomers(context.Background())
	var apiErr *apiclient.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "HTTP 502", apiErr.Message)
}
