package billing

import (
	"context"
	"testing"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *memory.Store
	customers  *CustomerUseCase
	services   *ServiceUseCase
	quotations *QuotationUseCase
	invoices   *InvoiceUseCase
	stats      *StatsUseCase
	recorder   *countingRecorder
}

type countingRecorder struct {
	docs  map[string]int
	items int
}

func (r *countingRecorder) DocumentSaved(kind string, items int) {
	r.docs[kind]++
	r.items += items
}

func newFixture() *fixture {
	s := memory.NewStore()
	rec := &countingRecorder{docs: map[string]int{}}
	return &fixture{
		store:      s,
		customers:  NewCustomerUseCase(s.Customers()),
		services:   NewServiceUseCase(s.Services()),
		quotations: NewQuotationUseCase(s.Quotations(), s, rec),
		invoices:   NewInvoiceUseCase(s.Invoices(), s.Quotations(), s, rec),
		stats:      NewStatsUseCase(s.Customers(), s.Services(), s.Quotations(), s.Invoices()),
		recorder:   rec,
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAcmeConsultingScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	customerID, err := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	require.NoError(t, err)
	serviceID, err := f.services.Create(ctx, dto.ServiceRequest{Name: "Consulting", UnitPrice: dec("100")})
	require.NoError(t, err)

	id, err := f.quotations.CreateDocument(ctx, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID},
		Items: []dto.LineItemRequest{{
			ServiceID:   &serviceID,
			Description: "Consulting",
			Quantity:    dec("2"),
			UnitPrice:   dec("100"),
		}},
	})
	require.NoError(t, err)

	doc, err := f.quotations.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.True(t, doc.Items[0].Total.Equal(dec("200")))
	assert.True(t, doc.Total.Equal(dec("200")))
	assert.Equal(t, "Q-1001", doc.QuotationNumber)
	assert.Equal(t, entity.QuotationStatusDraft, doc.Status)
	assert.Equal(t, entity.Today(), doc.Date)
	assert.Equal(t, 1, f.recorder.docs[DocumentKindQuotation])
}

func TestQuotationDocument_RoundTripKeepsOrder(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customerID, err := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	require.NoError(t, err)

	items := []dto.LineItemRequest{
		{Description: "Design", Quantity: dec("1.5"), UnitPrice: dec("80")},
		{Description: "Build", Quantity: dec("3"), UnitPrice: dec("120.10")},
		{Description: "Support", Quantity: dec("1"), UnitPrice: dec("0")},
	}
	id, err := f.quotations.CreateDocument(ctx, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID, QuotationNumber: "Q-2000"},
		Items:            items,
	})
	require.NoError(t, err)

	doc, err := f.quotations.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, doc.Items, len(items))
	sum := decimal.Zero
	for i, it := range doc.Items {
		assert.Equal(t, items[i].Description, it.Description)
		assert.True(t, it.Quantity.Equal(items[i].Quantity))
		assert.True(t, it.UnitPrice.Equal(items[i].UnitPrice))
		assert.True(t, it.Total.Equal(items[i].Quantity.Mul(items[i].UnitPrice)))
		sum = sum.Add(it.Total)
	}
	assert.True(t, doc.Total.Equal(sum))
	assert.Equal(t, "Q-2000", doc.QuotationNumber)
}

func TestQuotationSaveDocument_ReplacesItems(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customerID, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	id, err := f.quotations.CreateDocument(ctx, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID},
		Items: []dto.LineItemRequest{
			{Description: "a", Quantity: dec("1"), UnitPrice: dec("10")},
			{Description: "b", Quantity: dec("1"), UnitPrice: dec("20")},
		},
	})
	require.NoError(t, err)

	err = f.quotations.SaveDocument(ctx, id, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID, QuotationNumber: "Q-1001", Status: "sent"},
		Items: []dto.LineItemRequest{
			// el total enviado por el cliente se ignora
			{Description: "c", Quantity: dec("4"), UnitPrice: dec("2.5"), Total: dec("999")},
		},
	})
	require.NoError(t, err)

	doc, err := f.quotations.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "c", doc.Items[0].Description)
	assert.True(t, doc.Items[0].Total.Equal(dec("10")))
	assert.True(t, doc.Total.Equal(dec("10")))
	assert.Equal(t, entity.QuotationStatusSent, doc.Status)
}

func TestQuotationSaveDocument_MissingIsNotFoundAndAtomic(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customerID, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})

	err := f.quotations.SaveDocument(ctx, "missing", dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID},
		Items:            []dto.LineItemRequest{{Description: "x", Quantity: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	items, err := f.quotations.ListItems(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestQuotationSaveDocument_RollbackOnUnknownCustomer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customerID, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	id, err := f.quotations.CreateDocument(ctx, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID},
		Items:            []dto.LineItemRequest{{Description: "keep", Quantity: dec("1"), UnitPrice: dec("5")}},
	})
	require.NoError(t, err)

	err = f.quotations.SaveDocument(ctx, id, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: "ghost"},
		Items:            []dto.LineItemRequest{{Description: "lost", Quantity: dec("1")}},
	})
	require.ErrorIs(t, err, domain.ErrDatabase)

	doc, err := f.quotations.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "keep", doc.Items[0].Description)
	assert.Equal(t, customerID, doc.CustomerID)
}

func TestQuotation_ValidationErrors(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.quotations.Create(ctx, dto.QuotationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.quotations.CreateDocument(ctx, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: "c"},
		Items:            []dto.LineItemRequest{{Quantity: dec("-1")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.customers.Create(ctx, dto.CustomerRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNumbering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	n, err := f.invoices.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", n)

	customerID, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	_, err = f.invoices.Create(ctx, dto.InvoiceRequest{CustomerID: customerID, InvoiceNumber: "INV-1042"})
	require.NoError(t, err)

	n, err = f.invoices.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INV-1043", n)

	n, err = f.quotations.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Q-1001", n)
}

func TestDeleteRemovesFromList(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	id, err := f.services.Create(ctx, dto.ServiceRequest{Name: "Hosting"})
	require.NoError(t, err)
	list, err := f.services.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.DefaultServiceUnit, list[0].Unit)

	require.NoError(t, f.services.Delete(ctx, id))
	list, err = f.services.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// idempotente
	require.NoError(t, f.services.Delete(ctx, id))
}

func TestCustomerUpdate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id, err := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	require.NoError(t, err)

	email := "ops@acme.test"
	empty := ""
	require.NoError(t, f.customers.Update(ctx, id, dto.CustomerRequest{Name: "Acme Corp", Email: &email, Phone: &empty}))
	list, err := f.customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme Corp", list[0].Name)
	require.NotNil(t, list[0].Email)
	assert.Equal(t, email, *list[0].Email)
	assert.Nil(t, list[0].Phone)

	err = f.customers.Update(ctx, "missing", dto.CustomerRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerDelete_WithDocumentsIsDatabaseError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	id, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	_, err := f.invoices.Create(ctx, dto.InvoiceRequest{CustomerID: id})
	require.NoError(t, err)

	assert.ErrorIs(t, f.customers.Delete(ctx, id), domain.ErrDatabase)
}

func TestItemsEndpointsRecomputeTotals(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customerID, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	invID, err := f.invoices.Create(ctx, dto.InvoiceRequest{CustomerID: customerID})
	require.NoError(t, err)

	for _, desc := range []string{"first", "second"} {
		_, err := f.invoices.CreateItem(ctx, dto.InvoiceItemRequest{
			InvoiceID:       invID,
			LineItemRequest: dto.LineItemRequest{Description: desc, Quantity: dec("3"), UnitPrice: dec("1.333"), Total: dec("1")},
		})
		require.NoError(t, err)
	}
	items, err := f.invoices.ListItems(ctx, invID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Description)
	assert.True(t, items[0].UnitPrice.Equal(dec("1.33")))
	assert.True(t, items[0].Total.Equal(dec("3.99")))

	require.NoError(t, f.invoices.DeleteItem(ctx, items[0].ID))
	items, err = f.invoices.ListItems(ctx, invID)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestConvertFromQuotation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customerID, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	notes := "net 30"
	qID, err := f.quotations.CreateDocument(ctx, dto.QuotationDocumentRequest{
		QuotationRequest: dto.QuotationRequest{CustomerID: customerID, Notes: &notes, Status: "accepted"},
		Items: []dto.LineItemRequest{
			{Description: "Consulting", Quantity: dec("2"), UnitPrice: dec("100")},
			{Description: "Travel", Quantity: dec("1"), UnitPrice: dec("50")},
		},
	})
	require.NoError(t, err)

	invID, err := f.invoices.ConvertFromQuotation(ctx, qID)
	require.NoError(t, err)

	inv, err := f.invoices.Get(ctx, invID)
	require.NoError(t, err)
	assert.Equal(t, "INV-1001", inv.InvoiceNumber)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	require.NotNil(t, inv.QuotationID)
	assert.Equal(t, qID, *inv.QuotationID)
	assert.Equal(t, customerID, inv.CustomerID)
	assert.True(t, inv.Total.Equal(dec("250")))
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "Travel", inv.Items[1].Description)

	_, err = f.invoices.ConvertFromQuotation(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	customerID, _ := f.customers.Create(ctx, dto.CustomerRequest{Name: "Acme"})
	_, _ = f.customers.Create(ctx, dto.CustomerRequest{Name: "Globex"})
	_, _ = f.services.Create(ctx, dto.ServiceRequest{Name: "Consulting"})
	_, _ = f.quotations.Create(ctx, dto.QuotationRequest{CustomerID: customerID})

	stats, err := f.stats.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.StatsResponse{Customers: 2, Services: 1, Quotations: 1, Invoices: 0}, *stats)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.quotations.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.invoices.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
