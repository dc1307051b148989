package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarotoPDFGenerator_Generate(t *testing.T) {
	notes := "Payment in 30 days\nThanks"
	email := "billing@acme.test"
	doc := billing.PrintableDocument{
		Kind:     billing.DocumentKindInvoice,
		Number:   "INV-1001",
		Date:     entity.Today(),
		Status:   string(entity.InvoiceStatusDraft),
		Customer: &entity.Customer{Name: "Acme", Email: &email},
		Notes:    &notes,
		Lines: []entity.LineItem{{
			Description: "Consulting",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.NewFromInt(100),
			Total:       decimal.NewFromInt(200),
		}},
		Total: decimal.NewFromInt(200),
	}

	out, err := NewMarotoPDFGenerator("facturacion-api").Generate(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestMarotoPDFGenerator_NoCustomer(t *testing.T) {
	out, err := NewMarotoPDFGenerator("").Generate(context.Background(), billing.PrintableDocument{
		Kind: billing.DocumentKindQuotation,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestDocumentTitle(t *testing.T) {
	assert.Equal(t, "INVOICE", documentTitle(billing.DocumentKindInvoice))
	assert.Equal(t, "QUOTATION", documentTitle(billing.DocumentKindQuotation))
	assert.Equal(t, "Valid until", dueLabel(billing.DocumentKindQuotation))
}
