package dto

import (
	"testing"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RequiredName(t *testing.T) {
	err := Validate(CustomerRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "name is required")

	assert.NoError(t, Validate(CustomerRequest{Name: "Acme"}))
}

func TestValidate_NegativeDecimal(t *testing.T) {
	err := Validate(ServiceRequest{Name: "Consulting", UnitPrice: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "unit_price")

	assert.NoError(t, Validate(ServiceRequest{Name: "Consulting", UnitPrice: decimal.RequireFromString("99.50")}))
}

func TestValidate_Status(t *testing.T) {
	err := Validate(QuotationRequest{CustomerID: "c1", Status: "paid"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "status must be one of")

	assert.NoError(t, Validate(InvoiceRequest{CustomerID: "c1", Status: "paid"}))
}

func TestValidate_DocumentItemsDive(t *testing.T) {
	req := QuotationDocumentRequest{
		QuotationRequest: QuotationRequest{CustomerID: "c1"},
		Items: []LineItemRequest{
			{Description: "ok", Quantity: decimal.NewFromInt(1)},
			{Description: "bad", Quantity: decimal.NewFromInt(-2)},
		},
	}
	err := Validate(req)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "items[1].quantity")
}
