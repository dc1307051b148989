package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturacion-api/internal/domain/document"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

func TestNormalize_RecalculaTotalYDescartaElRecibido(t *testing.T) {
	in := entity.LineItem{Quantity: dec("2.004"), UnitPrice: dec("10.126"), Total: dec("999")}
	out := document.Normalize(in)
	assert.True(t, out.Quantity.Equal(dec("2")))
	assert.True(t, out.UnitPrice.Equal(dec("10.13")))
	assert.True(t, out.Total.Equal(dec("20.26")))
}

func TestSumTotals(t *testing.T) {
	items := []entity.LineItem{{Total: dec("200")}, {Total: dec("0.5")}}
	assert.True(t, document.SumTotals(items).Equal(dec("200.5")))
	assert.True(t, document.SumTotals(nil).IsZero())
}

func TestValidateLine(t *testing.T) {
	assert.True(t, document.ValidateLine(entity.LineItem{Quantity: dec("0"), UnitPrice: dec("0")}))
	assert.False(t, document.ValidateLine(entity.LineItem{Quantity: dec("-1"), UnitPrice: dec("0")}))
	assert.False(t, document.ValidateLine(entity.LineItem{Quantity: dec("1"), UnitPrice: dec("-0.01")}))
}
