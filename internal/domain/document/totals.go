package document

import (
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// AmountPlaces decimales con los que se guardan cantidades y precios unitarios.
const AmountPlaces = 2

// LineTotal total de una línea: Cantidad × PrecioUnitario (sin redondeo).
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// NormalizeAmount redondea una cantidad o precio a AmountPlaces decimales.
func NormalizeAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// Normalize redondea cantidad y precio y recalcula el total de la línea.
// Cualquier total recibido del cliente se descarta.
func Normalize(item entity.LineItem) entity.LineItem {
	item.Quantity = NormalizeAmount(item.Quantity)
	item.UnitPrice = NormalizeAmount(item.UnitPrice)
	item.Total = LineTotal(item.Quantity, item.UnitPrice)
	return item
}

// SumTotals total del documento: suma de los totales de las líneas.
func SumTotals(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum
}

// ValidateLine verifica rangos de una línea: cantidad y precio no negativos.
func ValidateLine(item entity.LineItem) bool {
	return !item.Quantity.IsNegative() && !item.UnitPrice.IsNegative()
}
