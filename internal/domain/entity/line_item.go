package entity

import "github.com/shopspring/decimal"

// LineItem campos comunes de una línea de cotización o factura.
// Total = Quantity × UnitPrice al momento de guardar.
type LineItem struct {
	ServiceID   *string         `json:"service_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
	Position    int             `json:"position"`
}

// QuotationItem línea de una cotización.
type QuotationItem struct {
	ID          string `json:"id"`
	QuotationID string `json:"quotation_id"`
	LineItem
}

// InvoiceItem línea de una factura.
type InvoiceItem struct {
	ID        string `json:"id"`
	InvoiceID string `json:"invoice_id"`
	LineItem
}
