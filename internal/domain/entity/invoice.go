package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de cobro de una factura.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceNumberPrefix prefijo de la numeración sugerida (INV-1001, INV-1002...).
const InvoiceNumberPrefix = "INV"

// Invoice cabecera de una factura. QuotationID referencia la cotización de origen
// (se conserva, pero no se valida contra la tabla de cotizaciones).
type Invoice struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	QuotationID   *string         `json:"quotation_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          Date            `json:"date"`
	DueDate       *Date           `json:"due_date"`
	Status        InvoiceStatus   `json:"status"`
	Notes         *string         `json:"notes"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvoiceDocument cabecera + líneas de una factura.
type InvoiceDocument struct {
	Invoice
	Items []InvoiceItem `json:"items"`
}
