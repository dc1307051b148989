package dto

import (
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CustomerRequest body de POST/PUT /api/customers.
type CustomerRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   *string `json:"email,omitempty" validate:"omitempty,max=255"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=255"`
	Address *string `json:"address,omitempty"`
}

// ServiceRequest body de POST/PUT /api/services. Unit vacío -> "unit".
type ServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Unit        string          `json:"unit,omitempty" validate:"max=50"`
}

// QuotationRequest cabecera de cotización. Date vacío -> hoy; Status vacío -> draft.
type QuotationRequest struct {
	CustomerID      string          `json:"customer_id" validate:"required"`
	QuotationNumber string          `json:"quotation_number" validate:"max=50"`
	Date            *entity.Date    `json:"date,omitempty"`
	ValidUntil      *entity.Date    `json:"valid_until,omitempty"`
	Status          string          `json:"status,omitempty" validate:"omitempty,oneof=draft sent accepted rejected"`
	Notes           *string         `json:"notes,omitempty"`
	Total           decimal.Decimal `json:"total" validate:"gte=0"`
}

// InvoiceRequest cabecera de factura. Date vacío -> hoy; Status vacío -> draft.
type InvoiceRequest struct {
	CustomerID    string          `json:"customer_id" validate:"required"`
	QuotationID   *string         `json:"quotation_id,omitempty"`
	InvoiceNumber string          `json:"invoice_number" validate:"max=50"`
	Date          *entity.Date    `json:"date,omitempty"`
	DueDate       *entity.Date    `json:"due_date,omitempty"`
	Status        string          `json:"status,omitempty" validate:"omitempty,oneof=draft sent paid overdue"`
	Notes         *string         `json:"notes,omitempty"`
	Total         decimal.Decimal `json:"total" validate:"gte=0"`
}

// LineItemRequest línea de documento. El total enviado se ignora: el servidor
// lo recalcula como quantity × unit_price.
type LineItemRequest struct {
	ServiceID   *string         `json:"service_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" validate:"gte=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"gte=0"`
	Total       decimal.Decimal `json:"total"`
}

// QuotationItemRequest body de POST /api/quotation-items.
type QuotationItemRequest struct {
	QuotationID string `json:"quotation_id" validate:"required"`
	LineItemRequest
}

// InvoiceItemRequest body de POST /api/invoice-items.
type InvoiceItemRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required"`
	LineItemRequest
}

// QuotationDocumentRequest cabecera + todas las líneas, guardadas en una sola transacción.
// El total de la cabecera se recalcula como la suma de las líneas.
type QuotationDocumentRequest struct {
	QuotationRequest
	Items []LineItemRequest `json:"items" validate:"dive"`
}

// InvoiceDocumentRequest cabecera + todas las líneas de una factura.
type InvoiceDocumentRequest struct {
	InvoiceRequest
	Items []LineItemRequest `json:"items" validate:"dive"`
}

// ToLineItem convierte la petición en la línea de dominio (sin normalizar).
func (r LineItemRequest) ToLineItem() entity.LineItem {
	return entity.LineItem{
		ServiceID:   r.ServiceID,
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Total:       r.Total,
	}
}

// LineItemRequestFrom arma la petición a partir de una línea (cliente/editor).
func LineItemRequestFrom(l entity.LineItem) LineItemRequest {
	return LineItemRequest{
		ServiceID:   l.ServiceID,
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Total:       l.Total,
	}
}
