package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuotationStatus estado de una cotización.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// QuotationNumberPrefix prefijo de la numeración sugerida (Q-1001, Q-1002...).
const QuotationNumberPrefix = "Q"

// Quotation cabecera de una cotización. Total = suma de los totales de sus líneas.
type Quotation struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	QuotationNumber string          `json:"quotation_number"`
	Date            Date            `json:"date"`
	ValidUntil      *Date           `json:"valid_until"`
	Status          QuotationStatus `json:"status"`
	Notes           *string         `json:"notes"`
	Total           decimal.Decimal `json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// QuotationDocument cabecera + líneas, tal como se edita y se guarda en bloque.
type QuotationDocument struct {
	Quotation
	Items []QuotationItem `json:"items"`
}
