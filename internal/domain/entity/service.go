package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultServiceUnit unidad por defecto de un servicio del catálogo.
const DefaultServiceUnit = "unit"

// Service representa un servicio del catálogo (precio unitario y unidad de cobro).
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Unit        string          `json:"unit"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
