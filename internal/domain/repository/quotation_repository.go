package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para Quotation y sus líneas.
// Las líneas no se editan en sitio: se borran y se vuelven a insertar.
type QuotationRepository interface {
	List(ctx context.Context) ([]*entity.Quotation, error)
	GetByID(ctx context.Context, id string) (*entity.Quotation, error)
	Create(ctx context.Context, quotation *entity.Quotation) error
	// Update reemplaza los campos editables y toca updated_at. ErrNotFound si no existe.
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id string) error

	ListItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error)
	CreateItem(ctx context.Context, item *entity.QuotationItem) error
	DeleteItem(ctx context.Context, id string) error
	DeleteItemsByQuotation(ctx context.Context, quotationID string) error
}
