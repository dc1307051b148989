package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update reemplaza los campos editables y toca updated_at. ErrNotFound si no existe.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error

	ListItems(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error)
	CreateItem(ctx context.Context, item *entity.InvoiceItem) error
	DeleteItem(ctx context.Context, id string) error
	DeleteItemsByInvoice(ctx context.Context, invoiceID string) error
}
