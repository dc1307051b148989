package repository

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// ServiceRepository define el puerto de persistencia para el catálogo de servicios.
type ServiceRepository interface {
	List(ctx context.Context) ([]*entity.Service, error)
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}
