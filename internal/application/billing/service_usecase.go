package billing

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/document"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// ServiceUseCase casos de uso del catálogo de servicios.
type ServiceUseCase struct {
	repo repository.ServiceRepository
	now  func() time.Time
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, now: time.Now}
}

func (uc *ServiceUseCase) List(ctx context.Context) ([]*entity.Service, error) {
	return uc.repo.List(ctx)
}

func (uc *ServiceUseCase) Create(ctx context.Context, in dto.ServiceRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	now := uc.now()
	s := serviceFromRequest(in)
	s.CreatedAt, s.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, s); err != nil {
		return "", err
	}
	return s.ID, nil
}

func (uc *ServiceUseCase) Update(ctx context.Context, id string, in dto.ServiceRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	s := serviceFromRequest(in)
	s.ID = id
	s.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, s)
}

// Delete elimina el servicio. Las líneas que lo referencian conservan el service_id.
func (uc *ServiceUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func serviceFromRequest(in dto.ServiceRequest) *entity.Service {
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = entity.DefaultServiceUnit
	}
	return &entity.Service{
		Name:        in.Name,
		Description: emptyToNil(in.Description),
		UnitPrice:   document.NormalizeAmount(in.UnitPrice),
		Unit:        unit,
	}
}
