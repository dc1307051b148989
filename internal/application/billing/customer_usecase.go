package billing

import (
	"context"
	"time"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	now  func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, now: time.Now}
}

// List lista clientes, los más recientes primero.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*entity.Customer, error) {
	return uc.repo.List(ctx)
}

// Create da de alta un cliente y devuelve su ID.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CustomerRequest) (string, error) {
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	now := uc.now()
	c := customerFromRequest(in)
	c.CreatedAt, c.UpdatedAt = now, now
	if err := uc.repo.Create(ctx, c); err != nil {
		return "", err
	}
	return c.ID, nil
}

// Update reemplaza todos los campos editables del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.CustomerRequest) error {
	if err := dto.Validate(in); err != nil {
		return err
	}
	c := customerFromRequest(in)
	c.ID = id
	c.UpdatedAt = uc.now()
	return uc.repo.Update(ctx, c)
}

// Delete elimina el cliente. Falla con error de base si aún tiene documentos.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func customerFromRequest(in dto.CustomerRequest) *entity.Customer {
	return &entity.Customer{
		Name:    in.Name,
		Email:   emptyToNil(in.Email),
		Phone:   emptyToNil(in.Phone),
		Company: emptyToNil(in.Company),
		Address: emptyToNil(in.Address),
	}
}

// emptyToNil trata "" como campo opcional ausente.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
