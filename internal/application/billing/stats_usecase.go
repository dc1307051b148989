package billing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// StatsUseCase contadores del dashboard.
type StatsUseCase struct {
	customers  repository.CustomerRepository
	services   repository.ServiceRepository
	quotations repository.QuotationRepository
	invoices   repository.InvoiceRepository
}

func NewStatsUseCase(
	customers repository.CustomerRepository,
	services repository.ServiceRepository,
	quotations repository.QuotationRepository,
	invoices repository.InvoiceRepository,
) *StatsUseCase {
	return &StatsUseCase{customers: customers, services: services, quotations: quotations, invoices: invoices}
}

// Get cuenta los registros de cada colección.
func (uc *StatsUseCase) Get(ctx context.Context) (*dto.StatsResponse, error) {
	customers, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := uc.services.List(ctx)
	if err != nil {
		return nil, err
	}
	quotations, err := uc.quotations.List(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StatsResponse{
		Customers:  len(customers),
		Services:   len(services),
		Quotations: len(quotations),
		Invoices:   len(invoices),
	}, nil
}
