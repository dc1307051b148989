package apiclient

import (
	"context"
	"net/http"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// Health GET /api/health. Con la base caída devuelve *Error con Status 500.
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	var out dto.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats GET /api/dashboard/stats
func (c *Client) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Clientes

func (c *Client) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return list[entity.Customer](ctx, c, pathOf("customers"))
}

func (c *Client) CreateCustomer(ctx context.Context, in dto.CustomerRequest) (string, error) {
	return c.create(ctx, pathOf("customers"), in)
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, in dto.CustomerRequest) error {
	return c.update(ctx, pathOf("customers", id), in)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.remove(ctx, pathOf("customers", id))
}

// Servicios

func (c *Client) ListServices(ctx context.Context) ([]entity.Service, error) {
	return list[entity.Service](ctx, c, pathOf("services"))
}

func (c *Client) CreateService(ctx context.Context, in dto.ServiceRequest) (string, error) {
	return c.create(ctx, pathOf("services"), in)
}

func (c *Client) UpdateService(ctx context.Context, id string, in dto.ServiceRequest) error {
	return c.update(ctx, pathOf("services", id), in)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.remove(ctx, pathOf("services", id))
}
