package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo clientes en memoria.
type CustomerRepo struct {
	s *Store
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var rows []entity.Customer
	r.s.read(func(st *state) {
		rows = newestFirst(st.customers, func(c entity.Customer) int64 { return c.CreatedAt.UnixNano() })
	})
	list := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		list = append(list, &rows[i])
	}
	return list, nil
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var found *entity.Customer
	r.s.read(func(st *state) {
		for _, c := range st.customers {
			if c.ID == id {
				c := c
				found = &c
				return
			}
		}
	})
	return found, nil
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return r.s.write(func(st *state) error {
		st.customers = append(st.customers, *c)
		return nil
	})
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		for i := range st.customers {
			if st.customers[i].ID == c.ID {
				c.CreatedAt = st.customers[i].CreatedAt
				st.customers[i] = *c
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete falla si el cliente tiene cotizaciones o facturas (ON DELETE RESTRICT).
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		for _, q := range st.quotations {
			if q.CustomerID == id {
				return fkViolation("delete customer", "quotations", "quotations_customer_id_fkey")
			}
		}
		for _, inv := range st.invoices {
			if inv.CustomerID == id {
				return fkViolation("delete customer", "invoices", "invoices_customer_id_fkey")
			}
		}
		out := st.customers[:0]
		for _, c := range st.customers {
			if c.ID != id {
				out = append(out, c)
			}
		}
		st.customers = out
		return nil
	})
}
