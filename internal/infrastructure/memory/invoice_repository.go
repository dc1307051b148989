package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo facturas y sus líneas en memoria.
type InvoiceRepo struct {
	s *Store
}

func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var rows []entity.Invoice
	r.s.read(func(st *state) {
		rows = newestFirst(st.invoices, func(inv entity.Invoice) int64 { return inv.CreatedAt.UnixNano() })
	})
	list := make([]*entity.Invoice, 0, len(rows))
	for i := range rows {
		list = append(list, &rows[i])
	}
	return list, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var found *entity.Invoice
	r.s.read(func(st *state) {
		for _, inv := range st.invoices {
			if inv.ID == id {
				inv := inv
				found = &inv
				return
			}
		}
	})
	return found, nil
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	return r.s.write(func(st *state) error {
		if !hasCustomer(st, inv.CustomerID) {
			return fkViolation("insert invoice", "invoices", "invoices_customer_id_fkey")
		}
		st.invoices = append(st.invoices, *inv)
		return nil
	})
}

func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		for i := range st.invoices {
			if st.invoices[i].ID == inv.ID {
				if !hasCustomer(st, inv.CustomerID) {
					return fkViolation("update invoice", "invoices", "invoices_customer_id_fkey")
				}
				inv.CreatedAt = st.invoices[i].CreatedAt
				st.invoices[i] = *inv
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		invs := st.invoices[:0]
		for _, inv := range st.invoices {
			if inv.ID != id {
				invs = append(invs, inv)
			}
		}
		st.invoices = invs
		st.invoiceItems = withoutInvoiceItems(st.invoiceItems, func(it entity.InvoiceItem) bool { return it.InvoiceID == id })
		return nil
	})
}

func (r *InvoiceRepo) ListItems(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var rows []entity.InvoiceItem
	r.s.read(func(st *state) {
		for _, it := range st.invoiceItems {
			if it.InvoiceID == invoiceID {
				rows = append(rows, it)
			}
		}
	})
	byPosition(rows, func(it entity.InvoiceItem) int { return it.Position })
	list := make([]*entity.InvoiceItem, 0, len(rows))
	for i := range rows {
		list = append(list, &rows[i])
	}
	return list, nil
}

func (r *InvoiceRepo) CreateItem(ctx context.Context, it *entity.InvoiceItem) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	return r.s.write(func(st *state) error {
		exists := false
		for _, inv := range st.invoices {
			if inv.ID == it.InvoiceID {
				exists = true
				break
			}
		}
		if !exists {
			return fkViolation("insert invoice item", "invoice_items", "invoice_items_invoice_id_fkey")
		}
		if it.Position < 0 {
			it.Position = 0
			for _, other := range st.invoiceItems {
				if other.InvoiceID == it.InvoiceID && other.Position >= it.Position {
					it.Position = other.Position + 1
				}
			}
		}
		st.invoiceItems = append(st.invoiceItems, *it)
		return nil
	})
}

func (r *InvoiceRepo) DeleteItem(ctx context.Context, id string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		st.invoiceItems = withoutInvoiceItems(st.invoiceItems, func(it entity.InvoiceItem) bool { return it.ID == id })
		return nil
	})
}

func (r *InvoiceRepo) DeleteItemsByInvoice(ctx context.Context, invoiceID string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		st.invoiceItems = withoutInvoiceItems(st.invoiceItems, func(it entity.InvoiceItem) bool { return it.InvoiceID == invoiceID })
		return nil
	})
}

func withoutInvoiceItems(items []entity.InvoiceItem, drop func(entity.InvoiceItem) bool) []entity.InvoiceItem {
	out := items[:0]
	for _, it := range items {
		if !drop(it) {
			out = append(out, it)
		}
	}
	return out
}
