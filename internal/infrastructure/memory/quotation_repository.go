package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo cotizaciones y sus líneas en memoria.
type QuotationRepo struct {
	s *Store
}

func (r *QuotationRepo) List(ctx context.Context) ([]*entity.Quotation, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var rows []entity.Quotation
	r.s.read(func(st *state) {
		rows = newestFirst(st.quotations, func(q entity.Quotation) int64 { return q.CreatedAt.UnixNano() })
	})
	list := make([]*entity.Quotation, 0, len(rows))
	for i := range rows {
		list = append(list, &rows[i])
	}
	return list, nil
}

func (r *QuotationRepo) GetByID(ctx context.Context, id string) (*entity.Quotation, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var found *entity.Quotation
	r.s.read(func(st *state) {
		for _, q := range st.quotations {
			if q.ID == id {
				q := q
				found = &q
				return
			}
		}
	})
	return found, nil
}

func (r *QuotationRepo) Create(ctx context.Context, q *entity.Quotation) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return r.s.write(func(st *state) error {
		if !hasCustomer(st, q.CustomerID) {
			return fkViolation("insert quotation", "quotations", "quotations_customer_id_fkey")
		}
		st.quotations = append(st.quotations, *q)
		return nil
	})
}

func (r *QuotationRepo) Update(ctx context.Context, q *entity.Quotation) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		for i := range st.quotations {
			if st.quotations[i].ID == q.ID {
				if !hasCustomer(st, q.CustomerID) {
					return fkViolation("update quotation", "quotations", "quotations_customer_id_fkey")
				}
				q.CreatedAt = st.quotations[i].CreatedAt
				st.quotations[i] = *q
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina la cotización y, en cascada, sus líneas.
func (r *QuotationRepo) Delete(ctx context.Context, id string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		qs := st.quotations[:0]
		for _, q := range st.quotations {
			if q.ID != id {
				qs = append(qs, q)
			}
		}
		st.quotations = qs
		st.quotationItems = withoutQuotationItems(st.quotationItems, func(it entity.QuotationItem) bool {
			return it.QuotationID == id
		})
		return nil
	})
}

func (r *QuotationRepo) ListItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var rows []entity.QuotationItem
	r.s.read(func(st *state) {
		for _, it := range st.quotationItems {
			if it.QuotationID == quotationID {
				rows = append(rows, it)
			}
		}
	})
	byPosition(rows, func(it entity.QuotationItem) int { return it.Position })
	list := make([]*entity.QuotationItem, 0, len(rows))
	for i := range rows {
		list = append(list, &rows[i])
	}
	return list, nil
}

// CreateItem agrega una línea. Position < 0 la ubica al final.
func (r *QuotationRepo) CreateItem(ctx context.Context, it *entity.QuotationItem) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	return r.s.write(func(st *state) error {
		exists := false
		for _, q := range st.quotations {
			if q.ID == it.QuotationID {
				exists = true
				break
			}
		}
		if !exists {
			return fkViolation("insert quotation item", "quotation_items", "quotation_items_quotation_id_fkey")
		}
		if it.Position < 0 {
			it.Position = 0
			for _, other := range st.quotationItems {
				if other.QuotationID == it.QuotationID && other.Position >= it.Position {
					it.Position = other.Position + 1
				}
			}
		}
		st.quotationItems = append(st.quotationItems, *it)
		return nil
	})
}

func (r *QuotationRepo) DeleteItem(ctx context.Context, id string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		st.quotationItems = withoutQuotationItems(st.quotationItems, func(it entity.QuotationItem) bool { return it.ID == id })
		return nil
	})
}

func (r *QuotationRepo) DeleteItemsByQuotation(ctx context.Context, quotationID string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		st.quotationItems = withoutQuotationItems(st.quotationItems, func(it entity.QuotationItem) bool {
			return it.QuotationID == quotationID
		})
		return nil
	})
}

func withoutQuotationItems(items []entity.QuotationItem, drop func(entity.QuotationItem) bool) []entity.QuotationItem {
	out := items[:0]
	for _, it := range items {
		if !drop(it) {
			out = append(out, it)
		}
	}
	return out
}

func hasCustomer(st *state, id string) bool {
	for _, c := range st.customers {
		if c.ID == id {
			return true
		}
	}
	return false
}
