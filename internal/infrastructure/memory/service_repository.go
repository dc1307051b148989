package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo catálogo de servicios en memoria.
type ServiceRepo struct {
	s *Store
}

func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var rows []entity.Service
	r.s.read(func(st *state) {
		rows = newestFirst(st.services, func(s entity.Service) int64 { return s.CreatedAt.UnixNano() })
	})
	list := make([]*entity.Service, 0, len(rows))
	for i := range rows {
		list = append(list, &rows[i])
	}
	return list, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	if r.s == nil {
		return nil, domain.ErrStoreNotInitialized
	}
	var found *entity.Service
	r.s.read(func(st *state) {
		for _, s := range st.services {
			if s.ID == id {
				s := s
				found = &s
				return
			}
		}
	})
	return found, nil
}

func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return r.s.write(func(st *state) error {
		st.services = append(st.services, *s)
		return nil
	})
}

func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		for i := range st.services {
			if st.services[i].ID == s.ID {
				s.CreatedAt = st.services[i].CreatedAt
				st.services[i] = *s
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete no toca las líneas que referencian el servicio: service_id no tiene clave foránea.
func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	if r.s == nil {
		return domain.ErrStoreNotInitialized
	}
	return r.s.write(func(st *state) error {
		out := st.services[:0]
		for _, s := range st.services {
			if s.ID != id {
				out = append(out, s)
			}
		}
		st.services = out
		return nil
	})
}
