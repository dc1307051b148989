package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, name, description, unit_price, unit, created_at, updated_at`

// ServiceRepo implementación de ServiceRepository.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.UnitPrice, &s.Unit, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ServiceRepo) List(ctx context.Context) ([]*entity.Service, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, `SELECT `+serviceColumns+` FROM services ORDER BY created_at DESC`)
	if err != nil {
		return nil, dbError("list services", err)
	}
	defer rows.Close()
	list := make([]*entity.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, dbError("scan service", err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list services", err)
	}
	return list, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	s, err := scanService(q.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get service", err)
	}
	return s, nil
}

func (r *ServiceRepo) Create(ctx context.Context, service *entity.Service) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	_, err = q.Exec(ctx, `
		INSERT INTO services (id, name, description, unit_price, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		service.ID, service.Name, service.Description, service.UnitPrice, service.Unit,
		service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return dbError("insert service", err)
	}
	return nil
}

func (r *ServiceRepo) Update(ctx context.Context, service *entity.Service) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, `
		UPDATE services
		SET name = $2, description = $3, unit_price = $4, unit = $5, updated_at = $6
		WHERE id = $1`,
		service.ID, service.Name, service.Description, service.UnitPrice, service.Unit, service.UpdatedAt,
	)
	if err != nil {
		return dbError("update service", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM services WHERE id = $1`, id); err != nil {
		return dbError("delete service", err)
	}
	return nil
}
