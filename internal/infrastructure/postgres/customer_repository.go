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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, email, phone, company, address, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List devuelve todos los clientes, más recientes primero.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, dbError("list customers", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, dbError("scan customer", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list customers", err)
	}
	return list, nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	c, err := scanCustomer(q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get customer", err)
	}
	return c, nil
}

// Create persiste un nuevo cliente. Asigna ID si viene vacío.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	_, err = q.Exec(ctx, `
		INSERT INTO customers (id, name, email, phone, company, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Company, customer.Address,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return dbError("insert customer", err)
	}
	return nil
}

// Update reemplaza los campos editables del cliente.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, company = $5, address = $6, updated_at = $7
		WHERE id = $1`,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Company, customer.Address,
		customer.UpdatedAt,
	)
	if err != nil {
		return dbError("update customer", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID. Falla (ErrDatabase) si aún tiene documentos.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return dbError("delete customer", err)
	}
	return nil
}
