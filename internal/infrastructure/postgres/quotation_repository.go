package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

const quotationColumns = `id, customer_id, quotation_number, date, valid_until, status, notes, total, created_at, updated_at`

// QuotationRepo implementación de QuotationRepository (usable con pool o tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

func scanQuotation(row pgx.Row) (*entity.Quotation, error) {
	var (
		qt         entity.Quotation
		date       time.Time
		validUntil *time.Time
		status     string
	)
	err := row.Scan(&qt.ID, &qt.CustomerID, &qt.QuotationNumber, &date, &validUntil, &status,
		&qt.Notes, &qt.Total, &qt.CreatedAt, &qt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	qt.Date = entity.NewDate(date)
	qt.ValidUntil = entity.DatePtr(validUntil)
	qt.Status = entity.QuotationStatus(status)
	return &qt, nil
}

// List devuelve todas las cotizaciones, más recientes primero.
func (r *QuotationRepo) List(ctx context.Context) ([]*entity.Quotation, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, `SELECT `+quotationColumns+` FROM quotations ORDER BY created_at DESC`)
	if err != nil {
		return nil, dbError("list quotations", err)
	}
	defer rows.Close()
	list := make([]*entity.Quotation, 0)
	for rows.Next() {
		qt, err := scanQuotation(rows)
		if err != nil {
			return nil, dbError("scan quotation", err)
		}
		list = append(list, qt)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list quotations", err)
	}
	return list, nil
}

// GetByID obtiene la cabecera por ID; (nil, nil) si no existe.
func (r *QuotationRepo) GetByID(ctx context.Context, id string) (*entity.Quotation, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	qt, err := scanQuotation(q.QueryRow(ctx, `SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get quotation", err)
	}
	return qt, nil
}

// Create persiste la cabecera de la cotización.
func (r *QuotationRepo) Create(ctx context.Context, qt *entity.Quotation) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if qt.ID == "" {
		qt.ID = uuid.New().String()
	}
	_, err = q.Exec(ctx, `
		INSERT INTO quotations (id, customer_id, quotation_number, date, valid_until, status, notes, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		qt.ID, qt.CustomerID, qt.QuotationNumber, qt.Date.Time, qt.ValidUntil.TimePtr(), string(qt.Status),
		qt.Notes, qt.Total, qt.CreatedAt, qt.UpdatedAt,
	)
	if err != nil {
		return dbError("insert quotation", err)
	}
	return nil
}

// Update reemplaza los campos editables de la cabecera (incluido el total).
func (r *QuotationRepo) Update(ctx context.Context, qt *entity.Quotation) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, `
		UPDATE quotations
		SET customer_id = $2, quotation_number = $3, date = $4, valid_until = $5,
		    status = $6, notes = $7, total = $8, updated_at = $9
		WHERE id = $1`,
		qt.ID, qt.CustomerID, qt.QuotationNumber, qt.Date.Time, qt.ValidUntil.TimePtr(), string(qt.Status),
		qt.Notes, qt.Total, qt.UpdatedAt,
	)
	if err != nil {
		return dbError("update quotation", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la cotización; sus líneas se borran en cascada.
func (r *QuotationRepo) Delete(ctx context.Context, id string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id); err != nil {
		return dbError("delete quotation", err)
	}
	return nil
}

// ListItems obtiene las líneas de una cotización en su orden de edición.
func (r *QuotationRepo) ListItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, `
		SELECT id, quotation_id, service_id, description, quantity, unit_price, total, position
		FROM quotation_items WHERE quotation_id = $1 ORDER BY position, id`, quotationID)
	if err != nil {
		return nil, dbError("list quotation items", err)
	}
	defer rows.Close()
	list := make([]*entity.QuotationItem, 0)
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.ServiceID, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.Total, &it.Position); err != nil {
			return nil, dbError("scan quotation item", err)
		}
		list = append(list, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list quotation items", err)
	}
	return list, nil
}

// CreateItem persiste una línea. Position < 0 la agrega al final.
func (r *QuotationRepo) CreateItem(ctx context.Context, it *entity.QuotationItem) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	err = q.QueryRow(ctx, `
		INSERT INTO quotation_items (id, quotation_id, service_id, description, quantity, unit_price, total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
		        CASE WHEN $8::int >= 0 THEN $8::int
		             ELSE (SELECT COALESCE(MAX(position) + 1, 0) FROM quotation_items WHERE quotation_id = $2) END)
		RETURNING position`,
		it.ID, it.QuotationID, it.ServiceID, it.Description, it.Quantity, it.UnitPrice, it.Total, it.Position,
	).Scan(&it.Position)
	if err != nil {
		return dbError("insert quotation item", err)
	}
	return nil
}

// DeleteItem elimina una línea por ID.
func (r *QuotationRepo) DeleteItem(ctx context.Context, id string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM quotation_items WHERE id = $1`, id); err != nil {
		return dbError("delete quotation item", err)
	}
	return nil
}

// DeleteItemsByQuotation elimina todas las líneas de la cotización (reemplazo completo).
func (r *QuotationRepo) DeleteItemsByQuotation(ctx context.Context, quotationID string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1`, quotationID); err != nil {
		return dbError("delete quotation items", err)
	}
	return nil
}
