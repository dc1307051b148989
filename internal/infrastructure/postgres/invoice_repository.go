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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, customer_id, quotation_id, invoice_number, date, due_date, status, notes, total, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv     entity.Invoice
		date    time.Time
		dueDate *time.Time
		status  string
	)
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.QuotationID, &inv.InvoiceNumber, &date, &dueDate, &status,
		&inv.Notes, &inv.Total, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Date = entity.NewDate(date)
	inv.DueDate = entity.DatePtr(dueDate)
	inv.Status = entity.InvoiceStatus(status)
	return &inv, nil
}

func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY created_at DESC`)
	if err != nil {
		return nil, dbError("list invoices", err)
	}
	defer rows.Close()
	list := make([]*entity.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, dbError("scan invoice", err)
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list invoices", err)
	}
	return list, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	inv, err := scanInvoice(q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get invoice", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	_, err = q.Exec(ctx, `
		INSERT INTO invoices (id, customer_id, quotation_id, invoice_number, date, due_date, status, notes, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		inv.ID, inv.CustomerID, inv.QuotationID, inv.InvoiceNumber, inv.Date.Time, inv.DueDate.TimePtr(),
		string(inv.Status), inv.Notes, inv.Total, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return dbError("insert invoice", err)
	}
	return nil
}

func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	tag, err := q.Exec(ctx, `
		UPDATE invoices
		SET customer_id = $2, quotation_id = $3, invoice_number = $4, date = $5, due_date = $6,
		    status = $7, notes = $8, total = $9, updated_at = $10
		WHERE id = $1`,
		inv.ID, inv.CustomerID, inv.QuotationID, inv.InvoiceNumber, inv.Date.Time, inv.DueDate.TimePtr(),
		string(inv.Status), inv.Notes, inv.Total, inv.UpdatedAt,
	)
	if err != nil {
		return dbError("update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return dbError("delete invoice", err)
	}
	return nil
}

func (r *InvoiceRepo) ListItems(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	q, err := ready(r.q)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, service_id, description, quantity, unit_price, total, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position, id`, invoiceID)
	if err != nil {
		return nil, dbError("list invoice items", err)
	}
	defer rows.Close()
	list := make([]*entity.InvoiceItem, 0)
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.ServiceID, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.Total, &it.Position); err != nil {
			return nil, dbError("scan invoice item", err)
		}
		list = append(list, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list invoice items", err)
	}
	return list, nil
}

// CreateItem persiste una línea. Position < 0 la agrega al final.
func (r *InvoiceRepo) CreateItem(ctx context.Context, it *entity.InvoiceItem) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	err = q.QueryRow(ctx, `
		INSERT INTO invoice_items (id, invoice_id, service_id, description, quantity, unit_price, total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
		        CASE WHEN $8::int >= 0 THEN $8::int
		             ELSE (SELECT COALESCE(MAX(position) + 1, 0) FROM invoice_items WHERE invoice_id = $2) END)
		RETURNING position`,
		it.ID, it.InvoiceID, it.ServiceID, it.Description, it.Quantity, it.UnitPrice, it.Total, it.Position,
	).Scan(&it.Position)
	if err != nil {
		return dbError("insert invoice item", err)
	}
	return nil
}

func (r *InvoiceRepo) DeleteItem(ctx context.Context, id string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM invoice_items WHERE id = $1`, id); err != nil {
		return dbError("delete invoice item", err)
	}
	return nil
}

// DeleteItemsByInvoice elimina todas las líneas de la factura.
func (r *InvoiceRepo) DeleteItemsByInvoice(ctx context.Context, invoiceID string) error {
	q, err := ready(r.q)
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1`, invoiceID); err != nil {
		return dbError("delete invoice items", err)
	}
	return nil
}
