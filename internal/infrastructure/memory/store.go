// Package memory implementa los repositorios sobre un store en memoria con las mismas
// reglas que el esquema PostgreSQL (claves foráneas, cascada de líneas, orden de listados).
// Se usa con STORE_DRIVER=memory y en los tests de casos de uso y handlers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/Facturacion-api/internal/domain"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

var (
	_ repository.DocumentTxRunner = (*Store)(nil)
	_ repository.HealthChecker    = (*Store)(nil)
)

type state struct {
	customers      []entity.Customer
	services       []entity.Service
	quotations     []entity.Quotation
	quotationItems []entity.QuotationItem
	invoices       []entity.Invoice
	invoiceItems   []entity.InvoiceItem
}

func (s *state) clone() *state {
	return &state{
		customers:      append([]entity.Customer(nil), s.customers...),
		services:       append([]entity.Service(nil), s.services...),
		quotations:     append([]entity.Quotation(nil), s.quotations...),
		quotationItems: append([]entity.QuotationItem(nil), s.quotationItems...),
		invoices:       append([]entity.Invoice(nil), s.invoices...),
		invoiceItems:   append([]entity.InvoiceItem(nil), s.invoiceItems...),
	}
}

// Store estado compartido por los repositorios en memoria.
type Store struct {
	mu sync.RWMutex
	st *state
	// inTx: el store es la copia de trabajo de una transacción y el lock lo tiene RunDocuments.
	inTx bool
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: &state{}}
}

func (s *Store) read(fn func(st *state)) {
	if !s.inTx {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn(s.st)
}

func (s *Store) write(fn func(st *state) error) error {
	if !s.inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.st)
}

// Customers repositorio de clientes sobre este store.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Services repositorio de servicios sobre este store.
func (s *Store) Services() *ServiceRepo { return &ServiceRepo{s: s} }

// Quotations repositorio de cotizaciones sobre este store.
func (s *Store) Quotations() *QuotationRepo { return &QuotationRepo{s: s} }

// Invoices repositorio de facturas sobre este store.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{s: s} }

// RunDocuments ejecuta fn sobre una copia del estado; la copia reemplaza al estado solo si fn
// termina sin error. Las escrituras concurrentes esperan a que la transacción termine.
func (s *Store) RunDocuments(ctx context.Context, fn func(
	quotations repository.QuotationRepository,
	invoices repository.InvoiceRepository,
) error) error {
	if s == nil {
		return domain.ErrStoreNotInitialized
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := &Store{st: s.st.clone(), inTx: true}
	if err := fn(work.Quotations(), work.Invoices()); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work.st
	return nil
}

// Ping siempre responde; solo falla si el store no fue construido.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return domain.ErrStoreNotInitialized
	}
	return ctx.Err()
}

// fkViolation reproduce el error que devolvería PostgreSQL ante una clave foránea rota.
func fkViolation(op, table, constraint string) error {
	return fmt.Errorf("%w: %s: violates foreign key constraint %q on table %q", domain.ErrDatabase, op, constraint, table)
}

// newestFirst ordena por created_at descendente; a igual fecha, el último insertado primero.
func newestFirst[T any](rows []T, createdAt func(T) int64) []T {
	out := make([]T, len(rows))
	for i := range rows {
		out[len(rows)-1-i] = rows[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return createdAt(out[i]) > createdAt(out[j]) })
	return out
}

func byPosition[T any](rows []T, position func(T) int) {
	sort.SliceStable(rows, func(i, j int) bool { return position(rows[i]) < position(rows[j]) })
}
