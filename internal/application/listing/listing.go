// Package listing arma las filas de las vistas de lista de cotizaciones y facturas,
// con el nombre del cliente resuelto a partir del listado completo de clientes.
package listing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Source datos que necesitan las vistas (lo implementa *apiclient.Client).
type Source interface {
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	ListQuotations(ctx context.Context) ([]entity.Quotation, error)
	ListInvoices(ctx context.Context) ([]entity.Invoice, error)
}

// Row fila de una vista de lista. CustomerName vacío si el cliente no existe.
type Row struct {
	ID           string
	Number       string
	CustomerID   string
	CustomerName string
	Date         entity.Date
	// Due valid_until (cotización) o due_date (factura).
	Due    *entity.Date
	Status string
	Total  decimal.Decimal
}

// CustomerIndex nombres de cliente por id.
type CustomerIndex map[string]string

// IndexCustomers indexa la lista de clientes por id.
func IndexCustomers(customers []entity.Customer) CustomerIndex {
	idx := make(CustomerIndex, len(customers))
	for _, c := range customers {
		idx[c.ID] = c.Name
	}
	return idx
}

// Name nombre del cliente o "" si no está.
func (idx CustomerIndex) Name(id string) string {
	return idx[id]
}

// QuotationRows filas en el mismo orden que la lista recibida.
func QuotationRows(quotations []entity.Quotation, idx CustomerIndex) []Row {
	rows := make([]Row, 0, len(quotations))
	for _, q := range quotations {
		rows = append(rows, Row{
			ID:           q.ID,
			Number:       q.QuotationNumber,
			CustomerID:   q.CustomerID,
			CustomerName: idx.Name(q.CustomerID),
			Date:         q.Date,
			Due:          q.ValidUntil,
			Status:       string(q.Status),
			Total:        q.Total,
		})
	}
	return rows
}

// InvoiceRows filas en el mismo orden que la lista recibida.
func InvoiceRows(invoices []entity.Invoice, idx CustomerIndex) []Row {
	rows := make([]Row, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, Row{
			ID:           inv.ID,
			Number:       inv.InvoiceNumber,
			CustomerID:   inv.CustomerID,
			CustomerName: idx.Name(inv.CustomerID),
			Date:         inv.Date,
			Due:          inv.DueDate,
			Status:       string(inv.Status),
			Total:        inv.Total,
		})
	}
	return rows
}

// Quotations consulta clientes y cotizaciones y arma las filas.
func Quotations(ctx context.Context, src Source) ([]Row, error) {
	customers, err := src.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	list, err := src.ListQuotations(ctx)
	if err != nil {
		return nil, err
	}
	return QuotationRows(list, IndexCustomers(customers)), nil
}

// Invoices consulta clientes y facturas y arma las filas.
func Invoices(ctx context.Context, src Source) ([]Row, error) {
	customers, err := src.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	list, err := src.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	return InvoiceRows(list, IndexCustomers(customers)), nil
}
