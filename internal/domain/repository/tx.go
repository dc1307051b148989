package repository

import "context"

// DocumentTxRunner ejecuta fn dentro de una única transacción con los repositorios de
// documentos atados a ella. Si fn devuelve error no queda ningún cambio persistido.
type DocumentTxRunner interface {
	RunDocuments(ctx context.Context, fn func(quotations QuotationRepository, invoices InvoiceRepository) error) error
}

// HealthChecker verifica la conectividad con el store.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
