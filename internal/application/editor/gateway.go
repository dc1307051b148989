// Package editor flujo de edición de cotizaciones y facturas del lado cliente:
// documento nuevo con número sugerido, carga de un documento existente y guardado
// de cabecera + líneas en una sola llamada.
package editor

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/document"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Gateway acceso remoto que necesita el editor (lo implementa *apiclient.Client).
type Gateway interface {
	ListServices(ctx context.Context) ([]entity.Service, error)

	ListQuotations(ctx context.Context) ([]entity.Quotation, error)
	GetQuotation(ctx context.Context, id string) (*entity.QuotationDocument, error)
	CreateQuotationDocument(ctx context.Context, in dto.QuotationDocumentRequest) (string, error)
	SaveQuotationDocument(ctx context.Context, id string, in dto.QuotationDocumentRequest) error

	ListInvoices(ctx context.Context) ([]entity.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*entity.InvoiceDocument, error)
	CreateInvoiceDocument(ctx context.Context, in dto.InvoiceDocumentRequest) (string, error)
	SaveInvoiceDocument(ctx context.Context, id string, in dto.InvoiceDocumentRequest) error
}

// lines parte común a ambos editores: líneas editables y catálogo de servicios.
type lines struct {
	*document.Editor
	services []entity.Service
	log      *logger.Logger
}

func newLines(log *logger.Logger) lines {
	if log == nil {
		log = logger.Nop()
	}
	return lines{Editor: document.NewEditor(), log: log}
}

// loadServices carga el catálogo para SelectServiceByID. Un fallo solo se registra:
// el editor sigue usable con líneas libres.
func (l *lines) loadServices(ctx context.Context, gw Gateway) {
	svcs, err := gw.ListServices(ctx)
	if err != nil {
		l.log.Warn().Err(err).Msg("no se pudo cargar el catálogo de servicios")
		return
	}
	l.services = svcs
}

// Services catálogo cargado con el editor.
func (l *lines) Services() []entity.Service { return l.services }

// SelectServiceByID precarga la línea i con el servicio del catálogo.
func (l *lines) SelectServiceByID(i int, serviceID string) error {
	for k := range l.services {
		if l.services[k].ID == serviceID {
			return l.SelectService(i, &l.services[k])
		}
	}
	return fmt.Errorf("servicio %q no está en el catálogo", serviceID)
}

func (l *lines) requestItems() ([]dto.LineItemRequest, decimal.Decimal) {
	current := l.Lines()
	items := make([]dto.LineItemRequest, 0, len(current))
	for _, it := range current {
		items = append(items, dto.LineItemRequestFrom(it))
	}
	return items, document.SumTotals(current)
}

func lineItems[T any](rows []T, line func(T) entity.LineItem) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, line(r))
	}
	return out
}

func datePtr(d entity.Date) *entity.Date {
	if d.IsZero() {
		return nil
	}
	return &d
}
