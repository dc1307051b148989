package editor

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/document"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// InvoiceEditor estado de edición de una factura.
type InvoiceEditor struct {
	lines
	gw Gateway

	ID     string
	Header dto.InvoiceRequest
}

func NewInvoiceEditor(gw Gateway, log *logger.Logger) *InvoiceEditor {
	e := &InvoiceEditor{lines: newLines(log), gw: gw}
	e.reset()
	return e
}

func (e *InvoiceEditor) reset() {
	today := entity.Today()
	e.ID = ""
	e.Header = dto.InvoiceRequest{Date: &today, Status: string(entity.InvoiceStatusDraft)}
	e.Editor = document.NewEditor()
}

// New prepara una factura en blanco con el número sugerido (INV-1001 si no hay ninguna).
func (e *InvoiceEditor) New(ctx context.Context) {
	e.reset()
	e.loadServices(ctx, e.gw)

	latest := ""
	list, err := e.gw.ListInvoices(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("no se pudo consultar la última factura; se usa la numeración inicial")
	} else if len(list) > 0 {
		latest = list[0].InvoiceNumber
	}
	e.Header.InvoiceNumber = document.NextNumber(entity.InvoiceNumberPrefix, latest)
}

// Load carga cabecera y líneas. Si falla, registra el error y deja el editor vacío.
func (e *InvoiceEditor) Load(ctx context.Context, id string) error {
	e.reset()
	e.loadServices(ctx, e.gw)

	doc, err := e.gw.GetInvoice(ctx, id)
	if err != nil {
		e.log.Error().Err(err).Str("invoice_id", id).Msg("error cargando factura")
		return err
	}
	e.ID = doc.ID
	e.Header = dto.InvoiceRequest{
		CustomerID:    doc.CustomerID,
		QuotationID:   doc.QuotationID,
		InvoiceNumber: doc.InvoiceNumber,
		Date:          datePtr(doc.Date),
		DueDate:       doc.DueDate,
		Status:        string(doc.Status),
		Notes:         doc.Notes,
		Total:         doc.Total,
	}
	e.Editor = document.NewEditorFrom(lineItems(doc.Items, func(it entity.InvoiceItem) entity.LineItem { return it.LineItem }))
	return nil
}

// Save envía cabecera + todas las líneas en una sola llamada.
func (e *InvoiceEditor) Save(ctx context.Context) error {
	items, total := e.requestItems()
	header := e.Header
	header.Total = total
	req := dto.InvoiceDocumentRequest{InvoiceRequest: header, Items: items}

	if e.ID == "" {
		id, err := e.gw.CreateInvoiceDocument(ctx, req)
		if err != nil {
			e.log.Error().Err(err).Msg("error guardando factura")
			return err
		}
		e.ID = id
	} else if err := e.gw.SaveInvoiceDocument(ctx, e.ID, req); err != nil {
		e.log.Error().Err(err).Str("invoice_id", e.ID).Msg("error guardando factura")
		return err
	}
	e.Header.Total = total
	return nil
}
