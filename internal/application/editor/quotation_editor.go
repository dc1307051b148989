package editor

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/document"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// QuotationEditor estado de edición de una cotización.
type QuotationEditor struct {
	lines
	gw Gateway

	// ID vacío mientras el documento no se haya guardado.
	ID     string
	Header dto.QuotationRequest
}

// NewQuotationEditor editor vacío; llamar New o Load antes de usarlo.
func NewQuotationEditor(gw Gateway, log *logger.Logger) *QuotationEditor {
	e := &QuotationEditor{lines: newLines(log), gw: gw}
	e.reset()
	return e
}

func (e *QuotationEditor) reset() {
	today := entity.Today()
	e.ID = ""
	e.Header = dto.QuotationRequest{Date: &today, Status: string(entity.QuotationStatusDraft)}
	e.Editor = document.NewEditor()
}

// New prepara una cotización en blanco con el número sugerido a partir de la más reciente.
func (e *QuotationEditor) New(ctx context.Context) {
	e.reset()
	e.loadServices(ctx, e.gw)

	latest := ""
	list, err := e.gw.ListQuotations(ctx)
	if err != nil {
		e.log.Warn().Err(err).Msg("no se pudo consultar la última cotización; se usa la numeración inicial")
	} else if len(list) > 0 {
		latest = list[0].QuotationNumber
	}
	e.Header.QuotationNumber = document.NextNumber(entity.QuotationNumberPrefix, latest)
}

// Load carga cabecera y líneas. Si falla, registra el error y deja el editor vacío.
func (e *QuotationEditor) Load(ctx context.Context, id string) error {
	e.reset()
	e.loadServices(ctx, e.gw)

	doc, err := e.gw.GetQuotation(ctx, id)
	if err != nil {
		e.log.Error().Err(err).Str("quotation_id", id).Msg("error cargando cotización")
		return err
	}
	e.ID = doc.ID
	e.Header = dto.QuotationRequest{
		CustomerID:      doc.CustomerID,
		QuotationNumber: doc.QuotationNumber,
		Date:            datePtr(doc.Date),
		ValidUntil:      doc.ValidUntil,
		Status:          string(doc.Status),
		Notes:           doc.Notes,
		Total:           doc.Total,
	}
	e.Editor = document.NewEditorFrom(lineItems(doc.Items, func(it entity.QuotationItem) entity.LineItem { return it.LineItem }))
	return nil
}

// Save envía cabecera + todas las líneas en una sola llamada (crear o reemplazar).
// Si falla, registra el error y el estado del editor queda intacto.
func (e *QuotationEditor) Save(ctx context.Context) error {
	items, total := e.requestItems()
	header := e.Header
	header.Total = total
	req := dto.QuotationDocumentRequest{QuotationRequest: header, Items: items}

	if e.ID == "" {
		id, err := e.gw.CreateQuotationDocument(ctx, req)
		if err != nil {
			e.log.Error().Err(err).Msg("error guardando cotización")
			return err
		}
		e.ID = id
	} else if err := e.gw.SaveQuotationDocument(ctx, e.ID, req); err != nil {
		e.log.Error().Err(err).Str("quotation_id", e.ID).Msg("error guardando cotización")
		return err
	}
	e.Header.Total = total
	return nil
}
