package billing

import (
	"context"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Tipos de documento (etiquetas de métricas, nombres de archivo y títulos del PDF).
const (
	DocumentKindQuotation = "quotation"
	DocumentKindInvoice   = "invoice"
)

// PrintableDocument datos ya resueltos de una cotización o factura para imprimir.
type PrintableDocument struct {
	Kind   string
	Number string
	Date   entity.Date
	// DueDate valid_until en cotizaciones, due_date en facturas.
	DueDate  *entity.Date
	Status   string
	Customer *entity.Customer
	Notes    *string
	Lines    []entity.LineItem
	Total    decimal.Decimal
}

// DocumentPDFGenerator genera el PDF de un documento.
type DocumentPDFGenerator interface {
	Generate(ctx context.Context, doc PrintableDocument) ([]byte, error)
}

// Recorder recibe los eventos de escritura de documentos (métricas).
type Recorder interface {
	DocumentSaved(kind string, items int)
}

type nopRecorder struct{}

func (nopRecorder) DocumentSaved(string, int) {}

func recorderOrNop(r Recorder) Recorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
