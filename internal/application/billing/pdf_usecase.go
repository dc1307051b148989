package billing

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// PDFUseCase genera la versión imprimible de cotizaciones y facturas.
type PDFUseCase struct {
	quotations *QuotationUseCase
	invoices   *InvoiceUseCase
	customers  repository.CustomerRepository
	generator  DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	quotations *QuotationUseCase,
	invoices *InvoiceUseCase,
	customers repository.CustomerRepository,
	generator DocumentPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{quotations: quotations, invoices: invoices, customers: customers, generator: generator}
}

// QuotationPDF devuelve el PDF y el nombre de archivo sugerido. ErrNotFound si no existe.
func (uc *PDFUseCase) QuotationPDF(ctx context.Context, id string) ([]byte, string, error) {
	doc, err := uc.quotations.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	lines := make([]entity.LineItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		lines = append(lines, it.LineItem)
	}
	return uc.render(ctx, PrintableDocument{
		Kind:    DocumentKindQuotation,
		Number:  doc.QuotationNumber,
		Date:    doc.Date,
		DueDate: doc.ValidUntil,
		Status:  string(doc.Status),
		Notes:   doc.Notes,
		Lines:   lines,
		Total:   doc.Total,
	}, doc.CustomerID)
}

// InvoicePDF devuelve el PDF de la factura y el nombre de archivo sugerido.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, id string) ([]byte, string, error) {
	doc, err := uc.invoices.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	lines := make([]entity.LineItem, 0, len(doc.Items))
	for _, it := range doc.Items {
		lines = append(lines, it.LineItem)
	}
	return uc.render(ctx, PrintableDocument{
		Kind:    DocumentKindInvoice,
		Number:  doc.InvoiceNumber,
		Date:    doc.Date,
		DueDate: doc.DueDate,
		Status:  string(doc.Status),
		Notes:   doc.Notes,
		Lines:   lines,
		Total:   doc.Total,
	}, doc.CustomerID)
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (uc *PDFUseCase) render(ctx context.Context, doc PrintableDocument, customerID string) ([]byte, string, error) {
	// Cliente inexistente: el documento se imprime igual, sin datos del cliente.
	customer, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	doc.Customer = customer

	pdfBytes, err := uc.generator.Generate(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	number := unsafeFilename.ReplaceAllString(doc.Number, "_")
	if number == "" {
		number = "sin-numero"
	}
	return pdfBytes, fmt.Sprintf("%s_%s.pdf", doc.Kind, number), nil
}
