package apiclient

import (
	"context"
	"net/http"

	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain/entity"
)

// ListQuotations cotizaciones, la más reciente primero.
func (c *Client) ListQuotations(ctx context.Context) ([]entity.Quotation, error) {
	return list[entity.Quotation](ctx, c, pathOf("quotations"))
}

// GetQuotation cabecera + líneas ordenadas.
func (c *Client) GetQuotation(ctx context.Context, id string) (*entity.QuotationDocument, error) {
	var out entity.QuotationDocument
	if err := c.do(ctx, http.MethodGet, pathOf("quotations", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateQuotation(ctx context.Context, in dto.QuotationRequest) (string, error) {
	return c.create(ctx, pathOf("quotations"), in)
}

func (c *Client) UpdateQuotation(ctx context.Context, id string, in dto.QuotationRequest) error {
	return c.update(ctx, pathOf("quotations", id), in)
}

func (c *Client) DeleteQuotation(ctx context.Context, id string) error {
	return c.remove(ctx, pathOf("quotations", id))
}

// CreateQuotationDocument crea cabecera y líneas en una sola llamada.
func (c *Client) CreateQuotationDocument(ctx context.Context, in dto.QuotationDocumentRequest) (string, error) {
	return c.create(ctx, pathOf("quotations", "documents"), in)
}

// SaveQuotationDocument reemplaza cabecera y líneas en una sola llamada.
func (c *Client) SaveQuotationDocument(ctx context.Context, id string, in dto.QuotationDocumentRequest) error {
	return c.update(ctx, pathOf("quotations", id, "document"), in)
}

// QuotationPDF bytes del PDF de la cotización.
func (c *Client) QuotationPDF(ctx context.Context, id string) ([]byte, error) {
	return c.raw(ctx, pathOf("quotations", id, "pdf"))
}

func (c *Client) ListQuotationItems(ctx context.Context, quotationID string) ([]entity.QuotationItem, error) {
	return list[entity.QuotationItem](ctx, c, pathOf("quotation-items", "quotation", quotationID))
}

func (c *Client) CreateQuotationItem(ctx context.Context, in dto.QuotationItemRequest) (string, error) {
	return c.create(ctx, pathOf("quotation-items"), in)
}

func (c *Client) DeleteQuotationItem(ctx context.Context, id string) error {
	return c.remove(ctx, pathOf("quotation-items", id))
}

// ListInvoices facturas, la más reciente primero.
func (c *Client) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return list[entity.Invoice](ctx, c, pathOf("invoices"))
}

// GetInvoice cabecera + líneas ordenadas.
func (c *Client) GetInvoice(ctx context.Context, id string) (*entity.InvoiceDocument, error) {
	var out entity.InvoiceDocument
	if err := c.do(ctx, http.MethodGet, pathOf("invoices", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateInvoice(ctx context.Context, in dto.InvoiceRequest) (string, error) {
	return c.create(ctx, pathOf("invoices"), in)
}

func (c *Client) UpdateInvoice(ctx context.Context, id string, in dto.InvoiceRequest) error {
	return c.update(ctx, pathOf("invoices", id), in)
}

func (c *Client) DeleteInvoice(ctx context.Context, id string) error {
	return c.remove(ctx, pathOf("invoices", id))
}

func (c *Client) CreateInvoiceDocument(ctx context.Context, in dto.InvoiceDocumentRequest) (string, error) {
	return c.create(ctx, pathOf("invoices", "documents"), in)
}

func (c *Client) SaveInvoiceDocument(ctx context.Context, id string, in dto.InvoiceDocumentRequest) error {
	return c.update(ctx, pathOf("invoices", id, "document"), in)
}

// InvoiceFromQuotation genera una factura borrador a partir de la cotización.
func (c *Client) InvoiceFromQuotation(ctx context.Context, quotationID string) (string, error) {
	return c.create(ctx, pathOf("invoices", "from-quotation", quotationID), nil)
}

func (c *Client) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	return c.raw(ctx, pathOf("invoices", id, "pdf"))
}

func (c *Client) ListInvoiceItems(ctx context.Context, invoiceID string) ([]entity.InvoiceItem, error) {
	return list[entity.InvoiceItem](ctx, c, pathOf("invoice-items", "invoice", invoiceID))
}

func (c *Client) CreateInvoiceItem(ctx context.Context, in dto.InvoiceItemRequest) (string, error) {
	return c.create(ctx, pathOf("invoice-items"), in)
}

func (c *Client) DeleteInvoiceItem(ctx context.Context, id string) error {
	return c.remove(ctx, pathOf("invoice-items", id))
}
