package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// InvoiceHandler facturas: cabecera, líneas, documento completo y PDF.
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	pdf *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// List GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/invoices/:id (cabecera + líneas)
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	doc, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

// Create POST /api/invoices (solo cabecera)
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id)
}

// Update PUT /api/invoices/:id (solo cabecera)
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// Delete DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// CreateDocument POST /api/invoices/documents
func (h *InvoiceHandler) CreateDocument(c *fiber.Ctx) error {
	var in dto.InvoiceDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.CreateDocument(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id)
}

// SaveDocument PUT /api/invoices/:id/document
func (h *InvoiceHandler) SaveDocument(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	var in dto.InvoiceDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SaveDocument(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// PDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	out, filename, err := h.pdf.InvoicePDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, out, filename)
}

// ListItems GET /api/invoice-items/invoice/:id
func (h *InvoiceHandler) ListItems(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	items, err := h.uc.ListItems(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(items)
}

// CreateItem POST /api/invoice-items
func (h *InvoiceHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.InvoiceItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id)
}

// DeleteItem DELETE /api/invoice-items/:id
func (h *InvoiceHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteItem(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// FromQuotation godoc
// @Summary      Generar factura borrador desde una cotización
// @Tags         invoices
// @Produce      json
// @Param        id   path      string  true  "ID de la cotización"
// @Success      201  {object}  dto.IDResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/from-quotation/{id} [post]
func (h *InvoiceHandler) FromQuotation(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	invoiceID, err := h.uc.ConvertFromQuotation(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, invoiceID)
}
