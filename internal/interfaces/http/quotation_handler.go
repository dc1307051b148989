package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// QuotationHandler cotizaciones: cabecera, líneas, documento completo y PDF.
type QuotationHandler struct {
	uc  *billing.QuotationUseCase
	pdf *billing.PDFUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *billing.QuotationUseCase, pdf *billing.PDFUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc, pdf: pdf}
}

// List GET /api/quotations
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/quotations/:id (cabecera + líneas)
func (h *QuotationHandler) Get(c *fiber.Ctx) error {
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

// Create POST /api/quotations (solo cabecera)
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id)
}

// Update PUT /api/quotations/:id (solo cabecera)
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// Delete DELETE /api/quotations/:id
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// CreateDocument godoc
// @Summary      Crear cotización con líneas
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.QuotationDocumentRequest  true  "Cabecera y líneas"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotations/documents [post]
func (h *QuotationHandler) CreateDocument(c *fiber.Ctx) error {
	var in dto.QuotationDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.CreateDocument(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id)
}

// SaveDocument godoc
// @Summary      Guardar cotización con líneas (reemplaza las líneas)
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "ID de la cotización"
// @Param        body  body      dto.QuotationDocumentRequest  true  "Cabecera y líneas"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/document [put]
func (h *QuotationHandler) SaveDocument(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	var in dto.QuotationDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.SaveDocument(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// PDF GET /api/quotations/:id/pdf
func (h *QuotationHandler) PDF(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	out, filename, err := h.pdf.QuotationPDF(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, out, filename)
}

// ListItems GET /api/quotation-items/quotation/:id
func (h *QuotationHandler) ListItems(c *fiber.Ctx) error {
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

// CreateItem POST /api/quotation-items
func (h *QuotationHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.QuotationItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id)
}

// DeleteItem DELETE /api/quotation-items/:id
func (h *QuotationHandler) DeleteItem(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteItem(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

func sendPDF(c *fiber.Ctx, out []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(out)
}
