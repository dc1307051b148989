package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
)

// ServiceHandler maneja el catálogo de servicios.
type ServiceHandler struct {
	uc *billing.ServiceUseCase
}

func NewServiceHandler(uc *billing.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List GET /api/services
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Create POST /api/services
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	id, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return created(c, id)
}

// Update PUT /api/services/:id
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return writeError(c, err)
	}
	return success(c)
}

// Delete DELETE /api/services/:id
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return success(c)
}
