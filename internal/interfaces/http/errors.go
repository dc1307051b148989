package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Facturacion-api/internal/application/dto"
	"github.com/jhoicas/Facturacion-api/internal/domain"
)

// Códigos de error en el cuerpo de las respuestas no-2xx.
const (
	CodeValidation  = "VALIDATION"
	CodeInvalidBody = "INVALID_BODY"
	CodeNotFound    = "NOT_FOUND"
	CodeInternal    = "INTERNAL"
)

// writeError traduce un error de dominio a status + {"error", "code"}.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeValidation})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeNotFound})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error(), Code: CodeInternal})
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido", Code: CodeInvalidBody})
}

// pathID lee :id y verifica que sea un UUID. Si no lo es, ya respondió 400.
func pathID(c *fiber.Ctx) (string, bool) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido: " + id, Code: CodeValidation})
		return "", false
	}
	return id, true
}

func created(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

func success(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{Success: true})
}

// errorHandler handler global de Fiber: errores no manejados (404 de ruta, panics recuperados).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	apiCode := CodeInternal
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		if code == fiber.StatusNotFound {
			apiCode = CodeNotFound
		}
	}
	return c.Status(code).JSON(dto.ErrorResponse{Error: err.Error(), Code: apiCode})
}
