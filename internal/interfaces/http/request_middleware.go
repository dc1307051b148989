package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

// requestObserver lo implementa *metrics.Metrics.
type requestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// RequestLogger registra cada petición con método, ruta, status y latencia.
// 5xx se registran en nivel error; el resto en debug.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := handled(c, c.Next())
		status := c.Response().StatusCode()
		ev := log.Debug()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}

// Metrics cuenta peticiones y latencias por ruta registrada (no por path concreto).
func Metrics(obs requestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := handled(c, c.Next())
		route := c.Route().Path
		obs.ObserveRequest(c.Method(), route, c.Response().StatusCode(), time.Since(start))
		return err
	}
}

// handled aplica el ErrorHandler de la app a un error de la cadena para que el status
// observado sea el que recibe el cliente.
func handled(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}
	if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
	return nil
}
