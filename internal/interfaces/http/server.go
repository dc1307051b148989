package http

import (
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/memory"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	"github.com/jhoicas/Facturacion-api/pkg/metrics"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name string
	// SwaggerFile swagger.json servido en /docs; si no existe, la UI no se monta.
	SwaggerFile string
	Logger      *logger.Logger
	Metrics     *metrics.Metrics
}

// NewApp construye la app Fiber con middlewares, /metrics, /docs y las rutas de /api.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	app := fiber.New(fiber.Config{
		AppName: cfg.Name,
		// Params y cuerpo se copian: los repos en memoria guardan el id recibido en la ruta.
		Immutable:    true,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(RequestLogger(log.Named("http")))
	if cfg.Metrics != nil {
		app.Use(Metrics(cfg.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.SwaggerFile != "" {
		if _, err := os.Stat(cfg.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.SwaggerFile,
				Path:     "docs",
				Title:    "Facturacion API",
			}))
		} else {
			log.Warn().Str("file", cfg.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}
	// Documento OpenAPI registrado en swag (paquete docs), aunque no haya archivo en disco.
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc()
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	Router(app, deps)
	return app
}

// MemoryDeps arma todas las dependencias sobre un store en memoria.
func MemoryDeps(store *memory.Store, pdf billing.DocumentPDFGenerator, recorder billing.Recorder) RouterDeps {
	return BuildDeps(store.Customers(), store.Services(), store.Quotations(), store.Invoices(), store, store, pdf, recorder)
}

// BuildDeps construye los casos de uso a partir de los puertos de persistencia.
func BuildDeps(
	customers repository.CustomerRepository,
	services repository.ServiceRepository,
	quotations repository.QuotationRepository,
	invoices repository.InvoiceRepository,
	tx repository.DocumentTxRunner,
	health repository.HealthChecker,
	pdf billing.DocumentPDFGenerator,
	recorder billing.Recorder,
) RouterDeps {
	quotationUC := billing.NewQuotationUseCase(quotations, tx, recorder)
	invoiceUC := billing.NewInvoiceUseCase(invoices, quotations, tx, recorder)
	return RouterDeps{
		CustomerUC:  billing.NewCustomerUseCase(customers),
		ServiceUC:   billing.NewServiceUseCase(services),
		QuotationUC: quotationUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       billing.NewPDFUseCase(quotationUC, invoiceUC, customers, pdf),
		StatsUC:     billing.NewStatsUseCase(customers, services, quotations, invoices),
		Health:      health,
	}
}
