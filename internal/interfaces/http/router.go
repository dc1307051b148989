package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *billing.CustomerUseCase
	ServiceUC   *billing.ServiceUseCase
	QuotationUC *billing.QuotationUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	StatsUC     *billing.StatsUseCase
	Health      repository.HealthChecker
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	dashboardHandler := NewDashboardHandler(deps.StatsUC, deps.Health)
	api.Get("/health", dashboardHandler.Health)
	api.Get("/dashboard/stats", dashboardHandler.Stats)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Rutas estáticas antes de /:id.
	quotations := api.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.PDFUC)
	quotations.Get("/", quotationHandler.List)
	quotations.Post("/", quotationHandler.Create)
	quotations.Post("/documents", quotationHandler.CreateDocument)
	quotations.Get("/:id", quotationHandler.Get)
	quotations.Put("/:id", quotationHandler.Update)
	quotations.Delete("/:id", quotationHandler.Delete)
	quotations.Put("/:id/document", quotationHandler.SaveDocument)
	quotations.Get("/:id/pdf", quotationHandler.PDF)

	quotationItems := api.Group("/quotation-items")
	quotationItems.Get("/quotation/:id", quotationHandler.ListItems)
	quotationItems.Post("/", quotationHandler.CreateItem)
	quotationItems.Delete("/:id", quotationHandler.DeleteItem)

	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/documents", invoiceHandler.CreateDocument)
	invoices.Post("/from-quotation/:id", invoiceHandler.FromQuotation)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Put("/:id/document", invoiceHandler.SaveDocument)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)

	invoiceItems := api.Group("/invoice-items")
	invoiceItems.Get("/invoice/:id", invoiceHandler.ListItems)
	invoiceItems.Post("/", invoiceHandler.CreateItem)
	invoiceItems.Delete("/:id", invoiceHandler.DeleteItem)
}
