package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/Facturacion-api/docs"
	infrapdf "github.com/jhoicas/Facturacion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/memory"
	"github.com/jhoicas/Facturacion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Facturacion-api/internal/interfaces/http"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
	"github.com/jhoicas/Facturacion-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.App.StoreDriver).
		Msg("iniciando aplicación")

	m := metrics.New()
	// PDF: cotizaciones y facturas con el nombre de la aplicación como emisor
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	var deps httpRouter.RouterDeps
	switch cfg.App.StoreDriver {
	case config.StoreDriverMemory:
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		deps = httpRouter.MemoryDeps(memory.NewStore(), pdfGenerator, m)
	default:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		// Después del pool: NewPool crea el schema de DB_INSTANCE si falta.
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
				log.Fatal().Err(err).Msg("migraciones de PostgreSQL")
			}
			log.Info().Msg("esquema actualizado")
		}

		deps = httpRouter.BuildDeps(
			postgres.NewCustomerRepository(pool),
			postgres.NewServiceRepository(pool),
			postgres.NewQuotationRepository(pool),
			postgres.NewInvoiceRepository(pool),
			postgres.NewTxRunner(pool),
			postgres.NewHealth(pool),
			pdfGenerator,
			m,
		)
	}

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		SwaggerFile: cfg.Swagger.FilePath,
		Logger:      log,
		Metrics:     m,
	}, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
