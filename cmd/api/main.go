package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/tu-usuario/policy-admin/internal/application/usecase"
	"github.com/tu-usuario/policy-admin/internal/domain/repository"
	"github.com/tu-usuario/policy-admin/internal/infrastructure/memory"
	"github.com/tu-usuario/policy-admin/internal/infrastructure/postgres"
	"github.com/tu-usuario/policy-admin/internal/infrastructure/seed"
	httpRouter "github.com/tu-usuario/policy-admin/internal/interfaces/http"
	"github.com/tu-usuario/policy-admin/pkg/config"
	"github.com/tu-usuario/policy-admin/pkg/logger"
	"github.com/tu-usuario/policy-admin/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	level := "info"
	if cfg.App.Debug {
		level = "debug"
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Selección del storage: DATABASE_URL -> PostgreSQL (con migraciones al
	// inicio); sin DATABASE_URL -> store embebido en memoria.
	var (
		policyRepo repository.PolicyRepository
		txRunner   usecase.TxRunner
	)
	if cfg.DB.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, cfg.DB.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if err := postgres.Migrate(pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar migraciones")
		}
		policyRepo = postgres.NewPolicyRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		log.Info().Msg("storage PostgreSQL listo")
	} else {
		store := memory.NewStore()
		if cfg.DB.SeedSample {
			if err := seed.Load(store, log); err != nil {
				log.Fatal().Err(err).Msg("sembrar portafolio de ejemplo")
			}
		}
		policyRepo = store
		txRunner = store
		log.Warn().Msg("sin DATABASE_URL: usando store en memoria")
	}

	mtr := metrics.New()
	policyUC := usecase.NewPolicyUseCase(policyRepo, txRunner, log, mtr)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// Access log estructurado con el request id propagado
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Policy Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PolicyUC:  policyUC,
		StaticDir: "./web/static",
	})

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
