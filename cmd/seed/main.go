// seed carga el portafolio de pólizas de ejemplo en PostgreSQL: aplica las
// migraciones y agrega las pólizas que aún no existan (idempotente).
//
// Uso: DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tu-usuario/policy-admin/internal/infrastructure/postgres"
	"github.com/tu-usuario/policy-admin/internal/infrastructure/seed"
	"github.com/tu-usuario/policy-admin/pkg/config"
	"github.com/tu-usuario/policy-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL es obligatorio para sembrar PostgreSQL")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	if err := seed.Load(postgres.NewPolicyRepository(pool), log); err != nil {
		log.Fatal().Err(err).Msg("sembrar portafolio de ejemplo")
	}
	log.Info().Msg("siembra completada")
}
