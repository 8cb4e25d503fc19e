// migrate aplica los scripts SQL de migrations/ en orden lexicográfico.
// Cada script es idempotente (CREATE IF NOT EXISTS / ON CONFLICT), así que
// re-ejecutar el comando es seguro.
//
// Uso: go run ./cmd/migrate [directorio]
// Por defecto usa ./migrations.
package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/hamster-api/internal/infrastructure/postgres"
	"github.com/jhoicas/hamster-api/pkg/config"
	"github.com/jhoicas/hamster-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	dir := "migrations"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dir).Msg("leer directorio de migraciones")
	}
	var scripts []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			scripts = append(scripts, e.Name())
		}
	}
	sort.Strings(scripts)
	if len(scripts) == 0 {
		log.Fatal().Str("dir", dir).Msg("no hay scripts .sql")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	for _, name := range scripts {
		sql, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Fatal().Err(err).Str("script", name).Msg("leer script")
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Str("script", name).Msg("aplicar migración")
		}
		log.Info().Str("script", name).Msg("migración aplicada")
	}
	log.Info().Int("scripts", len(scripts)).Msg("migraciones completadas")
}
