package main

// Run database migrations for the keyword taxonomy table:
//   go run ./cmd/migrate
// Replace the table contents with the built-in taxonomy:
//   go run ./cmd/migrate -seed

import (
	"context"
	"flag"
	"os"

	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/storage/db"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/taxonomy"
)

func main() {
	seed := flag.Bool("seed", false, "replace keyword_taxonomy rows with the built-in taxonomy")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fail("config", err)
	}
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		fail("connect", err)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		fail("migrations", err)
	}
	telemetry.Info("migrate.done", nil)

	if *seed {
		tax := taxonomy.Default()
		if err := (&taxonomy.PGRepo{DB: sqlDB}).Seed(ctx, tax); err != nil {
			fail("seed", err)
		}
		telemetry.Info("migrate.seeded", map[string]any{"phrases": tax.Total()})
	}
}

func fail(stage string, err error) {
	telemetry.Error("migrate.failed", map[string]any{"stage": stage, "error": err.Error()})
	telemetry.Sync()
	os.Exit(1)
}
