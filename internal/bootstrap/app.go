package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-ats/internal/analyses"
	"resume-ats/internal/ats"
	"resume-ats/internal/shared/config"
	"resume-ats/internal/shared/server"
	"resume-ats/internal/shared/storage/db"
	"resume-ats/internal/shared/storage/object"
	localstore "resume-ats/internal/shared/storage/object/local"
	s3store "resume-ats/internal/shared/storage/object/s3"
	"resume-ats/internal/shared/telemetry"
	"resume-ats/internal/taxonomy"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Store           object.ScratchStore
	Taxonomy        *taxonomy.Taxonomy
	Phones          ats.PhoneStrategy
	Analyzer        *ats.Analyzer
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
}

// Build loads the taxonomy once and wires the scoring pipeline and router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ScratchStore) == "" {
		cfg.ScratchStore = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tax, err := taxonomy.Load(ctx, taxonomy.Options{
		Source: cfg.TaxonomySource,
		File:   cfg.TaxonomyFile,
		DB:     sqlDB,
	})
	if err != nil {
		closeDB(sqlDB)
		return nil, fmt.Errorf("bootstrap: load taxonomy: %w", err)
	}
	// The taxonomy is read once; the pool is not needed afterwards.
	closeDB(sqlDB)

	phones, err := ats.PhoneStrategyFor(cfg.PhoneRegion)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Store:    store,
		Taxonomy: tax,
		Phones:   phones,
	}
	app.Analyzer = ats.NewAnalyzer(tax, phones)
	app.AnalysesService = &analyses.Service{
		Store:        store,
		Analyzer:     app.Analyzer,
		MinTextChars: cfg.MinTextChars,
	}
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, cfg.MaxUploadBytes)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":             cfg.Env,
		"taxonomy_source": sourceOrDefault(cfg.TaxonomySource),
		"taxonomy_size":   tax.Total(),
		"phone_region":    phones.Region(),
		"scratch_store":   cfg.ScratchStore,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.TaxonomySource != taxonomy.SourcePostgres {
		return nil, nil
	}
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ScratchStore, error) {
	switch cfg.ScratchStore {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.ScratchDir), nil
	}
}

func closeDB(sqlDB *sql.DB) {
	if sqlDB == nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		telemetry.Warn("bootstrap.db_close_failed", map[string]any{"error": err.Error()})
	}
}

func sourceOrDefault(source string) string {
	if source == "" {
		return taxonomy.SourceBuiltin
	}
	return source
}
