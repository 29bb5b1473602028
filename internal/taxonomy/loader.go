package taxonomy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"resume-ats/internal/shared/telemetry"
)

const (
	SourceBuiltin  = "builtin"
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Options selects where the taxonomy is loaded from.
type Options struct {
	Source string
	File   string
	DB     *sql.DB
}

// Load resolves the taxonomy once for the lifetime of the process.
// An empty Postgres table falls back to the built-in taxonomy.
func Load(ctx context.Context, opts Options) (*Taxonomy, error) {
	switch opts.Source {
	case "", SourceBuiltin:
		return Default(), nil
	case SourceFile:
		if opts.File == "" {
			return nil, errors.New("taxonomy file path is required")
		}
		return LoadFile(opts.File)
	case SourcePostgres:
		if opts.DB == nil {
			return nil, errors.New("taxonomy postgres source requires a database")
		}
		repo := &PGRepo{DB: opts.DB}
		t, err := repo.Load(ctx)
		if errors.Is(err, ErrNoRows) {
			telemetry.Warn("taxonomy.empty_table", map[string]any{"fallback": SourceBuiltin})
			return Default(), nil
		}
		return t, err
	default:
		return nil, fmt.Errorf("unknown taxonomy source %q", opts.Source)
	}
}
