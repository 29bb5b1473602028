package taxonomy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNoRows is returned when the keyword_taxonomy table holds no phrases.
var ErrNoRows = errors.New("keyword taxonomy table is empty")

// PGRepo reads and seeds the keyword_taxonomy table.
type PGRepo struct {
	DB *sql.DB
}

// Load reads every phrase ordered by category and position.
func (r *PGRepo) Load(ctx context.Context) (*Taxonomy, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT category, phrase
FROM keyword_taxonomy
ORDER BY category, position`)
	if err != nil {
		return nil, fmt.Errorf("query keyword_taxonomy: %w", err)
	}
	defer rows.Close()

	entries := make(map[Category][]string)
	count := 0
	for rows.Next() {
		var category, phrase string
		if err := rows.Scan(&category, &phrase); err != nil {
			return nil, fmt.Errorf("scan keyword_taxonomy: %w", err)
		}
		entries[Category(category)] = append(entries[Category(category)], phrase)
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keyword_taxonomy: %w", err)
	}
	if count == 0 {
		return nil, ErrNoRows
	}
	return New(entries)
}

// Seed replaces the table contents with t in a single transaction.
func (r *PGRepo) Seed(ctx context.Context, t *Taxonomy) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM keyword_taxonomy`); err != nil {
		return fmt.Errorf("clear keyword_taxonomy: %w", err)
	}
	for _, cat := range Categories {
		for pos, phrase := range t.phrases[cat] {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO keyword_taxonomy (category, position, phrase) VALUES ($1, $2, $3)`,
				string(cat), pos, phrase,
			); err != nil {
				return fmt.Errorf("insert %s/%s: %w", cat, phrase, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}
