package repository

import (
	"context"
	"fmt"

	"github.com/dskvich/image-api/pkg/domain"
	"github.com/uptrace/bun"
)

type generationRepository struct {
	db *bun.DB
}

func NewGenerationRepository(db *bun.DB) *generationRepository {
	return &generationRepository{db: db}
}

func (g *generationRepository) Save(ctx context.Context, generation *domain.Generation) error {
	_, err := g.db.NewInsert().
		Model(generation).
		Returning("id").
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("saving generation: %w", err)
	}

	return nil
}

func (g *generationRepository) Ping(ctx context.Context) error {
	return g.db.PingContext(ctx)
}

// ListTables backs the diagnostics endpoint's table listing.
func (g *generationRepository) ListTables(ctx context.Context, limit int) ([]string, error) {
	var tables []string

	err := g.db.NewRaw(
		"SELECT tablename FROM pg_catalog.pg_tables WHERE schemaname = 'public' ORDER BY tablename LIMIT ?",
		limit,
	).Scan(ctx, &tables)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	return tables, nil
}
