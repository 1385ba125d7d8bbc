package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/biblia-self-hosted-api/internal/models"
	"github.com/biblia-self-hosted-api/internal/repository"
)

// VersionRepository implements repository.VersionRepository for PostgreSQL
type VersionRepository struct {
	db *sqlx.DB
}

// NewVersionRepository creates a new PostgreSQL version repository
func NewVersionRepository(db *sqlx.DB) repository.VersionRepository {
	return &VersionRepository{db: db}
}

// List returns all active versions
func (r *VersionRepository) List(ctx context.Context) ([]models.Version, error) {
	var versions []models.Version
	err := r.db.SelectContext(ctx, &versions, `
		SELECT id, abbrev, name, active
		FROM versions
		WHERE active
		ORDER BY abbrev
	`)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	if versions == nil {
		versions = []models.Version{}
	}
	return versions, nil
}
