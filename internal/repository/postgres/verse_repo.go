package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/biblia-self-hosted-api/internal/models"
	"github.com/biblia-self-hosted-api/internal/repository"
)

// VerseRepository implements repository.VerseRepository for PostgreSQL
type VerseRepository struct {
	db *sqlx.DB
}

// NewVerseRepository creates a new PostgreSQL verse repository
func NewVerseRepository(db *sqlx.DB) repository.VerseRepository {
	return &VerseRepository{db: db}
}

// Lookup performs the reference lookup: an equality join across verses,
// versions and books filtering on all four inputs. The UNIQUE constraint
// on (version_id, book_id, chapter, number) guarantees at most one row.
func (r *VerseRepository) Lookup(ctx context.Context, version, book string, chapter, number int) (*models.Verse, error) {
	var v models.Verse
	err := r.db.GetContext(ctx, &v, `
		SELECT v.id, ver.abbrev AS version, b.abbrev AS book,
		       v.chapter, v.number, v.text
		FROM verses v
		JOIN versions ver ON v.version_id = ver.id
		JOIN books b ON v.book_id = b.id
		WHERE ver.abbrev = $1 AND b.abbrev = $2
		  AND v.chapter = $3 AND v.number = $4
	`, version, book, chapter, number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("verse %s %d:%d (%s): %w", book, chapter, number, version, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup verse: %w", err)
	}
	return &v, nil
}
