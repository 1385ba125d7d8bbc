package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/biblia-self-hosted-api/internal/models"
	"github.com/biblia-self-hosted-api/internal/repository"
)

// ReadingListRepository implements repository.ReadingListRepository for PostgreSQL
type ReadingListRepository struct {
	db *sqlx.DB
}

// NewReadingListRepository creates a new PostgreSQL reading list repository
func NewReadingListRepository(db *sqlx.DB) repository.ReadingListRepository {
	return &ReadingListRepository{db: db}
}

// Search returns reading lists whose title matches the optional query,
// in insertion order, plus the total match count for pagination.
func (r *ReadingListRepository) Search(ctx context.Context, query string, offset, limit int) ([]models.ReadingList, int, error) {
	where := ""
	args := []interface{}{}
	if query != "" {
		where = "WHERE title ILIKE $1"
		args = append(args, "%"+query+"%")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf(`
		SELECT COUNT(*) FROM reading_lists %s
	`, where), args...); err != nil {
		return nil, 0, fmt.Errorf("count reading lists: %w", err)
	}

	args = append(args, limit, offset)
	var lists []models.ReadingList
	err := r.db.SelectContext(ctx, &lists, fmt.Sprintf(`
		SELECT id, title, content
		FROM reading_lists %s
		ORDER BY id
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search reading lists: %w", err)
	}
	if lists == nil {
		lists = []models.ReadingList{}
	}
	return lists, total, nil
}
