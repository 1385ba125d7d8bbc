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

// BookRepository implements repository.BookRepository for PostgreSQL
type BookRepository struct {
	db *sqlx.DB
}

// NewBookRepository creates a new PostgreSQL book repository
func NewBookRepository(db *sqlx.DB) repository.BookRepository {
	return &BookRepository{db: db}
}

// List returns all books in canonical position order
func (r *BookRepository) List(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	err := r.db.SelectContext(ctx, &books, `
		SELECT id, position, abbrev, name, testament_id
		FROM books
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

// ChapterCount returns how many chapters a book has, derived from the
// per-chapter verse count table.
func (r *BookRepository) ChapterCount(ctx context.Context, bookID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM book_chapter_verse_counts
		WHERE book_id = $1
	`, bookID)
	if err != nil {
		return 0, fmt.Errorf("count chapters of book %d: %w", bookID, err)
	}
	if count == 0 {
		return 0, fmt.Errorf("book %d: %w", bookID, repository.ErrNotFound)
	}
	return count, nil
}

// VerseCount returns the number of verses in one chapter of a book
func (r *BookRepository) VerseCount(ctx context.Context, bookID, chapter int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT verse_count
		FROM book_chapter_verse_counts
		WHERE book_id = $1 AND chapter = $2
	`, bookID, chapter)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("book %d chapter %d: %w", bookID, chapter, repository.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("count verses of book %d chapter %d: %w", bookID, chapter, err)
	}
	return count, nil
}
