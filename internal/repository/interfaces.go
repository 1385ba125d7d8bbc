package repository

import (
	"context"
	"errors"

	"github.com/biblia-self-hosted-api/internal/models"
)

// ErrNotFound reports that a valid query matched no row. It is a domain
// condition, not a store failure; callers map it to a 404 or a per-item
// miss rather than a 5xx.
var ErrNotFound = errors.New("not found")

// VerseRepository defines read access to verses
type VerseRepository interface {
	// Lookup returns the single verse identified by version abbreviation,
	// book abbreviation, chapter and verse number. Returns ErrNotFound
	// when no row matches.
	Lookup(ctx context.Context, version, book string, chapter, number int) (*models.Verse, error)
}

// BookRepository defines read access to books and their chapter structure
type BookRepository interface {
	// List returns all books in canonical position order
	List(ctx context.Context) ([]models.Book, error)
	// ChapterCount returns the number of chapters of a book
	ChapterCount(ctx context.Context, bookID int) (int, error)
	// VerseCount returns the number of verses in one chapter of a book
	VerseCount(ctx context.Context, bookID, chapter int) (int, error)
}

// VersionRepository defines read access to translations
type VersionRepository interface {
	// List returns all active versions
	List(ctx context.Context) ([]models.Version, error)
}

// ReadingListRepository defines read access to curated reading lists
type ReadingListRepository interface {
	// Search returns reading lists whose title matches the optional query,
	// plus the total match count for pagination
	Search(ctx context.Context, query string, offset, limit int) ([]models.ReadingList, int, error)
}
