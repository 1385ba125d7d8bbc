package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/biblia-self-hosted-api/internal/models"
	"github.com/biblia-self-hosted-api/internal/reference"
	"github.com/biblia-self-hosted-api/internal/repository"
)

// ErrInvalidReference marks a malformed reference query, rejected before
// any database access.
var ErrInvalidReference = errors.New("invalid reference")

// BibleService answers verse lookups and navigation queries over the
// seeded bible tables
type BibleService struct {
	verses   repository.VerseRepository
	books    repository.BookRepository
	versions repository.VersionRepository
}

// NewBibleService creates a new bible service
func NewBibleService(
	verses repository.VerseRepository,
	books repository.BookRepository,
	versions repository.VersionRepository,
) *BibleService {
	return &BibleService{
		verses:   verses,
		books:    books,
		versions: versions,
	}
}

// Lookup returns the single verse identified by version abbreviation, book
// abbreviation, chapter and verse number. Returns repository.ErrNotFound
// when no seeded verse matches.
func (s *BibleService) Lookup(ctx context.Context, version, book string, chapter, number int) (*models.Verse, error) {
	return s.verses.Lookup(ctx, version, book, chapter, number)
}

// Search expands a free-form reference string and looks up every verse it
// names against one version. References that match no seeded verse come
// back with Found=false; the rest of the query still resolves.
func (s *BibleService) Search(ctx context.Context, query, version string) ([]models.VerseResult, error) {
	refs, err := reference.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	results := make([]models.VerseResult, 0, len(refs))
	for _, ref := range refs {
		verse, err := s.verses.Lookup(ctx, version, ref.Book, ref.Chapter, ref.Number)
		if errors.Is(err, repository.ErrNotFound) {
			results = append(results, models.VerseResult{
				Version: version,
				Book:    ref.Book,
				Chapter: ref.Chapter,
				Number:  ref.Number,
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		results = append(results, models.VerseResult{
			Version: verse.Version,
			Book:    verse.Book,
			Chapter: verse.Chapter,
			Number:  verse.Number,
			Text:    verse.Text,
			Found:   true,
		})
	}
	return results, nil
}

// Books returns all books in canonical position order
func (s *BibleService) Books(ctx context.Context) ([]models.Book, error) {
	return s.books.List(ctx)
}

// Versions returns all active versions
func (s *BibleService) Versions(ctx context.Context) ([]models.Version, error) {
	return s.versions.List(ctx)
}

// ChapterCount returns the number of chapters of a book
func (s *BibleService) ChapterCount(ctx context.Context, bookID int) (int, error) {
	return s.books.ChapterCount(ctx, bookID)
}

// VerseCount returns the number of verses in one chapter of a book
func (s *BibleService) VerseCount(ctx context.Context, bookID, chapter int) (int, error) {
	return s.books.VerseCount(ctx, bookID, chapter)
}
