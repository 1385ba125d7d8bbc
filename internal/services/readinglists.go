package services

import (
	"context"

	"github.com/biblia-self-hosted-api/internal/models"
	"github.com/biblia-self-hosted-api/internal/repository"
)

// ReadingListService answers paginated title searches over curated
// reading lists
type ReadingListService struct {
	lists repository.ReadingListRepository
}

// NewReadingListService creates a new reading list service
func NewReadingListService(lists repository.ReadingListRepository) *ReadingListService {
	return &ReadingListService{lists: lists}
}

// Search returns one page of reading lists whose title matches the
// optional query. Page numbering starts at 1.
func (s *ReadingListService) Search(ctx context.Context, query string, page, size int) (*models.ReadingListPage, error) {
	offset := (page - 1) * size
	items, total, err := s.lists.Search(ctx, query, offset, size)
	if err != nil {
		return nil, err
	}
	return &models.ReadingListPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: (total + size - 1) / size,
	}, nil
}
