package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblia-self-hosted-api/internal/models"
)

type fakeReadingListRepo struct {
	lists []models.ReadingList
}

func (f *fakeReadingListRepo) Search(_ context.Context, query string, offset, limit int) ([]models.ReadingList, int, error) {
	var matched []models.ReadingList
	for _, l := range f.lists {
		if query == "" || strings.Contains(strings.ToLower(l.Title), strings.ToLower(query)) {
			matched = append(matched, l)
		}
	}
	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func listFixture(n int) []models.ReadingList {
	lists := make([]models.ReadingList, n)
	for i := range lists {
		lists[i] = models.ReadingList{ID: i + 1, Title: "Vida em Cristo", Content: "Jo 3:16"}
	}
	return lists
}

func TestReadingListPagination(t *testing.T) {
	svc := NewReadingListService(&fakeReadingListRepo{lists: listFixture(25)})

	page, err := svc.Search(context.Background(), "", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 10)
}

func TestReadingListLastPageIsPartial(t *testing.T) {
	svc := NewReadingListService(&fakeReadingListRepo{lists: listFixture(25)})

	page, err := svc.Search(context.Background(), "", 3, 10)
	require.NoError(t, err)

	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.TotalPages)
}

func TestReadingListTitleFilter(t *testing.T) {
	repo := &fakeReadingListRepo{lists: []models.ReadingList{
		{ID: 1, Title: "Vida em Cristo", Content: "Jo 3:16"},
		{ID: 2, Title: "Salmos de louvor", Content: "Sl 23:1"},
	}}
	svc := NewReadingListService(repo)

	page, err := svc.Search(context.Background(), "cristo", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Vida em Cristo", page.Items[0].Title)
}

func TestReadingListEmptyResult(t *testing.T) {
	svc := NewReadingListService(&fakeReadingListRepo{})

	page, err := svc.Search(context.Background(), "nada", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
}
