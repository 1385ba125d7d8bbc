package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/biblia-self-hosted-api/internal/models"
	"github.com/biblia-self-hosted-api/internal/repository"
	"github.com/biblia-self-hosted-api/internal/services"
)

// defaultVersion is used when a reference search names no version
const defaultVersion = "ARA"

// BibleHandler handles verse lookup and navigation endpoints
type BibleHandler struct {
	bible *services.BibleService
}

// NewBibleHandler creates a new bible handler
func NewBibleHandler(bible *services.BibleService) *BibleHandler {
	return &BibleHandler{bible: bible}
}

// ChapterCountResponse is the response for GET /bible/books/:id/chapters
type ChapterCountResponse struct {
	BookID   int `json:"book_id"`
	Chapters int `json:"chapters"`
}

// VerseCountResponse is the response for GET /bible/books/:id/chapters/:chapter/verses
type VerseCountResponse struct {
	BookID  int `json:"book_id"`
	Chapter int `json:"chapter"`
	Verses  int `json:"verses"`
}

// LookupVerse handles GET /bible/verse/:version/:book/:chapter/:number -
// the reference lookup by the full verse key.
func (h *BibleHandler) LookupVerse(c echo.Context) error {
	ctx := c.Request().Context()

	version := c.Param("version")
	book := c.Param("book")
	chapter, err := positiveIntParam(c, "chapter")
	if err != nil {
		return err
	}
	number, err := positiveIntParam(c, "number")
	if err != nil {
		return err
	}

	verse, err := h.bible.Lookup(ctx, version, book, chapter, number)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Lookup failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, verse)
}

// SearchVerses handles GET /bible/verse?q=Jo 3:16-18&version=ARA -
// free-form reference search against one version.
func (h *BibleHandler) SearchVerses(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter q is required")
	}

	version := c.QueryParam("version")
	if version == "" {
		version = defaultVersion
	}

	results, err := h.bible.Search(ctx, query, version)
	if errors.Is(err, services.ErrInvalidReference) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, models.VerseSearchResponse{
		Query:   query,
		Version: version,
		Results: results,
	})
}

// ListBooks handles GET /bible/books
func (h *BibleHandler) ListBooks(c echo.Context) error {
	books, err := h.bible.Books(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Listing books failed: "+err.Error())
	}
	return c.JSON(http.StatusOK, books)
}

// ListVersions handles GET /bible/versions
func (h *BibleHandler) ListVersions(c echo.Context) error {
	versions, err := h.bible.Versions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Listing versions failed: "+err.Error())
	}
	return c.JSON(http.StatusOK, versions)
}

// ChapterCount handles GET /bible/books/:id/chapters
func (h *BibleHandler) ChapterCount(c echo.Context) error {
	bookID, err := positiveIntParam(c, "id")
	if err != nil {
		return err
	}

	count, err := h.bible.ChapterCount(c.Request().Context(), bookID)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Counting chapters failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, ChapterCountResponse{BookID: bookID, Chapters: count})
}

// VerseCount handles GET /bible/books/:id/chapters/:chapter/verses
func (h *BibleHandler) VerseCount(c echo.Context) error {
	bookID, err := positiveIntParam(c, "id")
	if err != nil {
		return err
	}
	chapter, err := positiveIntParam(c, "chapter")
	if err != nil {
		return err
	}

	count, err := h.bible.VerseCount(c.Request().Context(), bookID, chapter)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Counting verses failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, VerseCountResponse{BookID: bookID, Chapter: chapter, Verses: count})
}

// positiveIntParam parses a path parameter that must be a positive integer,
// rejecting malformed input before any query runs.
func positiveIntParam(c echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil || value < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return value, nil
}

// RegisterRoutes registers bible routes
func (h *BibleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/bible/verse", h.SearchVerses)
	g.GET("/bible/verse/:version/:book/:chapter/:number", h.LookupVerse)
	g.GET("/bible/books", h.ListBooks)
	g.GET("/bible/versions", h.ListVersions)
	g.GET("/bible/books/:id/chapters", h.ChapterCount)
	g.GET("/bible/books/:id/chapters/:chapter/verses", h.VerseCount)
}
