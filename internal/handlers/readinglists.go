package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/biblia-self-hosted-api/internal/services"
)

// ReadingListHandler handles reading list endpoints
type ReadingListHandler struct {
	lists *services.ReadingListService
}

// NewReadingListHandler creates a new reading list handler
func NewReadingListHandler(lists *services.ReadingListService) *ReadingListHandler {
	return &ReadingListHandler{lists: lists}
}

// Search handles GET /reading-lists?q=&page=&size= - paginated title search
func (h *ReadingListHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "page must be a positive integer")
		}
		page = v
	}

	size := 10
	if raw := c.QueryParam("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 100 {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be between 1 and 100")
		}
		size = v
	}

	result, err := h.lists.Search(c.Request().Context(), query, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Searching reading lists failed: "+err.Error())
	}

	return c.JSON(http.StatusOK, result)
}

// RegisterRoutes registers reading list routes
func (h *ReadingListHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/reading-lists", h.Search)
}
