package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cinefind/cinefind/internal/errors"
	"github.com/cinefind/cinefind/internal/models"
)

func (h *Handler) handleSearch(c *gin.Context) {
	filters := models.MovieFilters{
		Query:      c.Query("query"),
		ActorQuery: c.Query("actor"),
		GenreIDs:   parseGenreIDs(c.Query("genres")),
		Sort:       c.Query("sort"),
		Page:       intQuery(c, "page"),
		PageSize:   intQuery(c, "page_size"),
		Language:   c.Query("lang"),
	}

	result, err := h.services.Search.Search(filters)
	if err != nil {
		if errors.IsInvalidInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.services.Logger.Errorf("[MovieHandler] search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) handleMovie(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return
	}

	movie, err := h.services.Store.FindLocalizedByID(uint(id), h.language(c))
	if err != nil {
		h.services.Logger.Errorf("[MovieHandler] movie lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "movie lookup failed"})
		return
	}
	if movie == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// parseGenreIDs parses a comma-separated genre ID list, skipping tokens
// that are not integers.
func parseGenreIDs(raw string) []int {
	if raw == "" {
		return nil
	}

	var ids []int
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if id, err := strconv.Atoi(token); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// intQuery returns a query parameter as an int, or 0 when absent or
// unparseable (the search service applies its own defaults and clamps).
func intQuery(c *gin.Context, name string) int {
	value, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return value
}
