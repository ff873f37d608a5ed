package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPosterLimit = 12

func (h *Handler) handleGenres(c *gin.Context) {
	genres, err := h.services.Catalog.ListGenres(h.language(c))
	if err != nil {
		h.services.Logger.Errorf("[CatalogHandler] genre listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "genre listing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

func (h *Handler) handlePosters(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPosterLimit)))
	if err != nil || limit < 1 {
		limit = defaultPosterLimit
	}

	var language *string
	if lang := c.Query("lang"); lang != "" {
		language = &lang
	}

	posters, err := h.services.Catalog.BestRatedPosters(limit, language)
	if err != nil {
		h.services.Logger.Errorf("[CatalogHandler] poster listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "poster listing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posters": posters})
}

// handleSync triggers a catalog ingestion run in the background.
func (h *Handler) handleSync(c *gin.Context) {
	go func() {
		if err := h.services.Sync.Run(); err != nil {
			h.services.Logger.Errorf("[CatalogHandler] sync run failed: %v", err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{"status": "sync started"})
}
