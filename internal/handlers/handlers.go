// Package handlers implements the HTTP request handlers for the movie
// discovery API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinefind/cinefind/internal/config"
	"github.com/cinefind/cinefind/internal/constants"
	"github.com/cinefind/cinefind/internal/services"
)

// Handler handles HTTP requests for the catalog API.
type Handler struct {
	services *services.Container
	config   *config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.handleHealth)

	api := r.Group("/api")
	{
		api.GET("/movies", h.handleSearch)
		api.GET("/movies/:id", h.handleMovie)
		api.GET("/genres", h.handleGenres)
		api.GET("/posters", h.handlePosters)

		api.POST("/admin/sync", h.handleSync)
	}
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"name":    constants.AppName,
		"version": constants.AppVersion,
	})
}

// language returns the requested language or the configured default.
func (h *Handler) language(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" {
		return lang
	}
	return h.config.DefaultLanguage
}
