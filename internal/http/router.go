package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.MaxUploadBytes > 0 {
		// Multipart parts beyond this size are spooled to disk by net/http.
		router.MaxMultipartMemory = cfg.MaxUploadBytes
	}

	health := NewHealthController(cfg.Health, cfg.Version)
	router.GET("/health", health.Status)

	api := router.Group("/api")
	api.POST("/convert", NewConvertController(cfg).Convert)

	if cfg.Library != nil {
		library := NewLibraryController(cfg.Library, cfg.ShowLocation)
		api.GET("/books", library.List)
		api.GET("/books/:id/outline", library.Outline)
	} else {
		disabled := func(c *gin.Context) {
			respondError(c, http.StatusNotFound, "library_disabled", "library storage is not configured")
		}
		api.GET("/books", disabled)
		api.GET("/books/:id/outline", disabled)
	}

	return router
}
