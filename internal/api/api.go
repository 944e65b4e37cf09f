// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/andresuchdata/inventree-web/internal/api/handlers"
	"github.com/andresuchdata/inventree-web/internal/api/middleware"
	"github.com/andresuchdata/inventree-web/internal/state"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services are the dependencies shared by the web handlers.
type Services struct {
	Store        *state.Store
	Frontend     map[string]any
	ManifestPath string
}

// NewRouter wires middleware, CORS and the /web routes. The /web group is
// only mounted when a state store is provided.
func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if services != nil && services.Store != nil {
		webHandler := handlers.NewWebHandler(services.Store, services.Frontend, services.ManifestPath)
		webGroup := router.Group("/web")
		{
			webGroup.GET("/settings", webHandler.GetSettings)
			webGroup.GET("/settings.js", webHandler.GetSettingsScript)
			webGroup.GET("/bundle", webHandler.GetBundle)
			webGroup.GET("/state", webHandler.GetState)
			webGroup.POST("/state/refresh", webHandler.RefreshState)
			webGroup.GET("/status/:model/:value", webHandler.GetStatusLabel)
			webGroup.GET("/endpoints", webHandler.ListEndpoints)
			webGroup.GET("/url/:endpoint", webHandler.GetURL)
			webGroup.POST("/render/:model", webHandler.RenderInline)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
