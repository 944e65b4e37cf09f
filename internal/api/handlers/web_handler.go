package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andresuchdata/inventree-web/internal/domain"
	"github.com/andresuchdata/inventree-web/internal/endpoints"
	"github.com/andresuchdata/inventree-web/internal/render"
	"github.com/andresuchdata/inventree-web/internal/settings"
	"github.com/andresuchdata/inventree-web/internal/state"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type WebHandler struct {
	store        *state.Store
	frontend     map[string]any
	manifestPath string
}

func NewWebHandler(store *state.Store, frontend map[string]any, manifestPath string) *WebHandler {
	return &WebHandler{store: store, frontend: frontend, manifestPath: manifestPath}
}

// GetSettings returns the frontend settings object
func (h *WebHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.frontend)
}

// GetSettingsScript returns the settings as an inline bootstrap script
func (h *WebHandler) GetSettingsScript(c *gin.Context) {
	script, err := settings.Script(h.frontend)
	if err != nil {
		log.Error().Err(err).Msg("failed to render settings script")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render settings"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(script))
}

// GetBundle returns the stylesheet and script tags of the built web app.
// The manifest is re-read on every request so a rebuild is picked up.
func (h *WebHandler) GetBundle(c *gin.Context) {
	bundle, ok := settings.Bundle(h.manifestPath)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "web app bundle not found"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(bundle))
}

// GetState returns the cached server API state
func (h *WebHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// RefreshState refetches server info and status codes
func (h *WebHandler) RefreshState(c *gin.Context) {
	if err := h.store.Fetch(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("failed to refresh server state")
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to refresh server state"})
		return
	}

	c.JSON(http.StatusOK, h.store.Snapshot())
}

// GetStatusLabel resolves the label of a status value for a model
func (h *WebHandler) GetStatusLabel(c *gin.Context) {
	model := domain.ModelType(c.Param("model"))
	value, err := strconv.Atoi(c.Param("value"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status value"})
		return
	}

	lookup, _ := h.store.StatusLookup()
	code, ok := lookup.Find(model, value)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"model": model, "value": value, "label": lookup.Label(model, value)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"model": model,
		"value": value,
		"name":  code.Name,
		"label": code.Label,
		"color": code.Color,
	})
}

// GetURL builds the API url of an endpoint, optionally for a single pk
func (h *WebHandler) GetURL(c *gin.Context) {
	endpoint, ok := endpoints.Lookup(c.Param("endpoint"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown endpoint"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"endpoint": endpoint,
		"url":      endpoints.URL(endpoint, c.Query("pk")),
	})
}

// ListEndpoints returns every endpoint with its list url
func (h *WebHandler) ListEndpoints(c *gin.Context) {
	all := endpoints.All()
	out := make(map[string]string, len(all))
	for _, e := range all {
		out[e.String()] = endpoints.URL(e, "")
	}

	c.JSON(http.StatusOK, out)
}

// RenderInline renders the posted instance as an inline summary
func (h *WebHandler) RenderInline(c *gin.Context) {
	var instance domain.Instance
	if err := c.ShouldBindJSON(&instance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid instance payload"})
		return
	}

	inline, err := render.Instance(domain.ModelType(c.Param("model")), instance)
	if errors.Is(err, render.ErrUnknownModel) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render instance"})
		return
	}

	c.JSON(http.StatusOK, inline)
}
