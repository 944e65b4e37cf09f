package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureRequestLog(t *testing.T, path string, status int) map[string]any {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	router := gin.New()
	router.Use(Logger())
	router.GET("/health", func(c *gin.Context) { c.Status(status) })
	router.GET("/web/state", func(c *gin.Context) { c.Status(status) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry %q: %v", buf.String(), err)
	}
	return entry
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		level  string
	}{
		{name: "health", path: "/health", status: http.StatusOK, level: "debug"},
		{name: "health with query", path: "/health?ready=1", status: http.StatusOK, level: "debug"},
		{name: "regular request", path: "/web/state", status: http.StatusOK, level: "info"},
		{name: "client error", path: "/web/state?x=1", status: http.StatusNotFound, level: "warn"},
		{name: "server error", path: "/health", status: http.StatusInternalServerError, level: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := captureRequestLog(t, tt.path, tt.status)
			if entry["level"] != tt.level {
				t.Fatalf("expected level %q, got %v", tt.level, entry["level"])
			}
			if entry["path"] != tt.path {
				t.Fatalf("expected logged path %q, got %v", tt.path, entry["path"])
			}
		})
	}
}
