package handler

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/jobdeck/jobdeck-go/internal/storage"
)

// HealthHandler reports liveness: process uptime, database connectivity and
// upload-directory writability.
type HealthHandler struct {
	db        *sql.DB
	store     *storage.FileStore
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sql.DB, store *storage.FileStore) *HealthHandler {
	return &HealthHandler{db: db, store: store, startedAt: time.Now()}
}

// HandleHealth handles GET /health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	database := "connected"
	if err := h.db.PingContext(ctx); err != nil {
		database = "disconnected"
	}

	_, statErr := os.Stat(h.store.Dir())

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"uptime":    time.Since(h.startedAt).Seconds(),
		"timestamp": time.Now().UTC(),
		"database":  database,
		"uploadDirectory": map[string]any{
			"path":     h.store.Dir(),
			"exists":   statErr == nil,
			"writable": h.store.Writable(),
		},
	})
}
