package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jobdeck/jobdeck-go/internal/storage"
)

// UploadHandler handles generic file uploads and serves stored files.
type UploadHandler struct {
	store *storage.FileStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(store *storage.FileStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// HandleUpload handles POST /upload requests. Accepts a single "file" form
// part, validated against the MIME allow-list and size cap.
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 6<<20)

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "No file uploaded or invalid file type",
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "No file uploaded or invalid file type",
		})
		return
	}
	defer file.Close()

	pending, err := h.store.Save(file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidFileType), errors.Is(err, storage.ErrFileTooLarge):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"success": false,
				"message": err.Error(),
			})
		default:
			internalError(w, r, "File upload failed", err)
		}
		return
	}

	// No owning record for generic uploads; promote right away.
	if err := pending.Promote(); err != nil {
		internalError(w, r, "File upload failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"message":  "File uploaded successfully!",
		"filename": pending.Name(),
		"path":     pending.Path(),
	})
}

// HandleServeFile handles GET /uploads/{file} requests. Content-type sniffing
// is disabled on the response.
func (h *UploadHandler) HandleServeFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "file")

	path, err := h.store.Resolve(name)
	if err != nil || !h.store.Exists(name) {
		writeJSON(w, http.StatusNotFound, errorResponse("File not found"))
		return
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Disposition", "inline")
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		w.Header().Set("Content-Type", "application/pdf")
	}

	http.ServeFile(w, r, path)
}

// HandleFileExists handles GET /file-exists/{filename} requests.
func (h *UploadHandler) HandleFileExists(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	if !h.store.Exists(name) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"exists":  false,
			"message": "File not found: " + name,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"exists":   true,
		"filename": name,
		"url":      "/uploads/" + name,
	})
}
