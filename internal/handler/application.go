package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jobdeck/jobdeck-go/internal/middleware"
	"github.com/jobdeck/jobdeck-go/internal/model"
	"github.com/jobdeck/jobdeck-go/internal/service"
	"github.com/jobdeck/jobdeck-go/internal/storage"
)

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	service *service.ApplicationService
	store   *storage.FileStore
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(svc *service.ApplicationService, store *storage.FileStore) *ApplicationHandler {
	return &ApplicationHandler{service: svc, store: store}
}

// HandleApply handles POST /api/job-applications/{jobId}/apply requests.
// The resume file is written under a temporary name first and only promoted
// once the application row is committed, so a failed submission leaves no
// orphaned file.
func (h *ApplicationHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	// Resume cap plus headroom for the form fields.
	r.Body = http.MaxBytesReader(w, r.Body, 6<<20)

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid multipart form"))
		return
	}

	req := model.ApplyRequest{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		CoverLetter: r.FormValue("coverLetter"),
	}

	var pending *storage.PendingFile
	if file, header, err := r.FormFile("resume"); err == nil {
		defer file.Close()

		pending, err = h.store.Save(file, header.Filename)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidFileType), errors.Is(err, storage.ErrFileTooLarge):
				writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			default:
				internalError(w, r, "Error storing resume", err)
			}
			return
		}
		defer pending.Discard()

		req.Resume = pending.Path()
	}

	if _, err := h.service.Apply(r.Context(), chi.URLParam(r, "jobId"), user.ID, req); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrJobNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			internalError(w, r, "Error submitting application", err)
		}
		return
	}

	if pending != nil {
		if err := pending.Promote(); err != nil {
			internalError(w, r, "Error storing resume", err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Application submitted successfully"})
}

// HandleListMine handles GET /api/job-applications/applied-jobs and
// GET /api/candidate/applied-jobs requests. A candidate with no applications
// gets an empty list, not a 404.
func (h *ApplicationHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	apps, err := h.service.ListByApplicant(r.Context(), user.ID)
	if err != nil {
		internalError(w, r, "Error fetching applications", err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}

// HandleListForEmployer handles GET /api/job-applications/employer/applications requests.
func (h *ApplicationHandler) HandleListForEmployer(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	apps, err := h.service.ListByEmployer(r.Context(), user.ID)
	if err != nil {
		internalError(w, r, "Error fetching employer applications", err)
		return
	}

	writeJSON(w, http.StatusOK, apps)
}
