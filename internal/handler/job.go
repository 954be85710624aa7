package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jobdeck/jobdeck-go/internal/middleware"
	"github.com/jobdeck/jobdeck-go/internal/model"
	"github.com/jobdeck/jobdeck-go/internal/service"
)

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	service *service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(svc *service.JobService) *JobHandler {
	return &JobHandler{service: svc}
}

// HandleList handles GET /api/jobs requests.
func (h *JobHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.service.ListAll(r.Context())
	if err != nil {
		internalError(w, r, "Error fetching jobs", err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// HandleGet handles GET /api/jobs/{id} requests.
func (h *JobHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidJobID):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrJobNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			internalError(w, r, "Error fetching job", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// HandleListByEmployer handles GET /api/jobs/employer requests.
func (h *JobHandler) HandleListByEmployer(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	jobs, err := h.service.ListByPoster(r.Context(), user.ID)
	if err != nil {
		internalError(w, r, "Error fetching employer jobs", err)
		return
	}

	writeJSON(w, http.StatusOK, jobs)
}

// HandleCreate handles POST /api/jobs/add requests.
func (h *JobHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	job, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			internalError(w, r, "Error posting job", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, model.CreateJobResponse{
		Message: "Job posted successfully",
		Job:     *job,
	})
}

// HandleUpdate handles PUT /api/jobs/{id} requests.
func (h *JobHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	job, err := h.service.Update(r.Context(), user.ID, chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidJobID), errors.Is(err, service.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrJobNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNotJobOwner):
			writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
		default:
			internalError(w, r, "Error updating job", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, job)
}
