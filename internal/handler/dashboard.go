package handler

import (
	"net/http"

	"github.com/jobdeck/jobdeck-go/internal/middleware"
	"github.com/jobdeck/jobdeck-go/internal/service"
)

// DashboardHandler handles HTTP requests for dashboard statistics.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// HandleStats handles GET /api/dashboard/stats requests.
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Unauthorized"))
		return
	}

	stats, err := h.service.GetStats(r.Context(), user.ID)
	if err != nil {
		internalError(w, r, "Error fetching dashboard statistics", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
