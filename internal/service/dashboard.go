package service

import (
	"context"

	"github.com/jobdeck/jobdeck-go/internal/model"
)

// DashboardService derives summary counts for an employer's dashboard.
type DashboardService struct {
	jobs JobStore
	apps ApplicationStore
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(jobs JobStore, apps ApplicationStore) *DashboardService {
	return &DashboardService{jobs: jobs, apps: apps}
}

// GetStats recomputes the dashboard counts on every call: the caller's job
// count, then the application count across those jobs.
func (s *DashboardService) GetStats(ctx context.Context, employerID string) (model.DashboardStats, error) {
	jobs, err := s.jobs.ListByPoster(ctx, employerID)
	if err != nil {
		return model.DashboardStats{}, err
	}

	jobIDs := make([]string, len(jobs))
	for i, job := range jobs {
		jobIDs[i] = job.ID
	}

	applications, err := s.apps.CountByJobIDs(ctx, jobIDs)
	if err != nil {
		return model.DashboardStats{}, err
	}

	return model.DashboardStats{
		ActiveJobs:   len(jobs),
		Applications: applications,
		// Messaging has no backing implementation; the count is a fixed stub.
		NewMessages: 0,
	}, nil
}
