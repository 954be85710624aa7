package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck-go/internal/model"
	"github.com/jobdeck/jobdeck-go/internal/repository"
)

// ApplicationStore is the persistence surface the application and dashboard
// services depend on, satisfied by repository.ApplicationRepository.
type ApplicationStore interface {
	Create(ctx context.Context, app *model.Application) error
	ListByApplicant(ctx context.Context, applicantID string) ([]model.ApplicationWithJob, error)
	ListByEmployer(ctx context.Context, employerID string) ([]model.ApplicationWithJob, error)
	CountByJobIDs(ctx context.Context, jobIDs []string) (int, error)
}

// ApplicationService handles job application business logic.
type ApplicationService struct {
	apps ApplicationStore
	jobs JobStore
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(apps ApplicationStore, jobs JobStore) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs}
}

// Apply validates and persists a candidate's submission for a job. The
// applicant is always the authenticated caller. The referenced job must exist
// at submission time; the reference is not re-validated afterwards.
func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string, req model.ApplyRequest) (*model.Application, error) {
	if err := model.Validate(req); err != nil {
		return nil, ErrMissingFields
	}

	if _, err := uuid.Parse(jobID); err != nil {
		return nil, ErrJobNotFound
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	app := &model.Application{
		JobID:         jobID,
		UserID:        applicantID,
		ApplicantName: req.Name,
		Email:         req.Email,
		Resume:        req.Resume,
		CoverLetter:   req.CoverLetter,
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}

// ListByApplicant returns the caller's submitted applications, newest first.
// No applications yields an empty slice, never an error.
func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID string) ([]model.ApplicationWithJob, error) {
	apps, err := s.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []model.ApplicationWithJob{}
	}
	return apps, nil
}

// ListByEmployer returns the applications submitted to any of the caller's
// jobs, newest first.
func (s *ApplicationService) ListByEmployer(ctx context.Context, employerID string) ([]model.ApplicationWithJob, error) {
	apps, err := s.apps.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []model.ApplicationWithJob{}
	}
	return apps, nil
}
