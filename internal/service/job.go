package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck-go/internal/model"
	"github.com/jobdeck/jobdeck-go/internal/repository"
)

// Sentinel errors carry the exact messages the API returns, so handlers can
// pass err.Error() straight through to the response body.
var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrInvalidJobID  = errors.New("Invalid job ID format")
	ErrJobNotFound   = errors.New("Job not found")
	ErrNotJobOwner   = errors.New("You can only edit jobs you posted")
)

// JobStore is the persistence surface JobService depends on, satisfied by
// repository.JobRepository.
type JobStore interface {
	Create(ctx context.Context, job *model.Job) error
	GetByID(ctx context.Context, id string) (*model.Job, error)
	ListAll(ctx context.Context) ([]model.Job, error)
	ListByPoster(ctx context.Context, posterID string) ([]model.Job, error)
	Update(ctx context.Context, job *model.Job) error
}

// JobService handles job posting business logic.
type JobService struct {
	repo JobStore
}

// NewJobService creates a new JobService.
func NewJobService(repo JobStore) *JobService {
	return &JobService{repo: repo}
}

// Create validates and persists a new job posting. The poster is always the
// authenticated caller, never a client-supplied value.
func (s *JobService) Create(ctx context.Context, posterID string, req model.JobRequest) (*model.Job, error) {
	if err := model.Validate(req); err != nil {
		return nil, ErrMissingFields
	}

	job := &model.Job{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		Description: req.Description,
		Type:        req.Type,
		PostedBy:    posterID,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// ListAll returns every job posting, newest first. An empty board yields an
// empty slice, not an error.
func (s *JobService) ListAll(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// ListByPoster returns the jobs posted by one employer, newest first.
func (s *JobService) ListByPoster(ctx context.Context, posterID string) ([]model.Job, error) {
	jobs, err := s.repo.ListByPoster(ctx, posterID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// GetByID returns a single job posting.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidJobID
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// Update replaces the editable fields of a job posting. Only the original
// poster may update a job.
func (s *JobService) Update(ctx context.Context, callerID, id string, req model.JobRequest) (*model.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidJobID
	}
	if err := model.Validate(req); err != nil {
		return nil, ErrMissingFields
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if job.PostedBy != callerID {
		return nil, ErrNotJobOwner
	}

	job.Title = req.Title
	job.Company = req.Company
	job.Location = req.Location
	job.Salary = req.Salary
	job.Description = req.Description
	job.Type = req.Type

	if err := s.repo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}
