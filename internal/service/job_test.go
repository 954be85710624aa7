package service

import (
	"context"
	"testing"

	"github.com/jobdeck/jobdeck-go/internal/model"
	"github.com/jobdeck/jobdeck-go/internal/repository"
)

func newTestJobService() *JobService {
	return NewJobService(repository.NewJobRepository(nil))
}

// fakeJobStore backs service tests that need stored jobs without a database.
type fakeJobStore struct {
	jobs    map[string]*model.Job
	updated *model.Job
}

func (f *fakeJobStore) Create(ctx context.Context, job *model.Job) error {
	return nil
}

func (f *fakeJobStore) GetByID(ctx context.Context, id string) (*model.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repository.ErrJobNotFound
	}
	cp := *job
	return &cp, nil
}

func (f *fakeJobStore) ListAll(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	for _, job := range f.jobs {
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (f *fakeJobStore) ListByPoster(ctx context.Context, posterID string) ([]model.Job, error) {
	var jobs []model.Job
	for _, job := range f.jobs {
		if job.PostedBy == posterID {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (f *fakeJobStore) Update(ctx context.Context, job *model.Job) error {
	f.updated = job
	return nil
}

func validJobRequest() model.JobRequest {
	return model.JobRequest{
		Title:       "Backend Developer",
		Company:     "Acme",
		Location:    "Remote",
		Salary:      "100k",
		Description: "Build APIs.",
		Type:        "Full-time",
	}
}

func TestCreateJob_MissingFields(t *testing.T) {
	svc := newTestJobService()

	cases := map[string]func(*model.JobRequest){
		"title":       func(r *model.JobRequest) { r.Title = "" },
		"company":     func(r *model.JobRequest) { r.Company = "" },
		"location":    func(r *model.JobRequest) { r.Location = "" },
		"salary":      func(r *model.JobRequest) { r.Salary = "" },
		"description": func(r *model.JobRequest) { r.Description = "" },
		"type":        func(r *model.JobRequest) { r.Type = "" },
	}

	for field, blank := range cases {
		t.Run(field, func(t *testing.T) {
			req := validJobRequest()
			blank(&req)

			_, err := svc.Create(context.Background(), "poster-1", req)
			if err != ErrMissingFields {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestGetJob_InvalidID(t *testing.T) {
	svc := newTestJobService()

	_, err := svc.GetByID(context.Background(), "abc")
	if err != ErrInvalidJobID {
		t.Errorf("expected ErrInvalidJobID, got %v", err)
	}
}

func TestUpdateJob_InvalidID(t *testing.T) {
	svc := newTestJobService()

	_, err := svc.Update(context.Background(), "caller-1", "not-a-uuid", validJobRequest())
	if err != ErrInvalidJobID {
		t.Errorf("expected ErrInvalidJobID, got %v", err)
	}
}

func TestUpdateJob_MissingFields(t *testing.T) {
	svc := newTestJobService()

	req := validJobRequest()
	req.Title = ""

	// A well-formed id is required so the failure is attributable to validation.
	_, err := svc.Update(context.Background(), "caller-1", "8b9d2c77-32cf-4c9c-a7f5-1f6a3de2b9a0", req)
	if err != ErrMissingFields {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestUpdateJob_NotOwner(t *testing.T) {
	const jobID = "8b9d2c77-32cf-4c9c-a7f5-1f6a3de2b9a0"
	store := &fakeJobStore{jobs: map[string]*model.Job{
		jobID: {ID: jobID, Title: "Backend Developer", PostedBy: "employer-1"},
	}}
	svc := NewJobService(store)

	_, err := svc.Update(context.Background(), "employer-2", jobID, validJobRequest())
	if err != ErrNotJobOwner {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
	if store.updated != nil {
		t.Error("job was persisted despite the ownership rejection")
	}
}

func TestUpdateJob_OwnerReplacesFields(t *testing.T) {
	const jobID = "8b9d2c77-32cf-4c9c-a7f5-1f6a3de2b9a0"
	store := &fakeJobStore{jobs: map[string]*model.Job{
		jobID: {ID: jobID, Title: "Old Title", PostedBy: "employer-1"},
	}}
	svc := NewJobService(store)

	req := validJobRequest()
	job, err := svc.Update(context.Background(), "employer-1", jobID, req)
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if job.Title != req.Title {
		t.Errorf("title = %q, want %q", job.Title, req.Title)
	}
	if job.PostedBy != "employer-1" {
		t.Errorf("postedBy = %q, the poster must survive an update", job.PostedBy)
	}
	if store.updated == nil {
		t.Error("updated job was not persisted")
	}
}

func TestUpdateJob_NotFound(t *testing.T) {
	svc := NewJobService(&fakeJobStore{jobs: map[string]*model.Job{}})

	_, err := svc.Update(context.Background(), "employer-1", "8b9d2c77-32cf-4c9c-a7f5-1f6a3de2b9a0", validJobRequest())
	if err != ErrJobNotFound {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobSentinelMessages(t *testing.T) {
	if got := ErrInvalidJobID.Error(); got != "Invalid job ID format" {
		t.Errorf("ErrInvalidJobID message = %q", got)
	}
	if got := ErrJobNotFound.Error(); got != "Job not found" {
		t.Errorf("ErrJobNotFound message = %q", got)
	}
	if got := ErrMissingFields.Error(); got != "Missing required fields" {
		t.Errorf("ErrMissingFields message = %q", got)
	}
	if got := ErrNotJobOwner.Error(); got != "You can only edit jobs you posted" {
		t.Errorf("ErrNotJobOwner message = %q", got)
	}
}
