package service

import (
	"context"
	"testing"

	"github.com/jobdeck/jobdeck-go/internal/model"
)

type fakeApplicationStore struct {
	count      int
	countedIDs []string
}

func (f *fakeApplicationStore) Create(ctx context.Context, app *model.Application) error {
	return nil
}

func (f *fakeApplicationStore) ListByApplicant(ctx context.Context, applicantID string) ([]model.ApplicationWithJob, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByEmployer(ctx context.Context, employerID string) ([]model.ApplicationWithJob, error) {
	return nil, nil
}

func (f *fakeApplicationStore) CountByJobIDs(ctx context.Context, jobIDs []string) (int, error) {
	f.countedIDs = jobIDs
	return f.count, nil
}

func TestDashboardStats(t *testing.T) {
	jobs := &fakeJobStore{jobs: map[string]*model.Job{
		"j1": {ID: "j1", PostedBy: "employer-1"},
		"j2": {ID: "j2", PostedBy: "employer-1"},
		"j3": {ID: "j3", PostedBy: "employer-1"},
		"j4": {ID: "j4", PostedBy: "someone-else"},
	}}
	apps := &fakeApplicationStore{count: 5}
	svc := NewDashboardService(jobs, apps)

	stats, err := svc.GetStats(context.Background(), "employer-1")
	if err != nil {
		t.Fatalf("GetStats() unexpected error: %v", err)
	}

	if stats.ActiveJobs != 3 {
		t.Errorf("activeJobs = %d, want 3", stats.ActiveJobs)
	}
	if stats.Applications != 5 {
		t.Errorf("applications = %d, want 5", stats.Applications)
	}
	if stats.NewMessages != 0 {
		t.Errorf("newMessages = %d, want 0", stats.NewMessages)
	}

	// The application count must be scoped to the caller's own jobs.
	if len(apps.countedIDs) != 3 {
		t.Errorf("counted over %d job ids, want 3", len(apps.countedIDs))
	}
	for _, id := range apps.countedIDs {
		if id == "j4" {
			t.Error("counted applications for another employer's job")
		}
	}
}

func TestDashboardStats_NoJobs(t *testing.T) {
	svc := NewDashboardService(&fakeJobStore{}, &fakeApplicationStore{})

	stats, err := svc.GetStats(context.Background(), "employer-1")
	if err != nil {
		t.Fatalf("GetStats() unexpected error: %v", err)
	}
	if stats != (model.DashboardStats{}) {
		t.Errorf("stats = %+v, want all zeroes", stats)
	}
}
