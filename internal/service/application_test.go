package service

import (
	"context"
	"testing"

	"github.com/jobdeck/jobdeck-go/internal/model"
	"github.com/jobdeck/jobdeck-go/internal/repository"
)

func newTestApplicationService() *ApplicationService {
	return NewApplicationService(
		repository.NewApplicationRepository(nil),
		repository.NewJobRepository(nil),
	)
}

func TestApply_MissingResume(t *testing.T) {
	svc := newTestApplicationService()

	_, err := svc.Apply(context.Background(), "8b9d2c77-32cf-4c9c-a7f5-1f6a3de2b9a0", "user-1", model.ApplyRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	if err != ErrMissingFields {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestApply_MissingName(t *testing.T) {
	svc := newTestApplicationService()

	_, err := svc.Apply(context.Background(), "8b9d2c77-32cf-4c9c-a7f5-1f6a3de2b9a0", "user-1", model.ApplyRequest{
		Email:  "jane@example.com",
		Resume: "/uploads/123-456.pdf",
	})

	if err != ErrMissingFields {
		t.Errorf("expected ErrMissingFields, got %v", err)
	}
}

func TestApply_MalformedJobID(t *testing.T) {
	svc := newTestApplicationService()

	_, err := svc.Apply(context.Background(), "abc", "user-1", model.ApplyRequest{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Resume: "/uploads/123-456.pdf",
	})

	if err != ErrJobNotFound {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApply_CoverLetterOptional(t *testing.T) {
	// A request with everything but the cover letter must pass validation; the
	// malformed job id stops it before any repository call.
	svc := newTestApplicationService()

	_, err := svc.Apply(context.Background(), "abc", "user-1", model.ApplyRequest{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Resume: "/uploads/123-456.pdf",
	})

	if err == ErrMissingFields {
		t.Error("cover letter should not be required")
	}
}
