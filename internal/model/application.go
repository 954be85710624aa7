package model

import "time"

// Application represents a candidate's submission for a job. Applications are
// immutable after creation; there is no update or delete path.
type Application struct {
	ID            string    `json:"id"`
	JobID         string    `json:"jobId"`
	UserID        string    `json:"userId"`
	ApplicantName string    `json:"applicantName"`
	Email         string    `json:"email"`
	Resume        string    `json:"resume,omitempty"`
	CoverLetter   string    `json:"coverLetter,omitempty"`
	AppliedAt     time.Time `json:"appliedAt"`
}

// ApplyRequest carries the form fields of an application submission. The
// resume path is filled in by the handler after the upload is accepted.
type ApplyRequest struct {
	Name        string `validate:"required"`
	Email       string `validate:"required"`
	Resume      string `validate:"required"`
	CoverLetter string
}

// ApplicationWithJob is a listing row enriched with fields from the referenced
// job, mirroring what the dashboards render.
type ApplicationWithJob struct {
	Application
	JobTitle   string `json:"jobTitle"`
	JobCompany string `json:"jobCompany,omitempty"`
}
