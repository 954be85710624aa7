package model

import "time"

// Job represents a job posting.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	PostedBy    string    `json:"postedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobRequest carries the editable fields of a job posting. It is used for both
// creation and full-document update; every field is required.
type JobRequest struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Salary      string `json:"salary" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required"`
}

// CreateJobResponse confirms a successful job creation.
type CreateJobResponse struct {
	Message string `json:"message"`
	Job     Job    `json:"job"`
}
