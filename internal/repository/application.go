package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck-go/internal/model"
)

// ApplicationRepository handles job application persistence operations.
type ApplicationRepository struct {
	db *sql.DB
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application and sets the generated ID and submission
// time on the application struct.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	app.ID = uuid.NewString()
	app.AppliedAt = time.Now().UTC()

	query := `INSERT INTO job_applications (id, job_id, user_id, applicant_name, email, resume, cover_letter, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		app.ID, app.JobID, app.UserID, app.ApplicantName, app.Email,
		app.Resume, app.CoverLetter, app.AppliedAt,
	)
	return err
}

// ListByApplicant retrieves the applications one candidate has submitted,
// newest first, enriched with the referenced job's title and company.
func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID string) ([]model.ApplicationWithJob, error) {
	query := `SELECT a.id, a.job_id, a.user_id, a.applicant_name, a.email, a.resume, a.cover_letter, a.applied_at,
			COALESCE(j.title, ''), COALESCE(j.company, '')
		FROM job_applications a
		LEFT JOIN jobs j ON j.id = a.job_id
		WHERE a.user_id = ?
		ORDER BY a.applied_at DESC`

	return r.queryApplications(ctx, query, applicantID)
}

// ListByEmployer retrieves the applications submitted to any job owned by one
// employer, newest first, enriched with the referenced job's title and company.
func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID string) ([]model.ApplicationWithJob, error) {
	query := `SELECT a.id, a.job_id, a.user_id, a.applicant_name, a.email, a.resume, a.cover_letter, a.applied_at,
			j.title, j.company
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.posted_by = ?
		ORDER BY a.applied_at DESC`

	return r.queryApplications(ctx, query, employerID)
}

// CountByJobIDs counts the applications submitted to any of the given jobs.
func (r *ApplicationRepository) CountByJobIDs(ctx context.Context, jobIDs []string) (int, error) {
	if len(jobIDs) == 0 {
		return 0, nil
	}

	query := `SELECT COUNT(*) FROM job_applications WHERE job_id IN (` + placeholders(len(jobIDs)) + `)`

	args := make([]any, len(jobIDs))
	for i, id := range jobIDs {
		args[i] = id
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *ApplicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]model.ApplicationWithJob, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []model.ApplicationWithJob
	for rows.Next() {
		var (
			a           model.ApplicationWithJob
			resume      sql.NullString
			coverLetter sql.NullString
		)
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.UserID, &a.ApplicantName, &a.Email,
			&resume, &coverLetter, &a.AppliedAt, &a.JobTitle, &a.JobCompany,
		); err != nil {
			return nil, err
		}
		a.Resume = resume.String
		a.CoverLetter = coverLetter.String
		apps = append(apps, a)
	}

	return apps, rows.Err()
}
