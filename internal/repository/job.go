package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck-go/internal/model"
)

var ErrJobNotFound = errors.New("job not found")

// JobRepository handles job posting persistence operations.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, title, company, location, salary, description, type, posted_by, created_at`

// Create inserts a new job posting and sets the generated ID and creation time
// on the job struct.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) error {
	job.ID = uuid.NewString()
	job.CreatedAt = time.Now().UTC()

	query := `INSERT INTO jobs (id, title, company, location, salary, description, type, posted_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Salary,
		job.Description, job.Type, job.PostedBy, job.CreatedAt,
	)
	return err
}

// GetByID retrieves a job posting by its ID.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	job := &model.Job{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Salary,
		&job.Description, &job.Type, &job.PostedBy, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// ListAll retrieves every job posting, most recent first.
func (r *JobRepository) ListAll(ctx context.Context) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`

	return r.queryJobs(ctx, query)
}

// ListByPoster retrieves the job postings owned by one employer, most recent first.
func (r *JobRepository) ListByPoster(ctx context.Context, posterID string) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE posted_by = ? ORDER BY created_at DESC`

	return r.queryJobs(ctx, query, posterID)
}

// Update replaces the editable fields of a job posting.
func (r *JobRepository) Update(ctx context.Context, job *model.Job) error {
	query := `UPDATE jobs SET title = ?, company = ?, location = ?, salary = ?, description = ?, type = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		job.Title, job.Company, job.Location, job.Salary, job.Description, job.Type, job.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// The row may exist with identical values; distinguish from a missing row.
		if _, err := r.GetByID(ctx, job.ID); err != nil {
			return err
		}
	}

	return nil
}

// CountByPoster counts the job postings owned by one employer.
func (r *JobRepository) CountByPoster(ctx context.Context, posterID string) (int, error) {
	query := `SELECT COUNT(*) FROM jobs WHERE posted_by = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, posterID).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *JobRepository) queryJobs(ctx context.Context, query string, args ...any) ([]model.Job, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location, &j.Salary,
			&j.Description, &j.Type, &j.PostedBy, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// placeholders returns a comma-joined list of n SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
