// Command seed inserts a demo employer and a handful of sample job postings.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/jobdeck/jobdeck-go/internal/config"
	"github.com/jobdeck/jobdeck-go/internal/crypto"
	"github.com/jobdeck/jobdeck-go/internal/model"
	"github.com/jobdeck/jobdeck-go/internal/repository"
	"github.com/joho/godotenv"
)

var sampleJobs = []model.JobRequest{
	{
		Title:       "Frontend Developer",
		Company:     "Google",
		Location:    "Remote",
		Salary:      "120k-150k",
		Type:        "Full-time",
		Description: "We are looking for a skilled frontend developer to join our team at Google.",
	},
	{
		Title:       "Backend Developer",
		Company:     "Amazon",
		Location:    "USA",
		Salary:      "110k-140k",
		Type:        "Part-time",
		Description: "Join our backend team at Amazon and work on scalable APIs.",
	},
	{
		Title:       "UI/UX Designer",
		Company:     "Microsoft",
		Location:    "Canada",
		Salary:      "90k-120k",
		Type:        "Contract",
		Description: "Looking for a creative UI/UX designer to create stunning designs.",
	},
	{
		Title:       "Graphic Designer",
		Company:     "Adobe",
		Location:    "Remote",
		Salary:      "80k-100k",
		Type:        "Full-time",
		Description: "Join our creative team to design graphics for marketing, websites, and product packaging.",
	},
	{
		Title:       "Video Editor",
		Company:     "Netflix",
		Location:    "USA",
		Salary:      "70k-90k",
		Type:        "Part-time",
		Description: "Looking for a talented video editor to work on original content for our streaming platform.",
	},
	{
		Title:       "Full Stack Developer",
		Company:     "Facebook",
		Location:    "Remote",
		Salary:      "130k-160k",
		Type:        "Full-time",
		Description: "Join our engineering team to build scalable, robust full stack applications.",
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := repository.NewUserRepository(db)
	jobs := repository.NewJobRepository(db)

	employer, err := ensureSeedEmployer(ctx, users)
	if err != nil {
		slog.Error("failed to ensure seed employer", "error", err)
		os.Exit(1)
	}

	for _, req := range sampleJobs {
		job := &model.Job{
			Title:       req.Title,
			Company:     req.Company,
			Location:    req.Location,
			Salary:      req.Salary,
			Description: req.Description,
			Type:        req.Type,
			PostedBy:    employer.ID,
		}
		if err := jobs.Create(ctx, job); err != nil {
			slog.Error("failed to insert job", "title", job.Title, "error", err)
			os.Exit(1)
		}
		slog.Info("job inserted", "title", job.Title, "id", job.ID)
	}

	slog.Info("seeding complete", "jobs", len(sampleJobs), "employer", employer.Email)
}

func ensureSeedEmployer(ctx context.Context, users *repository.UserRepository) (*model.User, error) {
	const email = "employer@jobdeck.dev"

	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword("seed-password")
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     "Seed Employer",
		Email:    email,
		AuthHash: hash,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
