package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jobdeck/jobdeck-go/internal/config"
	"github.com/jobdeck/jobdeck-go/internal/handler"
	"github.com/jobdeck/jobdeck-go/internal/middleware"
	"github.com/jobdeck/jobdeck-go/internal/repository"
	"github.com/jobdeck/jobdeck-go/internal/service"
	"github.com/jobdeck/jobdeck-go/internal/storage"
	"github.com/joho/godotenv"
)

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

	store, err := storage.NewFileStore(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		slog.Error("upload directory setup failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	jobRepo := repository.NewJobRepository(db)
	appRepo := repository.NewApplicationRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	jobService := service.NewJobService(jobRepo)
	appService := service.NewApplicationService(appRepo, jobRepo)
	dashService := service.NewDashboardService(jobRepo, appRepo)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	appHandler := handler.NewApplicationHandler(appService, store)
	dashHandler := handler.NewDashboardHandler(dashService)
	uploadHandler := handler.NewUploadHandler(store)
	healthHandler := handler.NewHealthHandler(db, store)

	auth := middleware.BearerAuth(cfg.JWTSecret, userRepo)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(cfg.FrontendURL))

	r.Get("/health", healthHandler.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})
	r.With(auth).Get("/api/auth/me", authHandler.HandleMe)

	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", jobHandler.HandleList)
		r.With(auth).Get("/employer", jobHandler.HandleListByEmployer)
		r.With(auth).Post("/add", jobHandler.HandleCreate)
		r.Get("/{id}", jobHandler.HandleGet)
		r.With(auth).Put("/{id}", jobHandler.HandleUpdate)
	})

	r.Route("/api/job-applications", func(r chi.Router) {
		r.Use(auth)
		r.Post("/{jobId}/apply", appHandler.HandleApply)
		r.Get("/applied-jobs", appHandler.HandleListMine)
		r.Get("/employer/applications", appHandler.HandleListForEmployer)
	})

	r.With(auth).Get("/api/candidate/applied-jobs", appHandler.HandleListMine)
	r.With(auth).Get("/api/dashboard/stats", dashHandler.HandleStats)

	r.Post("/upload", uploadHandler.HandleUpload)
	r.Get("/uploads/{file}", uploadHandler.HandleServeFile)
	r.Get("/file-exists/{filename}", uploadHandler.HandleFileExists)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "uploads", store.Dir())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
