package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/training-backend-go/internal/config"
	"github.com/cmlabs-hris/training-backend-go/internal/domain/document"
	appHTTP "github.com/cmlabs-hris/training-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/storage"
	"github.com/cmlabs-hris/training-backend-go/internal/repository/postgresql"
	dashboardService "github.com/cmlabs-hris/training-backend-go/internal/service/dashboard"
	documentService "github.com/cmlabs-hris/training-backend-go/internal/service/document"
	skillService "github.com/cmlabs-hris/training-backend-go/internal/service/skill"
	trainingService "github.com/cmlabs-hris/training-backend-go/internal/service/training"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// run starts the API server and blocks until shutdown
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(cfg.App.Name, cfg.App.Env, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fileStorage, closeStorage, err := newFileStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStorage()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	trainingRepo := postgresql.NewTrainingRepository(db)
	programRepo := postgresql.NewProgramRepository(db)
	certificateRepo := postgresql.NewCertificateRepository(db)
	skillRepo := postgresql.NewSkillRepository(db)
	qualificationRepo := postgresql.NewQualificationRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	dashboardSvc := dashboardService.NewDashboardService(
		employeeRepo,
		trainingRepo,
		programRepo,
		skillRepo,
		departmentRepo,
		cfg.Analytics,
		log,
	)
	trainingSvc := trainingService.NewTrainingService(
		trainingRepo,
		programRepo,
		certificateRepo,
		employeeRepo,
		departmentRepo,
		skillRepo,
		qualificationRepo,
		log,
	)
	documentSvc := documentService.NewDocumentService(
		documentRepo,
		employeeRepo,
		trainingRepo,
		certificateRepo,
		qualificationRepo,
		fileStorage,
		document.MergeOptions{DedupeAcrossSources: cfg.Analytics.DedupeAcrossSources},
		log,
	)
	skillSvc := skillService.NewSkillService(skillRepo, employeeRepo, departmentRepo, trainingRepo, cfg.Analytics.CriticalGapThreshold, log)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AppName:     cfg.App.Name,
			Version:     version,
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		appHTTP.Handlers{
			Dashboard: appHTTP.NewDashboardHandler(dashboardSvc),
			Training:  appHTTP.NewTrainingHandler(trainingSvc),
			Document:  appHTTP.NewDocumentHandler(documentSvc),
			Skill:     appHTTP.NewSkillHandler(skillSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

// newFileStorage builds the configured backend and its cleanup func
func newFileStorage(ctx context.Context, cfg config.StorageConfig) (storage.FileStorage, func(), error) {
	switch cfg.Type {
	case "local":
		local, err := storage.NewLocalStorage(cfg.BasePath, cfg.BaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		return local, func() {}, nil
	case "gcs":
		gcsStorage, err := storage.NewGCSStorage(ctx, cfg.GCSBucket, cfg.GCSCredentials, cfg.GCSPublicDomain)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize GCS storage: %w", err)
		}
		return gcsStorage, func() { _ = gcsStorage.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
