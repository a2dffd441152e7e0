package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/training-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/training-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/training-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the deployment details the router needs
type RouterOptions struct {
	AppName     string
	Version     string
	Env         string
	FrontendURL string
}

type Handlers struct {
	Dashboard DashboardHandler
	Training  TrainingHandler
	Document  DocumentHandler
	Skill     SkillHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	logLevel := slog.LevelInfo
	if opts.Env == "development" {
		logLevel = slog.LevelDebug
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.RequireCompany)

			r.With(middleware.RequireManager).Get("/dashboard", h.Dashboard.GetDashboard)

			r.Route("/trainings", func(r chi.Router) {
				r.With(middleware.RequireManager).Get("/edit-options", h.Training.GetCreateOptions)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Training.GetDetail)
					r.With(middleware.RequireManager).Get("/edit-options", h.Training.GetEditOptions)
					r.Get("/documents", h.Document.GetTrainingDocuments)
				})
			})

			r.Route("/employees/{id}", func(r chi.Router) {
				r.Get("/documents", h.Document.GetEmployeeDocuments)
				r.Get("/skills", h.Skill.GetEmployeeSkills)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}
