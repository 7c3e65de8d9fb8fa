package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/trackforge/timetracker-backend/internal/config"
	"github.com/trackforge/timetracker-backend/internal/handler/http/middleware"
)

func NewRouter(
	cfg *config.Config,
	tokenGate *middleware.APITokenGate,
	authHandler AuthHandler,
	projectHandler ProjectHandler,
	employeeHandler EmployeeHandler,
	workSessionHandler WorkSessionHandler,
	screenshotHandler ScreenshotHandler,
	activationHandler ActivationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetracker"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RealIP)

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Every /api route except login requires a valid API token.
	r.Use(tokenGate.Handler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.Get)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.List)
			r.Post("/", projectHandler.Create)
			r.Get("/{id}", projectHandler.Get)
			r.Put("/{id}", projectHandler.Update)
			r.Delete("/{id}", projectHandler.Delete)
		})

		r.Route("/worksession", func(r chi.Router) {
			r.Post("/clock-in", workSessionHandler.ClockIn)
			r.Post("/clock-out", workSessionHandler.ClockOut)
			r.Get("/{employeeID}", workSessionHandler.List)
		})

		r.Route("/screenshots", func(r chi.Router) {
			r.Post("/upload", screenshotHandler.Upload)
			r.Get("/{sessionID}", screenshotHandler.List)
		})
	})

	// Browser-facing activation links live outside the token-protected API.
	r.Route("/activate/{uid}/{token}", func(r chi.Router) {
		r.Get("/", activationHandler.Show)
		r.Post("/", activationHandler.Activate)
	})

	return r
}
