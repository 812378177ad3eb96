package http

import (
	"log/slog"
	"os"

	"github.com/chronotec/timeclock-backend-go/internal/config"
	"github.com/chronotec/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	tokenAuth *jwtauth.JWTAuth,
	punchHandler PunchHandler,
	reportHandler ReportHandler,
	scheduleHandler ScheduleHandler,
	justificationHandler JustificationHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Kiosk endpoint, NIP authenticated
		r.Post("/punches", punchHandler.Submit)

		// Admin console, token authenticated
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))
			r.Use(middleware.AdminOnly)

			r.Route("/reports/attendance", func(r chi.Router) {
				r.Get("/", reportHandler.GetAttendanceReport)
				r.Get("/export", reportHandler.ExportAttendanceReport)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Post("/import", scheduleHandler.Import)
			})

			r.Route("/justifications", func(r chi.Router) {
				r.Get("/", justificationHandler.List)
				r.Post("/", justificationHandler.Create)
				r.Post("/evidence", justificationHandler.UploadEvidence)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Put("/{id}/role", employeeHandler.SetRole)
				r.Put("/{id}/status", employeeHandler.SetStatus)
				r.Post("/{id}/reset-nip", employeeHandler.ResetNIP)
			})
		})
	})
	return r
}
