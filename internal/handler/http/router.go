package http

import (
	"log/slog"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http/middleware"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// JWTService is nil when the API is open.
	JWTService      jwt.Service
	SessionMaxAge   time.Duration
	SecureCookies   bool
	RequestTimeout  time.Duration
	RequestLogLevel slog.Level
}

type Handlers struct {
	Employee   EmployeeHandler
	Dashboard  DashboardHandler
	Entry      EntryHandler
	Approval   ApprovalHandler
	History    HistoryHandler
	Preference PreferenceHandler
}

func NewRouter(cfg RouterConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.RequestLogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	if cfg.RequestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTService != nil {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
		}
		r.Use(middleware.Session(cfg.SessionMaxAge, cfg.SecureCookies))

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)

			r.Route("/{code}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)

				r.Route("/entries", func(r chi.Router) {
					r.Get("/", h.Entry.ListEntries)
					r.Post("/", h.Entry.AddEntry)
					r.Put("/", h.Entry.UpdateEntry)
					r.Delete("/", h.Entry.DeleteEntry)
					r.Post("/approval", h.Entry.SetApproval)
				})
			})
		})

		r.Get("/dashboard", h.Dashboard.GetDashboard)
		r.Get("/approvals", h.Approval.GetApprovals)
		r.Get("/history", h.History.GetHistory)

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/", h.Preference.GetPreference)
			r.Put("/", h.Preference.SavePreference)
		})
	})
	return r
}
