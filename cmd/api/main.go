package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/punchclock-dashboard/internal/config"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/domain/preference"
	appHTTP "github.com/cmlabs-hris/punchclock-dashboard/internal/handler/http"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/cron"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/jwt"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/oauth"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/pkg/punchclock"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/repository/memory"
	"github.com/cmlabs-hris/punchclock-dashboard/internal/repository/postgresql"
	approvalService "github.com/cmlabs-hris/punchclock-dashboard/internal/service/approval"
	dashboardService "github.com/cmlabs-hris/punchclock-dashboard/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/punchclock-dashboard/internal/service/employee"
	entryService "github.com/cmlabs-hris/punchclock-dashboard/internal/service/entry"
	historyService "github.com/cmlabs-hris/punchclock-dashboard/internal/service/history"
	preferenceService "github.com/cmlabs-hris/punchclock-dashboard/internal/service/preference"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.LogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "punchclock-dashboard"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Punch clock API
	clientOpts := []punchclock.Option{punchclock.WithTimeout(cfg.PunchClock.Timeout)}
	creds := oauth.ClientCredentials{
		ClientID:     cfg.PunchClock.ClientID,
		ClientSecret: cfg.PunchClock.ClientSecret,
		TokenURL:     cfg.PunchClock.TokenURL,
		Scopes:       cfg.PunchClock.Scopes,
		Audience:     cfg.PunchClock.Audience,
	}
	if creds.Enabled() {
		clientOpts = append(clientOpts, punchclock.WithHTTPClient(creds.HTTPClient(ctx)))
		slog.Info("Punch clock API uses client credentials", "token_url", creds.TokenURL)
	} else {
		clientOpts = append(clientOpts, punchclock.WithToken(cfg.PunchClock.APIToken))
	}
	client := punchclock.NewClient(cfg.PunchClock.BaseURL, clientOpts...)

	// Preferences
	var preferenceRepo preference.PreferenceRepository
	if cfg.DatabaseEnabled() {
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			slog.Error("Error connecting to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			slog.Error("Error migrating database", "error", err)
			os.Exit(1)
		}
		preferenceRepo = postgresql.NewPreferenceRepository(db)
	} else {
		slog.Warn("DB_HOST not set, preferences are kept in memory")
		preferenceRepo = memory.NewPreferenceRepository()
	}

	employeeSvc := employeeService.NewEmployeeService(client.Employees)
	dashboardSvc := dashboardService.NewDashboardService(client.Entries)
	entrySvc := entryService.NewEntryService(client.Entries)
	approvalSvc := approvalService.NewApprovalService(client.Employees, client.Entries, cfg.PunchClock.Concurrency)
	historySvc := historyService.NewHistoryService(client.History)
	preferenceSvc := preferenceService.NewPreferenceService(preferenceRepo)

	var JWTService jwt.Service
	if cfg.AuthEnabled() {
		JWTService = jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	} else {
		slog.Warn("JWT_SECRET_KEY not set, the API is open")
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		Logger:          logger,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		JWTService:      JWTService,
		SessionMaxAge:   cfg.Session.MaxAge,
		SecureCookies:   cfg.Session.Secure,
		RequestTimeout:  cfg.PunchClock.Timeout + 5*time.Second,
		RequestLogLevel: slog.LevelDebug,
	}, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Entry:      appHTTP.NewEntryHandler(entrySvc),
		Approval:   appHTTP.NewApprovalHandler(approvalSvc),
		History:    appHTTP.NewHistoryHandler(historySvc),
		Preference: appHTTP.NewPreferenceHandler(preferenceSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewPreferenceJobs(preferenceRepo, cfg.Session.PreferenceTTL).RegisterJobs(scheduler, cfg.Session.PruneEvery)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
