package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"payday/internal/domain/attendance"
	"payday/internal/domain/employee"
	"payday/internal/domain/leave"
	"payday/internal/domain/overtime"
	"payday/internal/domain/payroll"
	"payday/internal/domain/salary"
	"payday/internal/platform/artifact"
	"payday/internal/platform/config"
	"payday/internal/platform/db"
	"payday/internal/platform/jobs"
	"payday/internal/platform/metrics"
	"payday/internal/transport/http/api"
	authhandler "payday/internal/transport/http/handlers/auth"
	payrollhandler "payday/internal/transport/http/handlers/payroll"
	"payday/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payday"),
		slog.String("env", cfg.Environment),
	)
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.SeedAdmin(ctx, pool, logger, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	directory := employee.NewStore(pool)
	salaries := salary.NewResolver(salary.NewStore(pool), directory)
	aggregator := attendance.NewAggregator(
		attendance.NewStore(pool),
		leave.NewStore(pool),
		overtime.NewStore(pool),
	)
	payrollStore := payroll.NewStore(pool)
	artifacts := artifact.NewFileStore(cfg.ArtifactDir)

	payrollService := payroll.NewService(payroll.Deps{
		Directory:     directory,
		Salaries:      salaries,
		Aggregator:    aggregator,
		Store:         payrollStore,
		Artifacts:     artifacts,
		Logger:        logger,
		Rates:         cfg.Rates(),
		RestDay:       cfg.RestDay,
		ExcludedRoles: cfg.ExcludedRoles,
	})

	if cfg.PayrollCheckInterval > 0 {
		scheduler := jobs.New(payrollService, jobs.NewPgRunLog(pool), logger, cfg.PayrollRunDay, cfg.PayrollCheckInterval)
		scheduler.Start(ctx)
	}

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(1 << 20))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			user, ok := middleware.GetUser(r.Context())
			if !ok || user.Role != employee.RoleAdmin {
				api.Fail(w, http.StatusForbidden, "forbidden", "admin role required", middleware.GetRequestID(r.Context()))
				return
			}
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)

		payrollHandler := payrollhandler.NewHandler(payrollService, directory, collector)
		payrollHandler.RegisterRoutes(r)
	})

	logger.Info("payday server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
