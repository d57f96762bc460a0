// Command server runs the video search HTTP API.
//
// Startup sequence:
//  1. Load .env (optional) and environment configuration
//  2. Configure zerolog (level, pretty console output in dev)
//  3. Initialize OpenTelemetry tracing (no-op unless enabled)
//  4. Open the feedback database and run migrations
//  5. Perform the initial dataset load (failure is logged, not fatal:
//     the API serves empty results until a reload succeeds)
//  6. Optionally schedule periodic reloads via cron
//  7. Serve HTTP with graceful shutdown on SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sunidhi090894/kidsvids-backend/internal/config"
	httpapi "github.com/sunidhi090894/kidsvids-backend/internal/http"
	"github.com/sunidhi090894/kidsvids-backend/internal/ingest"
	"github.com/sunidhi090894/kidsvids-backend/internal/observability"
	"github.com/sunidhi090894/kidsvids-backend/internal/repo"
	"github.com/sunidhi090894/kidsvids-backend/internal/services"
	"github.com/sunidhi090894/kidsvids-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	sysutil.SetLogLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	store := ingest.NewStore()
	searchSvc := httpapi.NewSearchService(store, cfg)

	if report := loadDataset(ctx, searchSvc, cfg.LoadTimeout); report != nil {
		log.Info().
			Uint64("generation", report.Generation).
			Int("records", report.Records).
			Int("skipped", report.Skipped).
			Bool("enriched", report.Enriched).
			Msg("dataset loaded")
	}

	var scheduler *cron.Cron
	if cfg.ReloadCron != "" {
		scheduler = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
		if _, err := scheduler.AddFunc(cfg.ReloadCron, func() {
			if report := loadDataset(ctx, searchSvc, cfg.LoadTimeout); report != nil {
				log.Info().Uint64("generation", report.Generation).Int("records", report.Records).Msg("scheduled reload")
			}
		}); err != nil {
			log.Fatal().Err(err).Str("spec", cfg.ReloadCron).Msg("invalid RELOAD_CRON")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, searchSvc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// loadDataset runs one bounded dataset load. Failures keep the previous
// snapshot (or the empty pre-load state) and are logged, never fatal.
func loadDataset(ctx context.Context, svc *services.SearchService, timeout time.Duration) *services.ReloadReport {
	loadCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	report, err := svc.Reload(loadCtx)
	if err != nil {
		log.Error().Err(err).Msg("dataset load failed")
		return nil
	}
	return report
}
