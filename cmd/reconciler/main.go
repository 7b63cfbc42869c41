package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Derojuu/MediCheck-sub000/internal/config"
	"github.com/Derojuu/MediCheck-sub000/internal/metrics"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/eventlog"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger/backend"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/reconcile"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/repository/postgres"
)

type cfg struct {
	PostgresDSN string        `long:"postgres-dsn" env:"MEDICHECK_POSTGRES_DSN" required:"true" description:"PostgreSQL DSN of the derived store"`
	MetricsAddr string        `long:"metrics-addr" env:"MEDICHECK_METRICS_ADDR" default:":2113" description:"address for metrics server"`
	Repair      bool          `long:"repair" env:"MEDICHECK_RECONCILE_REPAIR" description:"fix drift instead of only reporting it"`
	Once        bool          `long:"once" description:"run a single pass and exit"`
	Interval    time.Duration `long:"interval" env:"MEDICHECK_RECONCILE_INTERVAL" default:"5m" description:"pause between passes"`
	PageSize    int           `long:"page-size" env:"MEDICHECK_RECONCILE_PAGE_SIZE" default:"200" description:"batches read per store page"`
	Workers     int           `long:"workers" env:"MEDICHECK_RECONCILE_WORKERS" default:"8" description:"batches reconciled in parallel"`

	Ledger config.Ledger `group:"ledger"`
}

func main() {
	c := cfg{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&c, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, c, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("reconciler failed", zap.Error(err))
	}
}

func run(ctx context.Context, c cfg, logger *zap.Logger) error {
	if !c.Once {
		startMetricsServer(ctx, c.MetricsAddr, logger)
	}

	client, closeLedger, err := backend.New(c.Ledger.BackendConfig(), metrics.NewLedgerClient(c.Ledger.Backend), logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLedger(); err != nil {
			logger.Warn("ledger close failed", zap.Error(err))
		}
	}()

	store, err := postgres.NewRepository(ctx, c.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return err
	}
	defer store.Close()

	events := eventlog.New(client, c.Ledger.MaxPages, logger)

	var writer reconcile.EventWriter
	if c.Repair {
		writer = events
	}
	r, err := reconcile.New(store, events, writer, metrics.NewReconciler(), reconcile.Config{
		Repair:      c.Repair,
		Interval:    c.Interval,
		PageSize:    c.PageSize,
		WorkerCount: c.Workers,
	}, logger)
	if err != nil {
		return err
	}

	if !c.Once {
		return r.Run(ctx)
	}

	report, err := r.Pass(ctx)
	logger.Info("reconciliation pass finished",
		zap.Int("inspected", report.Inspected),
		zap.Int("consistent", report.Consistent),
		zap.Int("missing_ledger_flag", report.MissingLedgerFlag),
		zap.Int("missing_status", report.MissingStatus),
		zap.Int("no_topic", report.NoTopic),
		zap.Int("repaired", report.Repaired),
		zap.Int("failed", report.Failed),
	)
	return err
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
