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

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/Derojuu/MediCheck-sub000/internal/config"
	"github.com/Derojuu/MediCheck-sub000/internal/metrics"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/audit"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/autoflag"
	redisCache "github.com/Derojuu/MediCheck-sub000/internal/provenance/cache/redis"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/custody"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/eventlog"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger/backend"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/registry"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/repository/clickhouse"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/repository/postgres"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/verification"
	"github.com/Derojuu/MediCheck-sub000/internal/tracing"
	"github.com/Derojuu/MediCheck-sub000/internal/transport"
)

type cfg struct {
	Addr                    string        `long:"addr" env:"MEDICHECK_ADDR" default:":8080" description:"HTTP API address"`
	MetricsAddr             string        `long:"metrics-addr" env:"MEDICHECK_METRICS_ADDR" default:":2112" description:"address for metrics server"`
	PostgresDSN             string        `long:"postgres-dsn" env:"MEDICHECK_POSTGRES_DSN" required:"true" description:"PostgreSQL DSN of the derived store"`
	ClickhouseDSN           string        `long:"clickhouse-dsn" env:"MEDICHECK_CLICKHOUSE_DSN" description:"ClickHouse DSN of the verdict audit log (optional)"`
	RedisURL                string        `long:"redis-url" env:"MEDICHECK_REDIS_URL" description:"Redis URL of the topic cache (optional)"`
	RedisTTL                time.Duration `long:"redis-ttl" env:"MEDICHECK_REDIS_TTL" default:"24h" description:"topic cache entry TTL"`
	OTLPEndpoint            string        `long:"otlp-endpoint" env:"MEDICHECK_OTLP_ENDPOINT" description:"OTLP/HTTP traces endpoint (optional)"`
	StrictCustodyChain      bool          `long:"strict-custody-chain" env:"MEDICHECK_STRICT_CUSTODY_CHAIN" description:"require each transfer to start where the previous one ended"`
	EnforceUnitRegistration bool          `long:"enforce-unit-registration" env:"MEDICHECK_ENFORCE_UNIT_REGISTRATION" description:"fail scans of units not registered to their batch"`
	UnitConcurrency         int           `long:"unit-concurrency" env:"MEDICHECK_UNIT_CONCURRENCY" default:"8" description:"parallel ledger appends when registering units"`
	AuditFlushSize          int           `long:"audit-flush-size" env:"MEDICHECK_AUDIT_FLUSH_SIZE" default:"500" description:"verdict records per audit flush"`
	AuditFlushInterval      time.Duration `long:"audit-flush-interval" env:"MEDICHECK_AUDIT_FLUSH_INTERVAL" default:"2s" description:"maximum wait before an audit flush"`

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

	if err := run(ctx, c, logger); err != nil {
		logger.Fatal("verifier failed", zap.Error(err))
	}
}

func run(ctx context.Context, c cfg, logger *zap.Logger) error {
	shutdownTracing, err := tracing.Setup(ctx, "medicheck-verifier", c.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("trace flush failed", zap.Error(err))
		}
	}()

	startMetricsServer(ctx, c.MetricsAddr, logger)

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
		return fmt.Errorf("init postgres: %w", err)
	}
	defer store.Close()

	health := map[string]transport.HealthCheck{"postgres": store.Ping}

	var (
		cache       verification.TopicCache
		topicWarmer custody.TopicCache
	)
	if c.RedisURL != "" {
		rc, err := redisCache.Open(ctx, c.RedisURL, c.RedisTTL, metrics.NewRedisCache())
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		defer func() {
			_ = rc.Close()
		}()
		cache, topicWarmer = rc, rc
		health["redis"] = rc.Health
	}

	var (
		sink      verification.AuditSink = audit.Nop{}
		summaries transport.SummaryReader
	)
	if c.ClickhouseDSN != "" {
		ch, err := clickhouse.NewRepository(c.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse: %w", err)
		}
		defer func() {
			_ = ch.Close()
		}()
		s := audit.NewSink(ch, metrics.NewAuditSink(), audit.Config{
			FlushSize:     c.AuditFlushSize,
			FlushInterval: c.AuditFlushInterval,
		}, logger)
		s.Start(ctx)
		defer s.Stop()
		sink, summaries = s, ch
		health["clickhouse"] = ch.Ping
	}

	events := eventlog.New(client, c.Ledger.MaxPages, logger)
	flagger, err := autoflag.New(store, events, metrics.NewAutoFlag(), logger)
	if err != nil {
		return err
	}

	engine := verification.NewEngine(store, flagger, verification.Options{
		StrictCustodyChain:      c.StrictCustodyChain,
		EnforceUnitRegistration: c.EnforceUnitRegistration,
	}, logger)
	topics := verification.NewCachedTopics(cache, store, logger)
	verifier, err := verification.NewService(topics, events, engine, sink, metrics.NewVerification(), logger)
	if err != nil {
		return err
	}

	custodySvc, err := custody.NewService(store, registry.NewManager(client, logger), events, flagger, topicWarmer,
		custody.Options{UnitConcurrency: c.UnitConcurrency}, logger)
	if err != nil {
		return err
	}

	handler, err := transport.NewHandler(transport.Deps{
		Verifier:  verifier,
		Custody:   custodySvc,
		Events:    events,
		Topics:    topics,
		Summaries: summaries,
		Health:    health,
	}, logger)
	if err != nil {
		return err
	}

	return serve(ctx, c.Addr, cors.Default().Handler(handler.Routes()), logger)
}

func serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
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
