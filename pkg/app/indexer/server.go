// Package indexer implements app.Runner for the indexer process.
package indexer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apphttp "github.com/chainsafe/oracle-indexer/pkg/app/http"
	"github.com/chainsafe/oracle-indexer/pkg/config"
	"github.com/chainsafe/oracle-indexer/pkg/eventlog"
	"github.com/chainsafe/oracle-indexer/pkg/health"
	"github.com/chainsafe/oracle-indexer/pkg/indexer"
	"github.com/chainsafe/oracle-indexer/pkg/ledger"
	"github.com/chainsafe/oracle-indexer/pkg/moderation"
	"github.com/chainsafe/oracle-indexer/pkg/notify"
	"github.com/chainsafe/oracle-indexer/pkg/oracle"
	"github.com/chainsafe/oracle-indexer/pkg/pgutil"
	"github.com/chainsafe/oracle-indexer/pkg/retry"
	"github.com/chainsafe/oracle-indexer/pkg/settings"
)

const defaultHTTPMiddlewareTimeout = 60 * time.Second

// Server holds configuration for the indexer process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new indexer Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// components are the long-lived services wired by Run.
type components struct {
	engine     *indexer.Engine
	scheduler  *oracle.Scheduler
	checker    *health.Checker
	indexer    indexer.Service
	settings   settings.Service
	oracle     oracle.Service
	moderation moderation.Service
}

// Run starts the indexer engine, the resolution scheduler, the health
// services and the HTTP API. It blocks until an OS shutdown signal is
// received or a server fails.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting oracle indexer", zap.String("contract_id", cfg.Ledger.ContractID))

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect indexer db: %w", err)
	}
	defer func() { _ = db.Close() }()
	logger.Info("Database connection established")

	publisher, closePublisher, err := s.newPublisher(logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	c, err := s.wire(ctx, db, publisher, logger)
	if err != nil {
		return err
	}

	c.checker.Start(ctx)
	defer c.checker.Stop()

	if err := c.engine.Start(ctx); err != nil {
		return fmt.Errorf("start indexer engine: %w", err)
	}
	defer c.engine.Stop()

	if c.scheduler != nil {
		if err := c.scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start resolution scheduler: %w", err)
		}
		defer c.scheduler.Stop()
	}

	router := s.newRouter(c, logger)
	httpServer := apphttp.NewServer(&cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apphttp.ServeAndWait(gctx, logger, httpServer, cfg.Shutdown.Timeout)
	})
	if cfg.Health.GRPCPort > 0 {
		grpcServer := health.NewGRPCServer(c.checker, logger)
		g.Go(func() error {
			return grpcServer.ListenAndServe(gctx, fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Health.GRPCPort))
		})
	}

	err = g.Wait()
	logger.Info("Oracle indexer stopped")
	return err
}

// wire builds every component on top of db. It bootstraps the settings row,
// so it must run before the engine starts projecting events.
func (s *Server) wire(ctx context.Context, db *bun.DB, publisher notify.Publisher, logger *zap.Logger) (*components, error) {
	cfg := s.cfg

	policy := retry.New(cfg.Retry.MaxAttempts, cfg.Retry.BaseDelay, retry.WithLogger(logger))
	client := ledger.NewClient(cfg.Ledger.RPCURL,
		ledger.WithTimeout(cfg.Ledger.RequestTimeout),
		ledger.WithPageLimit(cfg.Ledger.PageLimit),
		ledger.WithLogger(logger),
	)
	gateway := ledger.NewGateway(client, policy)

	defaultFee, err := decimal.NewFromString(cfg.Settings.DefaultFeePercent)
	if err != nil {
		return nil, fmt.Errorf("parse default fee: %w", err)
	}
	settingsSvc := settings.NewService(settings.NewStore(db), settings.Defaults{
		FeePercent:       defaultFee,
		ContractID:       cfg.Settings.DefaultContractID,
		OracleContractID: cfg.Settings.DefaultOracleContractID,
	}, logger)
	current, err := settingsSvc.Bootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("bootstrap platform settings: %w", err)
	}

	eventLog := eventlog.NewStore(db)
	dispatcher := indexer.NewDispatcher(gateway, eventLog, cfg.Ledger.ContractID, cfg.Ledger.Rewind, logger,
		settings.NewProjector(settingsSvc),
	)
	engine := indexer.NewEngine(dispatcher, cfg.Ledger.PollInterval, logger)

	oracleSvc := oracle.NewLog(oracle.NewService(oracle.NewStore(db), publisher, oracle.Config{
		ReportThreshold: cfg.Oracle.ReportThreshold,
	}, logger), logger)

	c := &components{
		engine:     engine,
		checker:    health.NewChecker(cfg.Health.Interval, logger),
		indexer:    indexer.NewService(eventLog, cfg.Ledger.ContractID, engine),
		settings:   settingsSvc,
		oracle:     oracleSvc,
		moderation: moderation.NewService(moderation.NewStore(db), oracleSvc, logger),
	}
	c.checker.Register("ledger", health.LedgerCheck(gateway))
	c.checker.Register("database", health.DBCheck(db))

	oracleContract := cfg.Oracle.ContractID
	if oracleContract == "" && current.OracleContractID != nil {
		oracleContract = *current.OracleContractID
	}
	switch {
	case oracleContract == "":
		logger.Warn("No oracle contract configured, automatic resolution disabled")
	case cfg.Oracle.SimulationSource == "":
		logger.Warn("No simulation source account configured, automatic resolution disabled")
	default:
		prices := oracle.NewPriceFetcher(gateway, oracleContract, cfg.Oracle.SimulationSource, cfg.Oracle.AssetDecimals)
		c.scheduler = oracle.NewScheduler(oracleSvc, prices, cfg.Oracle.ResolveSchedule, logger)
		logger.Info("Automatic resolution enabled",
			zap.String("oracle_contract_id", oracleContract),
			zap.String("schedule", cfg.Oracle.ResolveSchedule),
		)
	}
	return c, nil
}

func (s *Server) newPublisher(logger *zap.Logger) (notify.Publisher, func(), error) {
	if !s.cfg.NATS.Enabled {
		logger.Info("NATS notifications disabled")
		return notify.Nop{}, func() {}, nil
	}
	p, err := notify.Connect(&s.cfg.NATS, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats: %w", err)
	}
	logger.Info("NATS publisher connected", zap.String("subject_prefix", s.cfg.NATS.SubjectPrefix))
	return p, func() { _ = p.Close() }, nil
}

func (s *Server) newRouter(c *components, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultHTTPMiddlewareTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/ready", c.checker.ReadyHandler)

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	r.Route("/api/v1", func(r chi.Router) {
		indexer.RegisterRoutes(r, c.indexer, logger)
		settings.RegisterRoutes(r, c.settings, logger)
		oracle.RegisterRoutes(r, c.oracle, logger)
		moderation.RegisterRoutes(r, c.moderation, logger)
	})

	return r
}
