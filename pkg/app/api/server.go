// Package api implements app.Runner for the API server process.
package api

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
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/party-search/pkg/app/http"
	"github.com/chainsafe/party-search/pkg/auth"
	"github.com/chainsafe/party-search/pkg/config"
	"github.com/chainsafe/party-search/pkg/ethereum"
	"github.com/chainsafe/party-search/pkg/fee"
	"github.com/chainsafe/party-search/pkg/indexer"
	"github.com/chainsafe/party-search/pkg/indexstore"
	"github.com/chainsafe/party-search/pkg/ingest"
	"github.com/chainsafe/party-search/pkg/linker"
	"github.com/chainsafe/party-search/pkg/network"
	"github.com/chainsafe/party-search/pkg/pgutil"
	"github.com/chainsafe/party-search/pkg/reconciler"
	searchservice "github.com/chainsafe/party-search/pkg/search/service"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

// Run starts the API server and the optional link backfill worker.
// It blocks until an OS shutdown signal is received or a fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting party search API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("search_source", cfg.Search.Source),
	)

	networks, err := s.networkTable()
	if err != nil {
		return err
	}

	var store indexstore.Store
	if s.needsDB() {
		db, err := s.openDB(ctx, logger)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		store = indexstore.NewStore(db)
	}

	source, links := s.searchBackend(store)
	searchSvc := searchservice.NewLog(
		searchservice.NewService(source, links, reconciler.New(networks, logger), cfg.Search, logger),
		logger,
	)

	deps := routerDeps{search: searchSvc}
	if cfg.JWKS.URL != "" {
		deps.ingest = ingest.NewService(store, networks, logger)
		deps.tokens = auth.NewJWTValidator(cfg.JWKS.URL, cfg.JWKS.Issuer)
	}

	stopLinker, err := s.startLinker(ctx, store, logger)
	if err != nil {
		return err
	}
	// Called explicitly after ServeAndWait returns for deterministic shutdown order.
	defer stopLinker()

	router := newRouter(cfg, deps, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before the deferred DB close kicks in.
	stopLinker()

	return err
}

func (s *Server) networkTable() (*network.Table, error) {
	overrides, err := s.cfg.NetworkOverrides()
	if err != nil {
		return nil, err
	}
	networks, err := network.New(overrides)
	if err != nil {
		return nil, fmt.Errorf("load network table: %w", err)
	}
	return networks, nil
}

func (s *Server) needsDB() bool {
	return s.cfg.Search.Source == config.SearchSourceDB || s.cfg.Linker.Enabled || s.cfg.JWKS.URL != ""
}

func (s *Server) openDB(ctx context.Context, logger *zap.Logger) (*bun.DB, error) {
	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)
	return db, nil
}

func (s *Server) searchBackend(store indexstore.Store) (searchservice.Source, searchservice.LinkLookup) {
	if s.cfg.Search.Source == config.SearchSourceRemote {
		client := indexer.NewClient(s.cfg.Indexer)
		return client, client
	}
	return store, store
}

func (s *Server) startLinker(ctx context.Context, store indexstore.Store, logger *zap.Logger) (func(), error) {
	if !s.cfg.Linker.Enabled {
		return func() {}, nil
	}

	clients, err := ethereum.DialNetworks(ctx, &s.cfg.Ethereum, logger)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum networks: %w", err)
	}

	resolver := ethereum.NewResolver(clients.Callers(), s.cfg.Ethereum.CallTimeout)
	l := linker.New(store, resolver, clients.NetworkIDs(), s.cfg.Linker.BatchSize, logger)
	l.Start(s.cfg.Linker.Interval)

	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		l.Stop()
		clients.Close()
	}, nil
}

type routerDeps struct {
	search searchservice.Service
	// ingest and tokens are nil when ingestion is not configured
	ingest ingest.Service
	tokens auth.TokenValidator
}

func newRouter(cfg *config.APIServerConfig, deps routerDeps, logger *zap.Logger) chi.Router {
	requestTimeout := cfg.Server.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(apphttp.NotFound)
	r.MethodNotAllowed(apphttp.MethodNotAllowed)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	searchservice.RegisterRoutes(r, deps.search, logger)
	fee.RegisterRoutes(r, logger)

	if deps.ingest != nil && deps.tokens != nil {
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireBearer(deps.tokens, logger))
			ingest.RegisterRoutes(r, deps.ingest, logger)
		})
		logger.Info("Ingestion endpoints enabled", zap.String("path", "/index"))
	}

	return r
}
