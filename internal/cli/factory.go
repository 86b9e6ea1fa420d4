package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/config"
	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/adapters/memory"
	"github.com/aretw0/tally/pkg/adapters/redis"
	"github.com/aretw0/tally/pkg/observability"
	"github.com/aretw0/tally/pkg/persistence/middleware"
	"github.com/aretw0/tally/pkg/ports"
	"github.com/aretw0/tally/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const pingTimeout = 3 * time.Second

// Stack bundles everything a command needs to serve calculator sessions.
type Stack struct {
	Engine   *tally.Engine
	Store    ports.StateStore
	Sessions *session.Manager
	Metrics  *observability.Metrics
	Registry *prometheus.Registry
	Logger   *slog.Logger

	// MaxInputSize bounds each line, expression or key name accepted by any adapter.
	MaxInputSize int

	closers []func() error
}

// Close releases backend connections. It is safe to call more than once.
func (s *Stack) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}

// NewLogger builds the process logger from the log section.
func NewLogger(cfg config.LogConfig) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.JSON {
		return logging.NewJSON(level), nil
	}
	return logging.New(level), nil
}

// NewStack wires the engine, metrics, store and session manager described by cfg.
func NewStack(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	engine := tally.New(
		tally.WithLogger(logger),
		tally.WithPrecision(cfg.Display.Precision),
		tally.WithLifecycleHooks(observability.Combine(
			metrics.Hooks(),
			observability.LogHooks(logger),
		)),
	)

	stack := &Stack{
		Engine:   engine,
		Metrics:  metrics,
		Registry: reg,
		Logger:   logger,

		MaxInputSize: cfg.Input.MaxSize,
	}

	key, err := cfg.Store.Key()
	if err != nil {
		return nil, err
	}

	sessionOpts := []session.Option{session.WithLogger(logger)}

	switch cfg.Store.Driver {
	case config.DriverMemory, "":
		stack.Store = memory.NewStore()
	case config.DriverRedis:
		rc := cfg.Store.Redis
		store := redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithPrefix(rc.Prefix),
			redis.WithTTL(rc.TTL),
		)
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("connect redis %s: %w", rc.Addr, err)
		}
		stack.Store = store
		stack.closers = append(stack.closers, store.Close)

		if rc.Lock {
			sessionOpts = append(sessionOpts,
				session.WithLocker(redis.NewLocker(store.Client(), store.Prefix())),
				session.WithLockTTL(rc.LockTTL),
			)
		}
		logger.Debug("redis store ready", "addr", rc.Addr, "prefix", store.Prefix(), "lock", rc.Lock)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	mws := []middleware.Middleware{}
	if key != nil {
		seal, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
		if err != nil {
			return nil, err
		}
		mws = append(mws, seal)
		logger.Debug("session encryption enabled")
	}
	mws = append(mws, middleware.NewMetricsMiddleware(reg))
	stack.Store = middleware.Chain(stack.Store, mws...)

	stack.Sessions = session.NewManager(stack.Store, sessionOpts...)
	observability.RegisterSessionGauge(reg, stack.Sessions, logger)
	return stack, nil
}
