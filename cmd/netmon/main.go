// cmd/netmon/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tamzrod/coin-netmon/internal/config"
	"github.com/tamzrod/coin-netmon/internal/daemon"
	"github.com/tamzrod/coin-netmon/internal/export"
	"github.com/tamzrod/coin-netmon/internal/metrics"
	"github.com/tamzrod/coin-netmon/internal/network"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: netmon <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	n := cfg.Netmon

	logger, err := buildLogger(n.Log)
	if err != nil {
		log.Fatalf("logger build failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clk := clock.New()

	// --------------------
	// Daemon client
	// --------------------

	client, err := daemon.New(daemon.Config{
		URL:      n.Daemon.URL,
		User:     n.Daemon.User,
		Password: n.Daemon.Password,
		Timeout:  time.Duration(n.Daemon.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		logger.Fatal("daemon client build failed", zap.Error(err))
	}

	opts := []network.Option{
		network.WithLogger(logger),
		network.WithClock(clk),
	}

	// --------------------
	// Metrics (optional)
	// --------------------

	var metricsSrv *http.Server
	if n.Metrics.Listen != "" {
		reg := prometheus.NewRegistry()
		collector, err := metrics.New(reg, n.Coin.Symbol)
		if err != nil {
			logger.Fatal("metrics registration failed", zap.Error(err))
		}
		opts = append(opts,
			network.WithCapabilitySink(collector),
			network.WithObserver(collector.Observe),
		)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{
			Addr:              n.Metrics.Listen,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	// --------------------
	// Status export (optional)
	// --------------------

	if n.StatusExport != nil {
		pub, closeExport, err := export.Build(*n.StatusExport, n.Coin.Symbol, clk, logger)
		if err != nil {
			logger.Fatal("status export build failed",
				zap.String("endpoint", n.StatusExport.Endpoint),
				zap.Error(err),
			)
		}
		defer func() { _ = closeExport() }()

		opts = append(opts,
			network.WithCapabilitySink(pub),
			network.WithObserver(pub.Observe),
		)
	}

	// --------------------
	// Monitor: detect, first refresh, then periodic refresh
	// --------------------

	mon, err := network.New(ctx, network.Coin{
		Name:       n.Coin.Name,
		Symbol:     n.Coin.Symbol,
		Algorithm:  n.Coin.Algorithm,
		Multiplier: n.Coin.Multiplier,
	}, client, opts...)
	if err != nil {
		logger.Fatal("network monitor build failed", zap.Error(err))
	}

	mon.Run(ctx, time.Duration(n.Refresh.IntervalMs)*time.Millisecond)

	logger.Info("shutting down", zap.String("last_status", mon.StatusLine()))

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
}

func buildLogger(c config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
