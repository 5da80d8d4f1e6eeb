// Command astart-bench compares the classical and batched-frontier searches
// on random grids, MovingAI maps or random sparse graphs.
//
// Usage:
//
//	astart-bench [-config bench.yaml] [-metrics-addr :9100] [-log-level info]
//
// Without -config the built-in defaults run. With -metrics-addr the search
// counters are served at /metrics for the duration of the run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/astart/bench"
	"github.com/katalvlaran/astart/metrics"
)

func main() {
	configPath := flag.String("config", "", "YAML benchmark config (defaults when empty)")
	metricsAddr := flag.String("metrics-addr", "", "address to serve Prometheus /metrics on, e.g. :9100")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "astart-bench: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*configPath, *metricsAddr, logger); err != nil {
		logger.Error("benchmark failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(configPath, metricsAddr string, logger *slog.Logger) error {
	cfg, err := bench.LoadConfig(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	rec := metrics.NewRecorder(reg, "astart")

	if metricsAddr != "" {
		srv := &http.Server{
			Addr:              metricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server stopped", slog.Any("error", err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("serving metrics", slog.String("addr", metricsAddr))
	}

	rep, err := bench.Run(ctx, cfg, bench.WithLogger(logger), bench.WithObserver(rec))
	if err != nil {
		return err
	}

	return rep.WriteText(os.Stdout)
}
