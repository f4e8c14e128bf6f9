// Command handlecheckd serves handle availability evaluations over HTTP.
//
//	GET /healthz
//	GET /v1/check/{handle}?platforms=twitter,github
//
// Evaluations are memoized for a short TTL so repeated lookups of the same
// handle do not re-spend probe budget.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/codeGROOVE-dev/handlecheck/pkg/checker"
	"github.com/codeGROOVE-dev/handlecheck/pkg/config"
	"github.com/codeGROOVE-dev/handlecheck/pkg/probe"
	"github.com/codeGROOVE-dev/handlecheck/pkg/probecache"
	"github.com/codeGROOVE-dev/handlecheck/pkg/ratelimit"
	"github.com/codeGROOVE-dev/handlecheck/pkg/resultcache"
	"github.com/codeGROOVE-dev/handlecheck/pkg/verifier"
)

func main() {
	var (
		configPath string
		listenAddr string
		resultTTL  time.Duration
		cacheDir   string
		debug      bool
	)
	pflag.StringVar(&configPath, "config", "", "path to YAML configuration file")
	pflag.StringVar(&listenAddr, "listen", ":8080", "listen address")
	pflag.DurationVar(&resultTTL, "result-ttl", 10*time.Minute, "how long to memoize full evaluations")
	pflag.StringVar(&cacheDir, "cache-dir", "", "persist memoized results here (default: in-memory only)")
	pflag.BoolVar(&debug, "debug", false, "enable debug logging")
	pflag.Parse()

	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	results := resultcache.NewNull(resultTTL)
	if cacheDir != "" {
		persisted, err := resultcache.NewWithPath(resultTTL, cacheDir)
		if err != nil {
			logger.Warn("result persistence unavailable, using memory only", "error", err)
		} else {
			results = persisted
		}
	}

	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           newRouter(build(cfg, logger), results, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", listenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

func build(cfg config.Config, logger *slog.Logger) *checker.Checker {
	limiter := ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.Window())
	cache := probecache.New(cfg.Cache.TTL())
	opts := []checker.Option{
		checker.WithLogger(logger),
		checker.WithRefineThreshold(cfg.RefineThreshold),
		checker.WithProber(probe.New(limiter, cache, probe.WithLogger(logger))),
		checker.WithSuggestions(),
	}
	if cfg.Verifier.APIKey != "" {
		vopts := []verifier.Option{verifier.WithLogger(logger)}
		if cfg.Verifier.Endpoint != "" {
			vopts = append(vopts, verifier.WithEndpoint(cfg.Verifier.Endpoint))
		}
		v, err := verifier.New(cfg.Verifier.APIKey, vopts...)
		if err != nil {
			logger.Warn("verifier disabled", "error", err)
		} else {
			opts = append(opts, checker.WithVerifier(v))
		}
	}
	return checker.New(opts...)
}
