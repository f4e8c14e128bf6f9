// Command handlecheck evaluates social handle availability.
//
// Usage:
//
//	handlecheck myhandle
//	handlecheck --platforms twitter,github myhandle
//	handlecheck --json myhandle                # machine-readable output
//	HANDLECHECK_API_KEY=... handlecheck myhandle  # enables paid verification
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/codeGROOVE-dev/handlecheck/pkg/checker"
	"github.com/codeGROOVE-dev/handlecheck/pkg/config"
	"github.com/codeGROOVE-dev/handlecheck/pkg/handle"
	"github.com/codeGROOVE-dev/handlecheck/pkg/probe"
	"github.com/codeGROOVE-dev/handlecheck/pkg/probecache"
	"github.com/codeGROOVE-dev/handlecheck/pkg/ratelimit"
	"github.com/codeGROOVE-dev/handlecheck/pkg/verifier"
)

func main() {
	var (
		configPath   string
		platformList string
		jsonOut      bool
		debug        bool
		suggest      bool
		noProbe      bool
	)
	pflag.StringVar(&configPath, "config", "", "path to YAML configuration file")
	pflag.StringVar(&platformList, "platforms", "", "comma-separated platform list (default: all)")
	pflag.BoolVar(&jsonOut, "json", false, "emit JSON instead of a table")
	pflag.BoolVar(&debug, "debug", false, "enable debug logging")
	pflag.BoolVar(&suggest, "suggest", false, "suggest alternatives for taken handles")
	pflag.BoolVar(&noProbe, "no-probe", false, "skip direct HTTP probes (offline heuristics only)")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: handlecheck [options] <handle>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		pflag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nSupported platforms:")
		for _, p := range handle.All() {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
	}
	pflag.Parse()

	if pflag.NArg() < 1 {
		pflag.Usage()
		os.Exit(1)
	}
	baseHandle := pflag.Arg(0)

	logLevel := slog.LevelWarn
	if debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	platforms, err := parsePlatforms(platformList)
	if err != nil {
		logger.Error("bad platform list", "error", err)
		os.Exit(1)
	}

	c := build(cfg, logger, suggest, noProbe)
	result, err := c.Check(context.Background(), baseHandle, platforms...)
	if err != nil {
		logger.Error("evaluation failed", "error", err)
		os.Exit(1)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logger.Error("encode failed", "error", err)
			os.Exit(1)
		}
		return
	}
	render(result)
}

func build(cfg config.Config, logger *slog.Logger, suggest, noProbe bool) *checker.Checker {
	opts := []checker.Option{
		checker.WithLogger(logger),
		checker.WithRefineThreshold(cfg.RefineThreshold),
	}
	if suggest {
		opts = append(opts, checker.WithSuggestions())
	}
	if noProbe {
		opts = append(opts, checker.WithRefineThreshold(0)) // nothing clears a zero gate
	} else {
		limiter := ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.Window())
		cache := probecache.New(cfg.Cache.TTL())
		opts = append(opts, checker.WithProber(probe.New(limiter, cache, probe.WithLogger(logger))))
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

func parsePlatforms(list string) ([]handle.Platform, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var out []handle.Platform
	for _, name := range strings.Split(list, ",") {
		p, ok := handle.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", handle.ErrUnsupportedPlatform, name)
		}
		out = append(out, p)
	}
	return out, nil
}

func render(result *handle.AggregateResult) {
	rows := pterm.TableData{{"Platform", "Handle", "Status", "Confidence", "Why"}}
	for _, v := range result.Verdicts {
		status := pterm.Red("taken")
		if v.Available {
			status = pterm.Green("available")
		}
		why := strings.Join(v.Factors, "; ")
		if why == "" {
			why = string(v.Source)
		}
		rows = append(rows, []string{v.Platform, v.Handle, status, fmt.Sprintf("%d%%", v.Confidence), why})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
	}

	pterm.Println()
	pterm.Info.Printf("%s is available on %d%% of checked platforms\n", result.BaseHandle, result.OverallScore)
	for _, v := range result.Verdicts {
		if len(v.Suggestions) > 0 {
			pterm.Printf("  %s alternatives: %s\n", v.Platform, strings.Join(v.Suggestions, ", "))
		}
	}
}
