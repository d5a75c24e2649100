// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/davetashner/gptresearch/internal/config"
	"github.com/davetashner/gptresearch/internal/llm"
	"github.com/davetashner/gptresearch/internal/research"
)

// selectProvider is swapped in tests to avoid real network clients.
var selectProvider = llm.Select

// shutdownTimeout bounds the span flush on exit.
const shutdownTimeout = 5 * time.Second

// app is everything a command needs to serve research calls.
type app struct {
	cfg        *config.Config
	env        config.Env
	sel        *llm.Selection
	researcher *research.Researcher
}

// flagConfig turns explicitly set persistent flags into a config layer.
func flagConfig(flags *pflag.FlagSet) *config.Config {
	cfg := &config.Config{
		Model:             flagModel,
		SearchContextSize: flagContextSize,
		RequestTimeout:    config.Duration(flagRequestTimeout),
	}
	if flags.Changed("max-retries") {
		n := flagMaxRetries
		cfg.MaxRetries = &n
	}
	if flags.Changed("url-citations-only") {
		b := flagURLCitationsOnly
		cfg.URLCitationsOnly = &b
	}
	return cfg
}

// loadConfig layers global, local, and flag config, in increasing priority.
func loadConfig(flags *config.Config) (*config.Config, error) {
	global, err := config.LoadGlobal()
	if err != nil {
		return nil, err
	}

	var local *config.Config
	if configPath != "" {
		local, err = config.LoadFile(configPath)
	} else {
		local, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	merged := config.Merge(config.Merge(global, local), flags)
	if err := config.Validate(merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// buildApp loads configuration and the environment, then constructs the
// provider and researcher. Errors are startup failures.
func buildApp(ctx context.Context, flags *pflag.FlagSet) (*app, error) {
	cfg, err := loadConfig(flagConfig(flags))
	if err != nil {
		return nil, exitError(ExitStartupFailure, "gptresearch: config: %v", err)
	}

	env := config.LoadEnv()

	var opts []llm.OpenAIOption
	if cfg.Model != "" {
		opts = append(opts, llm.WithModel(cfg.Model))
	}
	if cfg.MaxRetries != nil {
		opts = append(opts, llm.WithMaxRetries(*cfg.MaxRetries))
	}
	if cfg.RequestTimeout != 0 {
		opts = append(opts, llm.WithRequestTimeout(time.Duration(cfg.RequestTimeout)))
	}

	sel, err := selectProvider(ctx, env, Version, opts...)
	if err != nil {
		return nil, exitError(ExitStartupFailure, "gptresearch: %v", err)
	}

	ropts := []research.Option{
		research.WithModel(cfg.Model),
		research.WithSearchContextSize(llm.SearchContextSize(cfg.SearchContextSize)),
	}
	if cfg.URLCitationsOnly != nil {
		ropts = append(ropts, research.WithURLCitationsOnly(*cfg.URLCitationsOnly))
	}
	r, err := research.New(sel.Provider, ropts...)
	if err != nil {
		_ = sel.Shutdown(ctx)
		return nil, exitError(ExitStartupFailure, "gptresearch: %v", err)
	}

	slog.Debug("researcher ready", "model", r.Model(),
		"search_context_size", r.SearchContextSize(), "traced", sel.Traced)

	return &app{cfg: cfg, env: env, sel: sel, researcher: r}, nil
}

// close flushes pending spans. It runs even if ctx was cancelled.
func (a *app) close(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := a.sel.Shutdown(ctx); err != nil {
		slog.Warn("tracing shutdown failed", "error", err)
	}
}
