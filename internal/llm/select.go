// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"log/slog"

	"github.com/davetashner/gptresearch/internal/config"
)

// Selection is the provider chosen for the lifetime of the process.
type Selection struct {
	// Provider is the handle every research call goes through.
	Provider Provider

	// Traced reports whether Provider is wrapped in a TracingProvider.
	Traced bool

	shutdown func(context.Context) error
}

// Shutdown flushes pending spans. It is a no-op when tracing is off.
func (s *Selection) Shutdown(ctx context.Context) error {
	if s == nil || s.shutdown == nil {
		return nil
	}
	return s.shutdown(ctx)
}

// Select builds the provider from the environment snapshot. The OpenAI
// provider is always constructed first, so a missing API key fails here
// regardless of tracing. Tracing is added only when every tracing key is
// set; a partial configuration silently runs untraced.
//
// opts are applied after the env-derived options and take precedence.
func Select(ctx context.Context, env config.Env, serviceVersion string, opts ...OpenAIOption) (*Selection, error) {
	var base []OpenAIOption
	if env.OpenAIAPIKey != "" {
		base = append(base, WithAPIKey(env.OpenAIAPIKey))
	}
	if env.OpenAIBaseURL != "" {
		base = append(base, WithBaseURL(env.OpenAIBaseURL))
	}

	plain, err := NewOpenAIProvider(append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	if !env.TracingEnabled() {
		if env.TracingPartial() {
			slog.Debug("tracing partially configured, running untraced",
				"missing", env.MissingTracingKeys())
		}
		return &Selection{Provider: plain}, nil
	}

	tp, err := NewLangfuseTracerProvider(ctx, LangfuseConfig{
		PublicKey: env.LangfusePublicKey,
		SecretKey: env.LangfuseSecretKey,
		Host:      env.LangfuseHost,
	}, serviceVersion)
	if err != nil {
		return nil, err
	}

	slog.Debug("tracing enabled", "host", env.LangfuseHost)
	return &Selection{
		Provider: NewTracingProvider(plain, tp),
		Traced:   true,
		shutdown: tp.Shutdown,
	}, nil
}
