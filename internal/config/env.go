// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names read at startup.
const (
	EnvOpenAIAPIKey      = "OPENAI_API_KEY"
	EnvOpenAIBaseURL     = "OPENAI_BASE_URL"
	EnvLangfusePublicKey = "LANGFUSE_PUBLIC_KEY"
	EnvLangfuseSecretKey = "LANGFUSE_SECRET_KEY"
	EnvLangfuseHost      = "LANGFUSE_HOST"
	EnvServerAPIKey      = "GPTRESEARCH_API_KEY"
)

// TracingKeys lists the variables that must all be set to enable tracing.
var TracingKeys = []string{EnvLangfusePublicKey, EnvLangfuseSecretKey, EnvLangfuseHost}

// Env is the snapshot of environment values the process depends on.
// It is captured once and treated as read-only afterwards.
type Env struct {
	OpenAIAPIKey  string
	OpenAIBaseURL string

	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseHost      string

	// ServerAPIKey guards the HTTP transport when non-empty.
	ServerAPIKey string
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding variables already present. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// LoadEnv captures the current process environment.
func LoadEnv() Env {
	return EnvFrom(os.Getenv)
}

// EnvFrom builds an Env from an arbitrary lookup function. Values are
// trimmed, so whitespace-only counts as unset.
func EnvFrom(getenv func(string) string) Env {
	get := func(k string) string { return strings.TrimSpace(getenv(k)) }
	return Env{
		OpenAIAPIKey:      get(EnvOpenAIAPIKey),
		OpenAIBaseURL:     get(EnvOpenAIBaseURL),
		LangfusePublicKey: get(EnvLangfusePublicKey),
		LangfuseSecretKey: get(EnvLangfuseSecretKey),
		LangfuseHost:      get(EnvLangfuseHost),
		ServerAPIKey:      get(EnvServerAPIKey),
	}
}

// TracingEnabled reports whether all tracing keys are set. Any subset
// counts as disabled.
func (e Env) TracingEnabled() bool {
	return len(e.MissingTracingKeys()) == 0
}

// TracingPartial reports whether some, but not all, tracing keys are set.
func (e Env) TracingPartial() bool {
	n := len(e.MissingTracingKeys())
	return n > 0 && n < len(TracingKeys)
}

// MissingTracingKeys returns the names of unset tracing variables.
func (e Env) MissingTracingKeys() []string {
	var missing []string
	for _, kv := range []struct{ name, val string }{
		{EnvLangfusePublicKey, e.LangfusePublicKey},
		{EnvLangfuseSecretKey, e.LangfuseSecretKey},
		{EnvLangfuseHost, e.LangfuseHost},
	} {
		if kv.val == "" {
			missing = append(missing, kv.name)
		}
	}
	return missing
}
