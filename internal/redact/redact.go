// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

// Package redact strips credential values from strings before they appear
// in output, logs, or error messages.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output.
var sensitiveEnvVars = []string{
	"OPENAI_API_KEY",
	"LANGFUSE_SECRET_KEY",
	"LANGFUSE_PUBLIC_KEY",
	"GPTRESEARCH_API_KEY",
}

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// minSecretLen avoids redacting short values that would match ordinary text.
const minSecretLen = 4

var (
	cachedSecrets []string
	cacheOnce     sync.Once
)

func loadSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if len(val) >= minSecretLen {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
}

// ResetForTest drops the cached secrets so tests can change the environment
// with t.Setenv between calls.
func ResetForTest() {
	cachedSecrets = nil
	cacheOnce = sync.Once{}
}

// String replaces every occurrence of a known secret with Placeholder.
// Secrets are read from the environment on first use and cached.
func String(s string) string {
	cacheOnce.Do(loadSecrets)
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, Placeholder)
	}
	return s
}

// Error is String applied to err.Error(). A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
