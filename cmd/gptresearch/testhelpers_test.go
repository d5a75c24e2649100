// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/gptresearch/internal/config"
	"github.com/davetashner/gptresearch/internal/llm"
	"github.com/davetashner/gptresearch/internal/redact"
)

// newTestCmd redirects rootCmd's I/O and returns it with the buffers.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag on every command to its default, since
// rootCmd is shared across tests.
func resetFlags(t *testing.T) {
	t.Helper()
	var walk func(*cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
	color.NoColor = true
}

// isolate runs the test in an empty working directory with no global config
// and no credentials inherited from the developer's shell.
func isolate(t *testing.T) string {
	t.Helper()
	resetFlags(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{
		config.EnvOpenAIAPIKey, config.EnvOpenAIBaseURL,
		config.EnvLangfusePublicKey, config.EnvLangfuseSecretKey, config.EnvLangfuseHost,
		config.EnvServerAPIKey,
	} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
	redact.ResetForTest()
	t.Cleanup(redact.ResetForTest)
	return dir
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// echoProvider answers every request with its input, so results can be
// matched to queries regardless of scheduling.
type echoProvider struct {
	mu    sync.Mutex
	calls []llm.Request
}

func (p *echoProvider) Create(_ context.Context, req llm.Request) (*llm.Response, error) {
	p.mu.Lock()
	p.calls = append(p.calls, req)
	p.mu.Unlock()
	return &llm.Response{OutputText: "answer: " + req.Input}, nil
}

func (p *echoProvider) Calls() []llm.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]llm.Request(nil), p.calls...)
}

// withProvider swaps selectProvider so commands use p instead of a real
// client.
func withProvider(t *testing.T, p llm.Provider) {
	t.Helper()
	orig := selectProvider
	selectProvider = func(context.Context, config.Env, string, ...llm.OpenAIOption) (*llm.Selection, error) {
		return &llm.Selection{Provider: p}, nil
	}
	t.Cleanup(func() { selectProvider = orig })
}
