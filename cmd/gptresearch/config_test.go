package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow_MergesLayers(t *testing.T) {
	dir := isolate(t)
	writeTestFile(t, dir, "xdg/gptresearch/config.yaml", "model: global-model\nmax_retries: 4\n")
	writeTestFile(t, dir, ".gptresearch.yaml", "model: local-model\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show", "--search-context-size", "high"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "model: local-model")
	assert.Contains(t, out, "max_retries: 4")
	assert.Contains(t, out, "search_context_size: high")
	assert.NotContains(t, out, "global-model")
}

func TestConfigShow_ExplicitTOMLFile(t *testing.T) {
	dir := isolate(t)
	writeTestFile(t, dir, "custom.toml", "model = \"toml-model\"\nrequest_timeout = \"90s\"\n")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show", "--config", "custom.toml"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "model: toml-model")
	assert.Contains(t, stdout.String(), "request_timeout: 1m30s")
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	dir := isolate(t)
	writeTestFile(t, dir, ".gptresearch.yaml", "max_retries: 99\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "show"})
	err := cmd.Execute()

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitStartupFailure, ece.ExitCode())
}

func TestConfigEnv_NeverPrintsValues(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-very-secret")
	t.Setenv("LANGFUSE_PUBLIC_KEY", "pk")
	t.Setenv("LANGFUSE_SECRET_KEY", "sk")
	t.Setenv("LANGFUSE_HOST", "https://cloud.langfuse.com")

	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "env"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.NotContains(t, out, "sk-very-secret")
	assert.Regexp(t, `OPENAI_API_KEY\s+set`, out)
	assert.Regexp(t, `GPTRESEARCH_API_KEY\s+unset`, out)
	assert.Contains(t, out, "tracing: enabled")
}

func TestConfigPath(t *testing.T) {
	isolate(t)
	cmd, stdout, _ := newTestCmd()
	cmd.SetArgs([]string{"config", "path"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "gptresearch/config.yaml")
}
