package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyConfig(t *testing.T) {
	require.NoError(t, Validate(&Config{}))
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{Model: "gpt-5.1", SearchContextSize: "high", MaxRetries: intPtr(3), RequestTimeout: Duration(1)}
	require.NoError(t, Validate(cfg))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want string
	}{
		{"context size", &Config{SearchContextSize: "huge"}, "search_context_size"},
		{"model whitespace", &Config{Model: " gpt "}, "model"},
		{"negative retries", &Config{MaxRetries: intPtr(-1)}, "max_retries"},
		{"too many retries", &Config{MaxRetries: intPtr(11)}, "max_retries"},
		{"negative timeout", &Config{RequestTimeout: Duration(-1)}, "request_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	err := Validate(&Config{SearchContextSize: "x", MaxRetries: intPtr(-2)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_context_size")
	assert.Contains(t, err.Error(), "max_retries")
}
