// Package config handles gptresearch configuration: the optional
// .gptresearch.yaml / .gptresearch.toml files and the environment snapshot
// taken at startup.
package config

import "time"

// Config represents the contents of a gptresearch config file.
type Config struct {
	Model             string   `yaml:"model,omitempty" toml:"model,omitempty"`
	SearchContextSize string   `yaml:"search_context_size,omitempty" toml:"search_context_size,omitempty"`
	MaxRetries        *int     `yaml:"max_retries,omitempty" toml:"max_retries,omitempty"`
	RequestTimeout    Duration `yaml:"request_timeout,omitempty" toml:"request_timeout,omitempty"`
	URLCitationsOnly  *bool    `yaml:"url_citations_only,omitempty" toml:"url_citations_only,omitempty"`
	HTTPAddr          string   `yaml:"http_addr,omitempty" toml:"http_addr,omitempty"`
}

// File names looked up in the working directory, in order.
const (
	FileName     = ".gptresearch.yaml"
	TOMLFileName = ".gptresearch.toml"
)

// Duration is a time.Duration that reads and writes as a string like "90s".
type Duration time.Duration

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// IsZero lets yaml's omitempty skip unset durations.
func (d Duration) IsZero() bool { return d == 0 }

func (d Duration) String() string { return time.Duration(d).String() }
