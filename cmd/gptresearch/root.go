package main

import (
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/gptresearch/internal/config"
	"github.com/davetashner/gptresearch/internal/llm"
	gptlog "github.com/davetashner/gptresearch/internal/log"
)

// Global flag values.
var (
	verbose    bool
	quiet      bool
	noColor    bool
	logFormat  string
	configPath string

	flagModel            string
	flagContextSize      string
	flagMaxRetries       int
	flagRequestTimeout   time.Duration
	flagURLCitationsOnly bool
)

// rootCmd is the base command for gptresearch.
var rootCmd = &cobra.Command{
	Use:   "gptresearch",
	Short: "Search-augmented research with cited sources",
	Long: `gptresearch answers research queries with a search-augmented language model
and appends the web sources it cited as a markdown list. It runs as an MCP
tool server, a small REST API, or a one-shot command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		if err := gptlog.Setup(verbose, quiet, logFormat); err != nil {
			return exitError(ExitFailure, "gptresearch: %v", err)
		}
		if err := config.LoadDotEnv(); err != nil {
			slog.Warn("could not load .env", "error", err)
		}
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringVar(&logFormat, "log-format", gptlog.FormatText, "log format: text or json")
	pf.StringVar(&configPath, "config", "", "config file (default ./"+config.FileName+")")

	pf.StringVar(&flagModel, "model", "", "model identifier (default "+llm.DefaultModel+")")
	pf.StringVar(&flagContextSize, "search-context-size", "", "web search context size: low, medium, or high")
	pf.IntVar(&flagMaxRetries, "max-retries", 0, "maximum retries for the completion service")
	pf.DurationVar(&flagRequestTimeout, "timeout", 0, "per-request timeout (e.g. 90s)")
	pf.BoolVar(&flagURLCitationsOnly, "url-citations-only", false, "only list url_citation annotations as sources")

	rootCmd.AddCommand(researchCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
