package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/davetashner/gptresearch/internal/config"
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect gptresearch configuration",
	Long: `Inspect gptresearch configuration.

gptresearch reads .gptresearch.yaml (or .gptresearch.toml) from the current
directory. A global config at ~/.config/gptresearch/config.yaml provides
defaults. Command-line flags override both.`,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(flagConfig(cmd.Flags()))
		if err != nil {
			return exitError(ExitStartupFailure, "gptresearch: config: %v", err)
		}
		return config.Write(cmd.OutOrStdout(), cfg)
	},
}

// configEnvCmd reports which environment variables are set, never their values.
var configEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Show which credentials and tracing keys are set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env := config.LoadEnv()
		w := cmd.OutOrStdout()
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)

		status := func(v string) string {
			if v == "" {
				return red.Sprint("unset")
			}
			return green.Sprint("set")
		}

		rows := []struct{ name, value string }{
			{config.EnvOpenAIAPIKey, env.OpenAIAPIKey},
			{config.EnvOpenAIBaseURL, env.OpenAIBaseURL},
			{config.EnvLangfusePublicKey, env.LangfusePublicKey},
			{config.EnvLangfuseSecretKey, env.LangfuseSecretKey},
			{config.EnvLangfuseHost, env.LangfuseHost},
			{config.EnvServerAPIKey, env.ServerAPIKey},
		}
		for _, r := range rows {
			_, _ = fmt.Fprintf(w, "%-22s %s\n", r.name, status(r.value))
		}

		tracing := "disabled"
		if env.TracingEnabled() {
			tracing = "enabled"
		}
		_, _ = fmt.Fprintf(w, "\ntracing: %s\n", tracing)
		return nil
	},
}

// configPathCmd prints the global config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the global config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.GlobalConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configEnvCmd)
	configCmd.AddCommand(configPathCmd)
}
