// Package cmd wires the agentmesh-judge CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/N-45div/Agentmesh/internal/config"
)

// Version is injected by the linker at release time.
var Version = "dev"

var (
	// Global flags. Empty values defer to config file and environment.
	flagProvider     string
	flagModel        string
	flagBaseURL      string
	flagAPIKey       string
	flagMaxTokens    int64
	flagFrameworkURL string
	flagLogLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "agentmesh-judge",
	Short: "LLM-as-a-judge for code quality evaluation",
	Long: `agentmesh-judge scores code or text output along five quality criteria
(code quality, security, performance, correctness, maintainability) and
prints a single normalized verdict as JSON.

Evaluation degrades gracefully: a specialized judge service is used when
configured, then a direct LLM API call when a credential is available, and
finally deterministic offline heuristics — one stable result contract
regardless of which tier answered.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Local overrides for development; missing .env is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider for the direct API tier: openai, anthropic")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "LLM model name (default: "+config.DefaultModel+")")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override LLM API base URL (default: "+config.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "override LLM API key")
	rootCmd.PersistentFlags().Int64Var(&flagMaxTokens, "max-tokens", 0, "max completion tokens (default: 1024)")
	rootCmd.PersistentFlags().StringVar(&flagFrameworkURL, "framework-url", "", "judge service URL for the framework tier")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "stderr log level: debug, info, warn, error")
}

// loadConfig resolves configuration once (file, env, then flags) and sets
// up stderr logging. All deeper logic receives the resolved value object.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagMaxTokens > 0 {
		cfg.MaxTokens = flagMaxTokens
	}
	if flagFrameworkURL != "" {
		cfg.FrameworkURL = flagFrameworkURL
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if cfg.Provider != "openai" && cfg.Provider != "anthropic" {
		return nil, fmt.Errorf("unknown provider %q (supported: openai, anthropic)", cfg.Provider)
	}

	setupLogging(cfg.LogLevel)
	return cfg, nil
}

// setupLogging routes zerolog to stderr so stdout stays reserved for the
// result object.
func setupLogging(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(parsed)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
