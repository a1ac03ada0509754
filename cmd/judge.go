package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/N-45div/Agentmesh/internal/judge"
	"github.com/N-45div/Agentmesh/internal/model"
	"github.com/N-45div/Agentmesh/internal/otel"
	"github.com/N-45div/Agentmesh/internal/render"
)

var (
	flagContent  string
	flagFile     string
	flagCriteria string
	flagContext  string
	flagPretty   bool
)

var judgeCmd = &cobra.Command{
	Use:   "judge [content]",
	Short: "Score code or text against the quality rubric",
	Long: `Evaluate a piece of code or text and print one EvaluationResult JSON
object with scores for code quality, security, performance, correctness,
and maintainability.

Content is taken from the positional argument, --content, or --file
(use "-" to read stdin). Exactly one source must be given; empty content
is accepted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		content, err := resolveContent(args)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		otel.Version = Version
		telemetry, err := otel.Init(ctx, otel.Config{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		if err != nil {
			// Telemetry is best-effort; a bad endpoint must not block
			// the verdict.
			log.Warn().Err(err).Msg("telemetry disabled")
			telemetry = nil
		} else {
			defer telemetry.Shutdown(ctx)
		}

		opts := []judge.Option{}
		if telemetry != nil {
			opts = append(opts, judge.WithMetrics(telemetry.Metrics))
		}

		j := judge.New(cfg, opts...)
		result := j.Evaluate(ctx, model.NewEvaluationRequest(content, flagCriteria, flagContext))

		if flagPretty {
			fmt.Fprint(os.Stdout, render.Result(result))
			return nil
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

// resolveContent picks the content source: positional argument, --content
// flag, or --file ("-" reads stdin).
func resolveContent(args []string) (string, error) {
	sources := 0
	if len(args) == 1 {
		sources++
	}
	if flagContent != "" {
		sources++
	}
	if flagFile != "" {
		sources++
	}
	if sources > 1 {
		return "", fmt.Errorf("content given more than once; use a positional argument, --content, or --file")
	}

	switch {
	case flagFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case flagFile != "":
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", flagFile, err)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return flagContent, nil
	}
}

func init() {
	judgeCmd.Flags().StringVar(&flagContent, "content", "", "content to evaluate")
	judgeCmd.Flags().StringVar(&flagFile, "file", "", "read content from a file (\"-\" for stdin)")
	judgeCmd.Flags().StringVar(&flagCriteria, "criteria", model.DefaultCriteria, "evaluation criteria selector")
	judgeCmd.Flags().StringVar(&flagContext, "context", "", "free-text description of the evaluation situation")
	judgeCmd.Flags().BoolVar(&flagPretty, "pretty", false, "render a human-readable summary instead of JSON")

	rootCmd.AddCommand(judgeCmd)
}
