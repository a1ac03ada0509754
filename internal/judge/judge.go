// Package judge orchestrates the tiered evaluation pipeline: specialized
// judge framework, direct LLM API, deterministic heuristics. Tiers degrade
// only on capability or credential absence; a configured tier that fails is
// surfaced as a hard failure.
package judge

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/N-45div/Agentmesh/internal/config"
	"github.com/N-45div/Agentmesh/internal/evaluator"
	"github.com/N-45div/Agentmesh/internal/model"
	"github.com/N-45div/Agentmesh/internal/otel"
)

// Judge is the evaluation orchestrator. Construct with New; the framework
// availability is probed once at construction and never re-checked.
type Judge struct {
	cfg          *config.Config
	framework    Framework
	availability Availability
	probeErr     error
	metrics      *otel.Metrics

	// newEvaluator is swappable in tests; defaults to the provider switch.
	newEvaluator func(cfg *config.Config) evaluator.Evaluator
}

// Option customizes a Judge.
type Option func(*Judge)

// WithFramework injects a judge framework and marks it available. Used by
// tests and by embedders that bring their own capability.
func WithFramework(f Framework) Option {
	return func(j *Judge) {
		j.framework = f
		j.availability = Available
	}
}

// WithMetrics attaches metric instruments for per-tier counters.
func WithMetrics(m *otel.Metrics) Option {
	return func(j *Judge) {
		j.metrics = m
	}
}

// New builds a Judge. A configured framework URL wires the HTTP framework
// client; a URL that cannot be parsed marks the capability Broken rather
// than silently degrading.
func New(cfg *config.Config, opts ...Option) *Judge {
	j := &Judge{
		cfg:          cfg,
		availability: Unconfigured,
		newEvaluator: newProviderEvaluator,
	}

	if cfg.FrameworkURL != "" {
		fw, err := NewHTTPFramework(cfg.FrameworkURL)
		if err != nil {
			j.availability = Broken
			j.probeErr = err
		} else {
			j.framework = fw
			j.availability = Available
		}
	}

	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Evaluate runs the request through the tier chain and returns exactly one
// result. It never panics outward: unexpected failures surface as
// {success: false, error}.
func (j *Judge) Evaluate(ctx context.Context, req model.EvaluationRequest) (result model.EvaluationResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("evaluation panicked")
			result = model.ErrorResult(fmt.Sprintf("unexpected failure: %v", r))
		}
	}()

	if req.Criteria == "" {
		req.Criteria = model.DefaultCriteria
	}
	if req.Context == "" {
		req.Context = model.DefaultContext
	}

	switch j.availability {
	case Available:
		return j.evaluateWithFramework(ctx, req)
	case Broken:
		j.record(ctx, "error")
		return model.ErrorResult(j.probeErr.Error())
	}

	// Framework tier unconfigured: degrade, not an error.
	log.Debug().Msg("judge framework unconfigured, using direct API tier")
	return j.evaluateViaAPI(ctx, req)
}

// evaluateWithFramework delegates to the specialized judge capability.
// Failures here are hard: the capability was configured, so a broken call
// must reach the caller instead of a weaker tier's verdict.
func (j *Judge) evaluateWithFramework(ctx context.Context, req model.EvaluationRequest) model.EvaluationResult {
	outputs, err := j.framework.Judge(ctx, []Sample{{Context: req.Context, Content: req.Content}})
	if err != nil {
		log.Error().Err(err).Msg("judge framework call failed")
		j.record(ctx, "error")
		return model.ErrorResult(err.Error())
	}
	if len(outputs) == 0 {
		j.record(ctx, "error")
		return model.ErrorResult("No output from judge")
	}

	log.Info().Str("tier", "framework").Msg("evaluation complete")
	j.record(ctx, "framework")
	return adaptOutput(outputs[0])
}

// evaluateViaAPI runs the direct API tier, degrading to heuristics when no
// credential was ever configured.
func (j *Judge) evaluateViaAPI(ctx context.Context, req model.EvaluationRequest) model.EvaluationResult {
	if j.cfg.APIKey == "" {
		// Designed degradation path: nothing was configured, so the
		// offline engine is the verdict of record.
		log.Debug().Msg("no API credential configured, using heuristic tier")
		j.record(ctx, "heuristic")
		return evaluator.Heuristic(req.Content)
	}

	eval := j.newEvaluator(j.cfg)
	result, err := eval.Evaluate(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("provider", eval.Provider()).Msg("API evaluation failed")
		j.record(ctx, "error")
		return model.ErrorResult(err.Error())
	}

	log.Info().Str("tier", "api").Str("provider", eval.Provider()).Str("model", eval.Model()).Msg("evaluation complete")
	j.record(ctx, "api")
	if result.Usage != nil {
		j.metrics.RecordTokens(ctx, eval.Provider(), eval.Model(), result.Usage.InputTokens, result.Usage.OutputTokens)
	}
	return result
}

func (j *Judge) record(ctx context.Context, tier string) {
	j.metrics.RecordEvaluation(ctx, tier)
}

// newProviderEvaluator builds the direct API evaluator for the configured
// provider. Config validation has already rejected unknown providers.
func newProviderEvaluator(cfg *config.Config) evaluator.Evaluator {
	if cfg.Provider == "anthropic" {
		return evaluator.NewAnthropicEvaluator(evaluator.AnthropicConfig{
			BaseURL:     cfg.BaseURL,
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: cfg.Temperature,
		})
	}
	return evaluator.NewOpenAIEvaluator(evaluator.OpenAIConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
}
