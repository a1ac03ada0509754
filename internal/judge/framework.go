package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/N-45div/Agentmesh/internal/model"
)

// Availability classifies the specialized judge capability.
//
// Only Unconfigured triggers degradation to the next tier. A capability that
// was configured but cannot work (Broken) is surfaced as a hard failure, so
// genuine integration bugs are never masked by a weaker tier.
type Availability int

const (
	// Unconfigured means no judge framework was ever set up.
	Unconfigured Availability = iota
	// Available means a framework is wired and should be used.
	Available
	// Broken means a framework was configured but cannot be used.
	Broken
)

// String returns the availability name for logs.
func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Broken:
		return "broken"
	default:
		return "unconfigured"
	}
}

// Sample is one dataset entry handed to the framework.
type Sample struct {
	Context string `json:"context"`
	Content string `json:"content"`
}

// Output is one loosely-typed framework result. FieldValues carries the raw
// JSON object; adaptOutput pulls individual fields with defaults.
type Output struct {
	FieldValues json.RawMessage `json:"field_values"`
}

// Framework is the opaque specialized judge capability: it takes a dataset
// of samples and returns one output per sample.
type Framework interface {
	Judge(ctx context.Context, dataset []Sample) ([]Output, error)
}

// adaptOutput maps a framework output onto the result contract, applying a
// default for every missing field: overall_score 7, empty criteria map,
// empty feedback/recommendation lists, empty explanation.
func adaptOutput(out Output) model.EvaluationResult {
	res := model.EvaluationResult{
		Success:         true,
		OverallScore:    7,
		CriteriaScores:  model.CriteriaScores{},
		Feedback:        []string{},
		Recommendations: []string{},
	}

	fv := gjson.ParseBytes(out.FieldValues)
	if v := fv.Get("overall_score"); v.Exists() {
		res.OverallScore = int(v.Int())
	}
	fv.Get("criteria_scores").ForEach(func(key, value gjson.Result) bool {
		res.CriteriaScores[key.String()] = int(value.Int())
		return true
	})
	for _, entry := range fv.Get("feedback").Array() {
		res.Feedback = append(res.Feedback, entry.String())
	}
	for _, entry := range fv.Get("recommendations").Array() {
		res.Recommendations = append(res.Recommendations, entry.String())
	}
	res.Explanation = fv.Get("explanation").String()

	return res
}

// HTTPFramework talks to a remote judge service: the dataset is posted as
// JSON and the service answers with one output object per sample.
type HTTPFramework struct {
	client *resty.Client
	url    string
}

// NewHTTPFramework builds a framework client for the given service URL.
func NewHTTPFramework(serviceURL string) (*HTTPFramework, error) {
	u, err := url.Parse(serviceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid judge service URL %q", serviceURL)
	}

	client := resty.New().
		SetTimeout(60 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &HTTPFramework{client: client, url: serviceURL}, nil
}

// Judge posts the dataset to the service and decodes its outputs.
func (f *HTTPFramework) Judge(ctx context.Context, dataset []Sample) ([]Output, error) {
	var outputs []Output

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(map[string]any{"dataset": dataset}).
		SetResult(&outputs).
		Post(f.url)
	if err != nil {
		return nil, fmt.Errorf("judge service request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("judge service returned %s", resp.Status())
	}

	return outputs, nil
}
