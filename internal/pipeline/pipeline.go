// Package pipeline wires the prompt-construction / response-dispatch flow:
// capture context, build the contract's prompt, invoke the completion
// service once, extract the reply. Each run is independent and synchronous;
// nothing is shared between requests except the stateless collaborators.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/af-corp/wayfinder-gateway/internal/extract"
	"github.com/af-corp/wayfinder-gateway/internal/prompt"
	"github.com/af-corp/wayfinder-gateway/internal/telemetry"
	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// Invoker sends a built prompt to the completion service.
type Invoker interface {
	Invoke(ctx context.Context, p types.BuiltPrompt) types.CompletionResult
}

type Pipeline struct {
	clock   *prompt.Clock
	invoker Invoker
	metrics *telemetry.Metrics
}

func New(clock *prompt.Clock, invoker Invoker, metrics *telemetry.Metrics) *Pipeline {
	return &Pipeline{
		clock:   clock,
		invoker: invoker,
		metrics: metrics,
	}
}

// Run executes one request end to end and returns the answer text. Callers
// must reject empty input before calling Run. On upstream failure the error
// is extract.ErrUpstreamFailed with the service detail wrapped inside.
func (p *Pipeline) Run(ctx context.Context, req types.Request) (string, error) {
	start := time.Now()

	promptCtx := p.clock.Now()
	built := prompt.Build(req.Input, req.Contract, promptCtx)

	result := p.invoker.Invoke(ctx, built)
	text, err := extract.Extract(result)

	durationMs := float64(time.Since(start).Milliseconds())
	if err != nil {
		slog.Error("pipeline request failed",
			"request_id", req.RequestID,
			"contract", string(req.Contract),
			"error", err,
			"duration_ms", durationMs,
		)
		if p.metrics != nil {
			p.metrics.RecordRequest(string(req.Contract), "upstream_failed", durationMs)
			p.metrics.RecordUpstreamFailure(string(result.Kind))
		}
		return "", err
	}

	slog.Info("pipeline request completed",
		"request_id", req.RequestID,
		"contract", string(req.Contract),
		"duration_ms", durationMs,
	)
	if p.metrics != nil {
		p.metrics.RecordRequest(string(req.Contract), "ok", durationMs)
	}
	return text, nil
}
