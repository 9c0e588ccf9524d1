package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/af-corp/wayfinder-gateway/internal/extract"
	"github.com/af-corp/wayfinder-gateway/internal/prompt"
	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// stubInvoker records the prompt it was given and replies with a canned
// result.
type stubInvoker struct {
	gotPrompt types.BuiltPrompt
	result    types.CompletionResult
}

func (s *stubInvoker) Invoke(_ context.Context, p types.BuiltPrompt) types.CompletionResult {
	s.gotPrompt = p
	return s.result
}

func TestRun_FreeTextScenario(t *testing.T) {
	stub := &stubInvoker{result: types.Success(" Paris. ")}
	p := New(prompt.NewClock(""), stub, nil)

	text, err := p.Run(context.Background(), types.Request{
		RequestID:  "req_1",
		Input:      "What is the capital of France?",
		Contract:   types.ContractFreeText,
		ReceivedAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Paris." {
		t.Errorf("expected %q, got %q", "Paris.", text)
	}
	if stub.gotPrompt.Text != "What is the capital of France?" {
		t.Errorf("free-text prompt must equal the input, got %q", stub.gotPrompt.Text)
	}
	if stub.gotPrompt.Sampling.MaxTokens != 800 {
		t.Errorf("sampling config not forwarded, got %+v", stub.gotPrompt.Sampling)
	}
}

func TestRun_RoutingPassesReplyThrough(t *testing.T) {
	reply := `{"coordinates":{"from":{"name":"OriginPoint"` // deliberately truncated, malformed JSON
	stub := &stubInvoker{result: types.Success(reply)}
	p := New(prompt.NewClock(""), stub, nil)

	text, err := p.Run(context.Background(), types.Request{
		RequestID: "req_2",
		Input:     "get me from the station to the museum",
		Contract:  types.ContractRouting,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != reply {
		t.Error("routing replies must be passed through without validation")
	}
	if !strings.Contains(stub.gotPrompt.Text, "get me from the station to the museum") {
		t.Error("routing prompt must embed the user input verbatim")
	}
	if !strings.Contains(stub.gotPrompt.Text, "Cable Car") {
		t.Error("routing prompt must carry the fixed transport-mode vocabulary")
	}
}

func TestRun_UpstreamFailure(t *testing.T) {
	stub := &stubInvoker{result: types.Failure(types.FailureServiceError, errors.New("dial tcp: refused"))}
	p := New(prompt.NewClock(""), stub, nil)

	_, err := p.Run(context.Background(), types.Request{
		RequestID: "req_3",
		Input:     "hello",
		Contract:  types.ContractFreeText,
	})
	if !errors.Is(err, extract.ErrUpstreamFailed) {
		t.Errorf("expected ErrUpstreamFailed, got %v", err)
	}
}
