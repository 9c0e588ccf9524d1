package extract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/af-corp/wayfinder-gateway/internal/types"
)

func TestExtract_TrimsSuccess(t *testing.T) {
	text, err := Extract(types.Success("  hello  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello" {
		t.Errorf("expected %q, got %q", "hello", text)
	}
}

func TestExtract_PreservesInternalWhitespace(t *testing.T) {
	text, err := Extract(types.Success("  hello   world  "))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello   world" {
		t.Errorf("internal whitespace must be preserved, got %q", text)
	}
}

func TestExtract_FailureMapsToUpstreamFailed(t *testing.T) {
	cases := []error{
		fmt.Errorf("dial tcp: connection refused"),
		fmt.Errorf("completion service returned status 401"),
		fmt.Errorf("completion response has no choices"),
		nil,
	}
	for _, cause := range cases {
		_, err := Extract(types.Failure(types.FailureServiceError, cause))
		if !errors.Is(err, ErrUpstreamFailed) {
			t.Errorf("cause %v: expected ErrUpstreamFailed, got %v", cause, err)
		}
	}
}

func TestExtract_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("status 503")
	_, err := Extract(types.Failure(types.FailureServiceError, cause))
	if !errors.Is(err, ErrUpstreamFailed) {
		t.Fatalf("expected ErrUpstreamFailed, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected the service detail to stay wrapped for logging")
	}
}
