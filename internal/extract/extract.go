// Package extract turns a raw completion result into the single textual
// answer handed back to the caller. The contract chosen at prompt-build time
// does not change extraction: routing replies are passed through as opaque
// text, never parsed or validated.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// ErrUpstreamFailed is returned when the completion service was unreachable,
// rejected the request, or produced no usable content. The underlying
// service error detail is wrapped for logging but the kind never varies.
var ErrUpstreamFailed = errors.New("upstream completion failed")

// Extract returns the trimmed answer text for a successful result, or
// ErrUpstreamFailed for a failed one.
func Extract(result types.CompletionResult) (string, error) {
	if result.Failed {
		if cause := result.Cause(); cause != nil {
			return "", fmt.Errorf("%w: %w", ErrUpstreamFailed, cause)
		}
		return "", ErrUpstreamFailed
	}
	return strings.TrimSpace(result.Text), nil
}
