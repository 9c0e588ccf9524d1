package speech

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// Reloadable holds the active Recognizer behind an atomic pointer so a
// config reload can install a fresh recognizer while requests are in
// flight. Calls already running finish on the recognizer they loaded.
type Reloadable struct {
	current atomic.Pointer[Recognizer]
}

func NewReloadable(r *Recognizer) *Reloadable {
	h := &Reloadable{}
	h.current.Store(r)
	return h
}

// Swap installs a new recognizer for subsequent calls.
func (h *Reloadable) Swap(r *Recognizer) {
	h.current.Store(r)
}

// RecognizeOnce forwards to the currently installed recognizer.
func (h *Reloadable) RecognizeOnce(ctx context.Context, audio io.Reader, contentType string) types.SpeechOutcome {
	return h.current.Load().RecognizeOnce(ctx, audio, contentType)
}
