package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/af-corp/wayfinder-gateway/internal/httputil"
	"github.com/af-corp/wayfinder-gateway/internal/pipeline"
	"github.com/af-corp/wayfinder-gateway/internal/speech"
	"github.com/af-corp/wayfinder-gateway/internal/telemetry"
	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// maxAudioBytes caps a single utterance upload. The short-audio recognition
// endpoint rejects clips over 60 seconds anyway.
const maxAudioBytes = 10 << 20

// Recognizer performs one single-utterance recognition attempt. Satisfied
// by speech.Recognizer and its reloadable holder.
type Recognizer interface {
	RecognizeOnce(ctx context.Context, audio io.Reader, contentType string) types.SpeechOutcome
}

// Handler holds dependencies for the gateway HTTP handlers.
type Handler struct {
	pipe       *pipeline.Pipeline
	recognizer Recognizer
	metrics    *telemetry.Metrics
}

func NewHandler(pipe *pipeline.Pipeline, recognizer Recognizer, metrics *telemetry.Metrics) *Handler {
	return &Handler{
		pipe:       pipe,
		recognizer: recognizer,
		metrics:    metrics,
	}
}

// chatRequest is the inbound body for the chat and routing endpoints.
type chatRequest struct {
	Input string `json:"input"`
}

// chatResponse echoes the input alongside the answer, like the original
// page render did.
type chatResponse struct {
	Input string `json:"input"`
	Text  string `json:"text"`
}

// Chat handles POST /v1/chat — the free-text contract.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	h.runContract(w, r, types.ContractFreeText)
}

// Routing handles POST /v1/routing — the structured travel-routing contract.
// The reply is passed through without JSON validation.
func (h *Handler) Routing(w http.ResponseWriter, r *http.Request) {
	h.runContract(w, r, types.ContractRouting)
}

func (h *Handler) runContract(w http.ResponseWriter, r *http.Request, contract types.Contract) {
	reqID := w.Header().Get("X-Request-ID")

	input, ok := readInput(r)
	if !ok || strings.TrimSpace(input) == "" {
		httputil.WriteBadRequestError(w, reqID, "No input provided")
		return
	}

	req := types.Request{
		RequestID:  reqID,
		Input:      input,
		Contract:   contract,
		ReceivedAt: time.Now(),
	}

	text, err := h.pipe.Run(r.Context(), req)
	if err != nil {
		httputil.WriteUpstreamError(w, reqID, "Completion service request failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chatResponse{Input: input, Text: text})
}

// readInput accepts either a JSON body {"input": ...} or a form field named
// input, for compatibility with the original form-posting page.
func readInput(r *http.Request) (string, bool) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", false
		}
		return req.Input, true
	}
	if err := r.ParseForm(); err != nil {
		return "", false
	}
	return r.PostFormValue("input"), true
}

// speechResponse carries the flattened transcript-or-diagnostic text plus
// the tagged outcome for callers that want to tell them apart.
type speechResponse struct {
	Text    string                  `json:"text"`
	Outcome types.SpeechOutcomeKind `json:"outcome"`
}

// SpeechToText handles POST /v1/speech-to-text. The request body is one WAV
// utterance; exactly one recognition attempt is made.
func (h *Handler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	reqID := w.Header().Get("X-Request-ID")

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBytes)
	audio, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.WritePayloadTooLargeError(w, reqID, "Audio body exceeds the single-utterance limit")
			return
		}
		httputil.WriteBadRequestError(w, reqID, "Failed to read audio body")
		return
	}
	defer r.Body.Close()
	if len(audio) == 0 {
		httputil.WriteBadRequestError(w, reqID, "No audio provided")
		return
	}

	outcome := h.recognizer.RecognizeOnce(r.Context(), bytes.NewReader(audio), r.Header.Get("Content-Type"))

	slog.Info("speech recognition completed",
		"request_id", reqID,
		"outcome", string(outcome.Kind),
		"audio_bytes", len(audio),
	)
	if h.metrics != nil {
		h.metrics.RecordSpeechOutcome(string(outcome.Kind))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(speechResponse{
		Text:    speech.Flatten(outcome),
		Outcome: outcome.Kind,
	})
}
