// Package speech performs single-utterance speech recognition against the
// Azure Speech short-audio REST endpoint. One blocking attempt per call, no
// continuous or streaming mode; the adapter is terminal after one result and
// never retries on its own.
package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/af-corp/wayfinder-gateway/internal/config"
	"github.com/af-corp/wayfinder-gateway/internal/types"
)

const defaultContentType = "audio/wav; codecs=audio/pcm; samplerate=16000"

// Recognizer calls the recognition service. It holds no session state
// between calls.
type Recognizer struct {
	cfg    config.SpeechConfig
	client *http.Client
}

func NewRecognizer(cfg config.SpeechConfig, httpClient *http.Client) *Recognizer {
	return &Recognizer{cfg: cfg, client: httpClient}
}

// FromConfig builds a Recognizer with its own HTTP client using the
// configured per-call timeout.
func FromConfig(cfg config.SpeechConfig) *Recognizer {
	return NewRecognizer(cfg, &http.Client{Timeout: cfg.Timeout})
}

// RecognizeOnce submits one utterance and maps the service reply onto the
// three possible outcomes. Transport and service errors surface as a
// Canceled outcome rather than an error value, mirroring how the speech
// SDK reports cancellation details.
func (r *Recognizer) RecognizeOnce(ctx context.Context, audio io.Reader, contentType string) types.SpeechOutcome {
	if contentType == "" {
		contentType = defaultContentType
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint(), audio)
	if err != nil {
		return canceled(fmt.Sprintf("Error (%v)", err))
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Ocp-Apim-Subscription-Key", r.cfg.SubscriptionKey)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return canceled(fmt.Sprintf("Error (%v)", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return canceled(fmt.Sprintf("Error (%v)", err))
	}
	if resp.StatusCode != http.StatusOK {
		return canceled(fmt.Sprintf("Error (status %d)", resp.StatusCode))
	}

	var result recognitionResult
	if err := json.Unmarshal(body, &result); err != nil {
		return canceled(fmt.Sprintf("Error (%v)", err))
	}

	switch result.RecognitionStatus {
	case "Success":
		return types.SpeechOutcome{Kind: types.SpeechRecognized, Text: result.DisplayText}
	case "NoMatch", "InitialSilenceTimeout", "BabbleTimeout":
		return types.SpeechOutcome{Kind: types.SpeechNoMatch}
	default:
		return canceled(fmt.Sprintf("Error (%s)", result.RecognitionStatus))
	}
}

func (r *Recognizer) endpoint() string {
	if r.cfg.Endpoint != "" {
		return r.cfg.Endpoint
	}
	language := r.cfg.Language
	if language == "" {
		language = "en-US"
	}
	return fmt.Sprintf(
		"https://%s.stt.speech.microsoft.com/speech/recognition/conversation/cognitiveservices/v1?language=%s",
		r.cfg.Region, language,
	)
}

func canceled(reason string) types.SpeechOutcome {
	return types.SpeechOutcome{Kind: types.SpeechCanceled, Reason: reason}
}

// recognitionResult is the short-audio endpoint's simple-format reply.
type recognitionResult struct {
	RecognitionStatus string `json:"RecognitionStatus"`
	DisplayText       string `json:"DisplayText"`
	Offset            int64  `json:"Offset"`
	Duration          int64  `json:"Duration"`
}

const noMatchText = "No speech could be recognized."

// Flatten merges an outcome into the text channel the way typed input
// arrives: a transcript for Recognized, a fixed diagnostic for NoMatch, and
// a diagnostic embedding the reason for Canceled. The pipeline cannot tell
// diagnostic text from genuine user content; callers that care should
// inspect the tagged outcome instead.
func Flatten(outcome types.SpeechOutcome) string {
	switch outcome.Kind {
	case types.SpeechRecognized:
		return outcome.Text
	case types.SpeechNoMatch:
		return noMatchText
	case types.SpeechCanceled:
		return "Speech Recognition canceled: " + outcome.Reason
	default:
		return noMatchText
	}
}
