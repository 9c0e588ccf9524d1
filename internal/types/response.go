package types

import (
	"encoding/json"
	"strings"
)

// FailureKind classifies why a completion attempt produced no usable text.
type FailureKind string

const (
	// FailureServiceError covers transport errors, rejected credentials,
	// rate limits, and responses with no usable choice. The pipeline does
	// not distinguish transient from permanent upstream failures.
	FailureServiceError FailureKind = "service_error"
)

// CompletionResult is the outcome of one completion call: exactly one
// successful text or exactly one failure kind, never both.
type CompletionResult struct {
	Text    string
	Failed  bool
	Kind    FailureKind
	wrapped error
}

// Success builds a successful result.
func Success(text string) CompletionResult {
	return CompletionResult{Text: text}
}

// Failure builds a failed result carrying the underlying error for logging.
func Failure(kind FailureKind, err error) CompletionResult {
	return CompletionResult{Failed: true, Kind: kind, wrapped: err}
}

// Cause returns the underlying error of a failed result, or nil.
func (r CompletionResult) Cause() error { return r.wrapped }

// RoutingPayload is the informally-specified shape the routing contract asks
// the model to emit. The pipeline never enforces it; DecodeRoutingPayload is
// a best-effort helper for callers that want the parse.
type RoutingPayload struct {
	Coordinates struct {
		From RoutePoint `json:"from"`
		To   RoutePoint `json:"to"`
	} `json:"coordinates"`
	Stops          map[string]RoutePoint `json:"stops"`
	TravelOptions  TravelOptions         `json:"travel_options"`
	TransportModes []string              `json:"transport_modes"`
	Date           string                `json:"date"`
	Time           string                `json:"time"`
	When           string                `json:"when"`
	Objective      string                `json:"objective"`
}

type RoutePoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type TravelOptions struct {
	MaxChanges   int `json:"max_changes"`
	WalkingSpeed int `json:"walking_speed"`
	MaxWalking   int `json:"max_walking"`
}

// DecodeRoutingPayload attempts to parse a completion reply as a routing
// payload. Models often wrap JSON in a markdown fence; that is stripped
// first. A parse failure is not a pipeline error.
func DecodeRoutingPayload(reply string) (*RoutingPayload, error) {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var p RoutingPayload
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return nil, err
	}
	return &p, nil
}
