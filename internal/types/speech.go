package types

// SpeechOutcomeKind tags the result of one recognition attempt.
type SpeechOutcomeKind string

const (
	SpeechRecognized SpeechOutcomeKind = "recognized"
	SpeechNoMatch    SpeechOutcomeKind = "no_match"
	SpeechCanceled   SpeechOutcomeKind = "canceled"
)

// SpeechOutcome is the tagged result of a single-utterance recognition call.
// Text is set only for Recognized; Reason only for Canceled.
type SpeechOutcome struct {
	Kind   SpeechOutcomeKind `json:"kind"`
	Text   string            `json:"text,omitempty"`
	Reason string            `json:"reason,omitempty"`
}
