package types

import "time"

// Contract selects the output shape a request must satisfy: free-form chat
// text or the structured travel-routing payload.
type Contract string

const (
	ContractFreeText Contract = "free_text"
	ContractRouting  Contract = "routing"
)

// Valid reports whether c is one of the known contracts.
func (c Contract) Valid() bool {
	return c == ContractFreeText || c == ContractRouting
}

// Request is the canonical internal representation of one inbound call.
// Created per call, never persisted.
type Request struct {
	RequestID string   `json:"request_id"`
	Input     string   `json:"input"`
	Contract  Contract `json:"contract"`

	ReceivedAt time.Time `json:"-"`
}

// PromptContext carries the time-varying values the routing template embeds.
// Recomputed per request so the wall clock is captured at call time.
type PromptContext struct {
	CurrentDate string // 2006-01-02
	CurrentTime string // 15:04
	OriginLabel string
}

// SamplingConfig is the generation parameter set sent with every completion
// request. It is a fixed constant, independent of the contract.
type SamplingConfig struct {
	MaxTokens        int      `json:"max_tokens"`
	Temperature      float64  `json:"temperature"`
	TopP             float64  `json:"top_p"`
	FrequencyPenalty float64  `json:"frequency_penalty"`
	PresencePenalty  float64  `json:"presence_penalty"`
	Stop             []string `json:"stop,omitempty"`
}

// BuiltPrompt is the exact text handed to the completion service plus its
// sampling parameters.
type BuiltPrompt struct {
	Text     string
	Sampling SamplingConfig
}

// Message is one chat message in the completion wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
