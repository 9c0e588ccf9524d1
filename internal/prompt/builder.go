package prompt

import (
	"fmt"

	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// DefaultSampling is the generation configuration sent with every completion
// request, for both contracts.
var DefaultSampling = types.SamplingConfig{
	MaxTokens:        800,
	Temperature:      0.7,
	TopP:             0.95,
	FrequencyPenalty: 0,
	PresencePenalty:  0,
	Stop:             nil,
}

// routingTemplate wraps the user message with the assumed location, the
// coordinate-naming instruction, and an example payload the model is asked
// to imitate. The example is prescriptive text inside the prompt, not a
// schema enforced on the output. Placeholder order: origin label, user
// message, current date, current time.
const routingTemplate = `I am currently in %s, based on this message %s ` +
	`determine the coordinates of the origin and destination coordinates response in similar format name - coordinates ` +
	`along that create a json payload that looks similar to this, use the estimated coordinates` +
	`{"coordinates":{"from":{"name":"OriginPoint","lat":-41.261279,"lng":174.790819},"to":{"name":"DestinationPoint","lat":-41.290922,"lng":174.776472}},` +
	`"stops":{},"travel_options":{"max_changes":2,"walking_speed":4,"max_walking":2000},` +
	`"transport_modes":["Bus","Train","Ferry","Cable Car"],"date":"%s","time":"%s","when":"LeaveAfter","objective":"MostTimely"}`

// Build produces the exact prompt for the given contract. Pure string
// construction, no failure mode. Callers reject empty input before this
// point; Build does not re-validate.
func Build(input string, contract types.Contract, ctx types.PromptContext) types.BuiltPrompt {
	text := input
	if contract == types.ContractRouting {
		text = fmt.Sprintf(routingTemplate, ctx.OriginLabel, input, ctx.CurrentDate, ctx.CurrentTime)
	}
	return types.BuiltPrompt{
		Text:     text,
		Sampling: DefaultSampling,
	}
}
