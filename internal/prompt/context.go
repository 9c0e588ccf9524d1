package prompt

import (
	"time"

	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// DefaultOriginLabel is the assumed location embedded in routing prompts.
const DefaultOriginLabel = "New Zealand Wellington"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Clock supplies the time-varying values routing prompts embed. The zero
// value reads the system wall clock and uses DefaultOriginLabel.
type Clock struct {
	OriginLabel string

	// now overrides the wall-clock read in tests.
	now func() time.Time
}

// NewClock returns a Clock with the given origin label; an empty label falls
// back to DefaultOriginLabel.
func NewClock(originLabel string) *Clock {
	if originLabel == "" {
		originLabel = DefaultOriginLabel
	}
	return &Clock{OriginLabel: originLabel}
}

// Now captures the current date and time. It is recomputed per request and
// never cached; there is no failure mode.
func (c *Clock) Now() types.PromptContext {
	read := time.Now
	if c.now != nil {
		read = c.now
	}
	t := read()

	label := c.OriginLabel
	if label == "" {
		label = DefaultOriginLabel
	}

	return types.PromptContext{
		CurrentDate: t.Format(dateLayout),
		CurrentTime: t.Format(timeLayout),
		OriginLabel: label,
	}
}
