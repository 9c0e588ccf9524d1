package completion

import (
	"context"
	"sync/atomic"

	"github.com/af-corp/wayfinder-gateway/internal/types"
)

// Reloadable holds the active Client behind an atomic pointer so a config
// reload can install a fresh client while requests are in flight. Calls
// already running finish on the client they loaded.
type Reloadable struct {
	current atomic.Pointer[Client]
}

func NewReloadable(c *Client) *Reloadable {
	r := &Reloadable{}
	r.current.Store(c)
	return r
}

// Swap installs a new client for subsequent calls.
func (r *Reloadable) Swap(c *Client) {
	r.current.Store(c)
}

// Invoke forwards to the currently installed client.
func (r *Reloadable) Invoke(ctx context.Context, p types.BuiltPrompt) types.CompletionResult {
	return r.current.Load().Invoke(ctx, p)
}
