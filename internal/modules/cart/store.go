package cart

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Store persists carts across requests, keyed by session. A cart survives
// reloads and restarts but belongs to exactly one session; nothing here is
// shared across devices.
type Store interface {
	// Load returns the persisted cart, or an empty cart when nothing is
	// persisted yet. A corrupt persisted value also loads as empty: losing
	// a cart is recoverable, crashing the storefront is not.
	Load(ctx context.Context, sessionID string) ([]Line, error)

	// Save persists the full cart. It is called after every mutation so the
	// stored value always matches what the shopper last saw.
	Save(ctx context.Context, sessionID string, lines []Line) error

	// Clear empties the cart, used after a successful checkout.
	Clear(ctx context.Context, sessionID string) error
}

// decodeLines parses a persisted cart payload, failing soft to an empty
// cart when the payload does not parse.
func decodeLines(data []byte) []Line {
	if len(data) == 0 {
		return nil
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		slog.Warn("discarding unparseable persisted cart", "err", err)
		return nil
	}
	return lines
}
