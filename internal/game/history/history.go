// Package history records finished rounds so lifetime statistics
// survive across game sessions.
package history

import (
	"context"
	"time"
)

// Outcome values stored for a round.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Round is one finished round.
type Round struct {
	Difficulty string
	Outcome    string
	Tries      int
	Secret     int
	PlayedAt   time.Time
}

// Totals aggregates lifetime round counts.
type Totals struct {
	Played int
	Won    int
}

// Store persists round history.
type Store interface {
	Append(ctx context.Context, round Round) error
	Totals(ctx context.Context) (Totals, error)
	Close() error
}
