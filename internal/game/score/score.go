// Package score tracks the lowest winning attempt count per difficulty.
package score

import (
	"errors"
	"fmt"
)

// ErrInvalidTries indicates a recorded attempt count below one.
var ErrInvalidTries = errors.New("tries must be at least one")

// ErrMissingDifficulty indicates a record call without an identifier.
var ErrMissingDifficulty = errors.New("difficulty identifier is required")

// Scores maps a difficulty identifier to the best (lowest) attempt
// count that ever won at that difficulty. A difficulty with no recorded
// win is simply absent.
type Scores map[string]int

// Store persists score mappings between game sessions.
type Store interface {
	Load() (Scores, error)
	Save(Scores) error
}

// Result describes the outcome of a RecordIfBest call.
type Result struct {
	// NewRecord reports whether the mapping was updated.
	NewRecord bool
	// FirstWin reports whether this was the first recorded win at the
	// difficulty. Only meaningful when NewRecord is true.
	FirstWin bool
	// PreviousBest holds the best attempt count before this call. Zero
	// when FirstWin is true.
	PreviousBest int
}

// RecordIfBest updates scores when tries beats the recorded best for the
// difficulty (absent counts as no record) and persists the mapping via
// store. A non-improving call leaves both the mapping and the persisted
// file untouched and reports the existing best. This is the only write
// path to the store at runtime; a failed save still keeps the improved
// value in memory and surfaces the error for the caller to warn about.
func RecordIfBest(store Store, scores Scores, id string, tries int) (Result, error) {
	if store == nil {
		return Result{}, fmt.Errorf("score store is required")
	}
	if scores == nil {
		return Result{}, fmt.Errorf("score mapping is required")
	}
	if id == "" {
		return Result{}, ErrMissingDifficulty
	}
	if tries < 1 {
		return Result{}, ErrInvalidTries
	}

	previous, hasPrevious := scores[id]
	if hasPrevious && tries >= previous {
		return Result{PreviousBest: previous}, nil
	}

	scores[id] = tries
	result := Result{NewRecord: true, FirstWin: !hasPrevious, PreviousBest: previous}
	if err := store.Save(scores); err != nil {
		return result, fmt.Errorf("save scores: %w", err)
	}
	return result, nil
}
