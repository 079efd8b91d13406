// Package difficulty defines the closed set of difficulty levels for the
// guessing game. Levels are immutable records keyed by identifier and
// listed in menu order.
package difficulty

// Level describes one difficulty level. The guess range always starts at
// 1 and ends at UpperBound, inclusive.
type Level struct {
	ID         string
	UpperBound int
	MaxTries   int
	Flavour    string
}

var levels = []Level{
	{ID: "EASY", UpperBound: 50, MaxTries: 10, Flavour: "Easy! Well, chickens are yellow!"},
	{ID: "MEDIUM", UpperBound: 100, MaxTries: 7, Flavour: "Medium difficulty. A wise choice I think!"},
	{ID: "HARD", UpperBound: 500, MaxTries: 9, Flavour: "Hard mode! Ok, let's play!"},
	{ID: "IMPOSSIBLE", UpperBound: 1000, MaxTries: 10, Flavour: "Impossible mode. Brave choice... or stupid choice!"},
}

// Levels returns the catalog in menu order.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// Count returns the number of catalog levels.
func Count() int {
	return len(levels)
}

// ByIndex returns the level at the given 1-based menu position.
func ByIndex(index int) (Level, bool) {
	if index < 1 || index > len(levels) {
		return Level{}, false
	}
	return levels[index-1], true
}

// ByID returns the level with the given identifier.
func ByID(id string) (Level, bool) {
	for _, level := range levels {
		if level.ID == id {
			return level, true
		}
	}
	return Level{}, false
}

// IsValid reports whether id names a catalog level. Matching is
// case-sensitive.
func IsValid(id string) bool {
	_, ok := ByID(id)
	return ok
}
