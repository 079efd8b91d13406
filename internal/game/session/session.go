// Package session runs a single guess-the-number round against a
// terminal-style input/output pair.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/louisbranch/guessing.game/internal/game/difficulty"
	"github.com/louisbranch/guessing.game/internal/game/wording"
)

// CloseThreshold is the maximum distance from the secret that still
// earns a CLOSE hint.
const CloseThreshold = 5

// ErrInvalidLevel indicates a level without a positive bound and try limit.
var ErrInvalidLevel = errors.New("level must have a positive bound and try limit")

// ErrSecretOutOfRange indicates a secret outside [1, UpperBound].
var ErrSecretOutOfRange = errors.New("secret must be within the level range")

// ErrInputClosed indicates the input ended before the round finished.
var ErrInputClosed = errors.New("input closed")

// Outcome reports how a round ended.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "Won"
	case OutcomeLost:
		return "Lost"
	default:
		return "Unspecified"
	}
}

// Result captures a finished round. Tries counts valid (parsable)
// guesses only; on a win it equals the winning attempt number.
type Result struct {
	Outcome Outcome
	Tries   int
	Secret  int
}

// Hint classifies one guess against the secret.
type Hint int

const (
	HintWin Hint = iota
	HintLow
	HintCloseLow
	HintHigh
	HintCloseHigh
)

// Evaluate compares a guess to the secret. Equality wins regardless of
// the threshold; otherwise a CLOSE hint fires iff the distance is at
// most CloseThreshold.
func Evaluate(guess, secret int) Hint {
	switch {
	case guess == secret:
		return HintWin
	case guess < secret && secret-guess <= CloseThreshold:
		return HintCloseLow
	case guess < secret:
		return HintLow
	case guess-secret <= CloseThreshold:
		return HintCloseHigh
	default:
		return HintHigh
	}
}

// NewSecret draws a secret uniformly from [1, level.UpperBound].
func NewSecret(rng *rand.Rand, level difficulty.Level) int {
	return rng.Intn(level.UpperBound) + 1
}

// Run plays one round: it announces the range, collects guesses from in,
// and writes hints to out until the player wins or runs out of tries.
// Unparsable input consumes no attempt. The warning before the final
// attempt is printed ahead of the prompt, based on the remaining count.
func Run(level difficulty.Level, secret int, in *bufio.Scanner, out io.Writer) (Result, error) {
	if level.UpperBound < 1 || level.MaxTries < 1 {
		return Result{}, ErrInvalidLevel
	}
	if secret < 1 || secret > level.UpperBound {
		return Result{}, ErrSecretOutOfRange
	}
	if in == nil || out == nil {
		return Result{}, fmt.Errorf("input and output are required")
	}

	fmt.Fprintf(out, "I'm thinking of a number between 1 and %d.\n", level.UpperBound)
	fmt.Fprintf(out, "You have %d attempts.\n", level.MaxTries)

	tries := 0
	for tries < level.MaxTries {
		attempt := tries + 1
		if attempt == level.MaxTries {
			fmt.Fprintln(out, "** THIS IS YOUR LAST ATTEMPT!  GUESS WISELY! **")
		}
		fmt.Fprintf(out, "(Attempt %d) Enter your guess: ", attempt)

		if !in.Scan() {
			if err := in.Err(); err != nil {
				return Result{Secret: secret, Tries: tries}, fmt.Errorf("read guess: %w", err)
			}
			return Result{Secret: secret, Tries: tries}, ErrInputClosed
		}
		guess, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Fprintln(out, "Error: Please enter a valid integer.")
			continue
		}

		tries++
		switch Evaluate(guess, secret) {
		case HintWin:
			fmt.Fprintf(out, "Congratulations! You've guessed the correct number in %s.\n", wording.Tries(tries))
			return Result{Outcome: OutcomeWon, Tries: tries, Secret: secret}, nil
		case HintCloseLow:
			fmt.Fprintln(out, "CLOSE! But too low! Try again.")
		case HintLow:
			fmt.Fprintln(out, "Too low! Try again.")
		case HintCloseHigh:
			fmt.Fprintln(out, "CLOSE! But too high! Try again.")
		case HintHigh:
			fmt.Fprintln(out, "Too high! Try again.")
		}
	}

	percent := float64(secret) / float64(level.UpperBound) * 100
	fmt.Fprintf(out, "Better luck next time. The correct number was %d.\n", secret)
	fmt.Fprintf(out, "That's %.1f%% of the way through the range 1-%d.\n", percent, level.UpperBound)
	return Result{Outcome: OutcomeLost, Tries: tries, Secret: secret}, nil
}
