// Package game implements the interactive guess-the-number command: the
// difficulty menu, the round loop, high-score updates, and the replay
// prompt.
package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/guessing.game/internal/game/difficulty"
	"github.com/louisbranch/guessing.game/internal/game/history"
	"github.com/louisbranch/guessing.game/internal/game/score"
	"github.com/louisbranch/guessing.game/internal/game/session"
	"github.com/louisbranch/guessing.game/internal/game/wording"
)

// Config holds the environment-driven settings for the game command.
type Config struct {
	// ScoresPath locates the flat-text high-score file.
	ScoresPath string `env:"GUESSING_GAME_SCORES_PATH" envDefault:"highscores.txt"`
	// HistoryDBPath locates the SQLite round-history database. An empty
	// value disables history.
	HistoryDBPath string `env:"GUESSING_GAME_HISTORY_DB_PATH" envDefault:"history.db"`
}

// Options wires the controller's collaborators.
type Options struct {
	Scores  score.Store
	History history.Store // optional; nil disables round history
	Rand    *rand.Rand
	In      io.Reader
	Out     io.Writer
}

// Run drives the menu/round/replay loop until the player exits. Store
// failures are downgraded to warnings; the only ways out are the exit
// menu option, declining a replay, or the input ending.
func Run(ctx context.Context, opts Options) error {
	if opts.Scores == nil {
		return fmt.Errorf("score store is required")
	}
	if opts.Rand == nil {
		return fmt.Errorf("random source is required")
	}
	if opts.In == nil || opts.Out == nil {
		return fmt.Errorf("input and output are required")
	}

	scores, err := opts.Scores.Load()
	if err != nil {
		log.Printf("load scores: %v (starting with no scores)", err)
	}
	if scores == nil {
		scores = score.Scores{}
	}

	in := bufio.NewScanner(opts.In)
	out := opts.Out

	fmt.Fprintln(out, "Welcome to the Guess the Number Game!")

	for {
		level, exit := selectDifficulty(in, out)
		if exit {
			farewell(ctx, opts.History, out)
			return nil
		}
		fmt.Fprintln(out, level.Flavour)

		secret := session.NewSecret(opts.Rand, level)
		result, err := session.Run(level, secret, in, out)
		if err != nil {
			if !errors.Is(err, session.ErrInputClosed) {
				log.Printf("run round: %v", err)
			}
			farewell(ctx, opts.History, out)
			return nil
		}

		recordRound(ctx, opts.History, level, result)
		if result.Outcome == session.OutcomeWon {
			announceRecord(opts.Scores, scores, level, result.Tries, out)
		}

		if !askPlayAgain(in, out) {
			farewell(ctx, opts.History, out)
			return nil
		}
	}
}

// selectDifficulty renders the catalog menu plus an exit option and
// re-prompts until it reads a valid choice. End of input counts as an
// exit request.
func selectDifficulty(in *bufio.Scanner, out io.Writer) (difficulty.Level, bool) {
	exitChoice := difficulty.Count() + 1
	for {
		fmt.Fprintln(out, "===== Pick your difficulty level =====")
		for i, level := range difficulty.Levels() {
			fmt.Fprintf(out, "%d. %s (1-%d, %d tries)\n", i+1, level.ID, level.UpperBound, level.MaxTries)
		}
		fmt.Fprintf(out, "%d. Exit\n", exitChoice)
		fmt.Fprint(out, "Enter your choice: ")

		if !in.Scan() {
			return difficulty.Level{}, true
		}
		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Fprintln(out, "Error: Please enter a valid integer.")
			continue
		}
		if choice == exitChoice {
			return difficulty.Level{}, true
		}
		level, ok := difficulty.ByIndex(choice)
		if !ok {
			fmt.Fprintln(out, "Invalid choice. Please try again.")
			continue
		}
		return level, false
	}
}

// announceRecord records a winning attempt count and prints the matching
// message: first-ever win, improved record, or the standing best.
func announceRecord(store score.Store, scores score.Scores, level difficulty.Level, tries int, out io.Writer) {
	result, err := score.RecordIfBest(store, scores, level.ID, tries)
	if err != nil {
		log.Printf("record high score: %v (score not saved this time)", err)
	}
	switch {
	case result.NewRecord && result.FirstWin:
		fmt.Fprintf(out, "New record! Your first win on %s: %s.\n", level.ID, wording.Tries(tries))
	case result.NewRecord:
		fmt.Fprintf(out, "New record! You beat your previous best of %s.\n", wording.Tries(result.PreviousBest))
	default:
		fmt.Fprintf(out, "No new record. Your best on %s is %s.\n", level.ID, wording.Tries(result.PreviousBest))
	}
}

func recordRound(ctx context.Context, store history.Store, level difficulty.Level, result session.Result) {
	if store == nil {
		return
	}
	outcome := history.OutcomeLost
	if result.Outcome == session.OutcomeWon {
		outcome = history.OutcomeWon
	}
	round := history.Round{
		Difficulty: level.ID,
		Outcome:    outcome,
		Tries:      result.Tries,
		Secret:     result.Secret,
		PlayedAt:   time.Now(),
	}
	if err := store.Append(ctx, round); err != nil {
		log.Printf("record round history: %v", err)
	}
}

// askPlayAgain prompts once. Only an answer starting with "y" continues;
// anything else, including end of input, stops.
func askPlayAgain(in *bufio.Scanner, out io.Writer) bool {
	fmt.Fprint(out, "Play again? (y/n): ")
	if !in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(in.Text()))
	return strings.HasPrefix(answer, "y")
}

func farewell(ctx context.Context, store history.Store, out io.Writer) {
	if store != nil {
		totals, err := store.Totals(ctx)
		if err != nil {
			log.Printf("load round history: %v", err)
		} else if totals.Played > 0 {
			fmt.Fprintf(out, "Lifetime: %d rounds played, %d won.\n", totals.Played, totals.Won)
		}
	}
	fmt.Fprintln(out, "Thanks for playing! Goodbye.")
}
