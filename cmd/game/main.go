// Package main provides the interactive guess-the-number console game.
package main

import (
	"context"
	"log"
	"math/rand"
	"os"

	gamecmd "github.com/louisbranch/guessing.game/internal/cmd/game"
	"github.com/louisbranch/guessing.game/internal/game/history/sqlite"
	"github.com/louisbranch/guessing.game/internal/game/score/textfile"
	"github.com/louisbranch/guessing.game/internal/platform/config"
	"github.com/louisbranch/guessing.game/internal/random"
)

func main() {
	var cfg gamecmd.Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("parse config: %v", err)
	}

	scores, err := textfile.New(cfg.ScoresPath)
	if err != nil {
		config.Exitf("open scores store: %v", err)
	}

	seed, err := random.NewSeed()
	if err != nil {
		config.Exitf("seed rng: %v", err)
	}

	opts := gamecmd.Options{
		Scores: scores,
		Rand:   rand.New(rand.NewSource(seed)),
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	if cfg.HistoryDBPath != "" {
		historyStore, err := sqlite.Open(cfg.HistoryDBPath)
		if err != nil {
			log.Printf("open history store: %v (history disabled)", err)
		} else {
			defer historyStore.Close()
			opts.History = historyStore
		}
	}

	if err := gamecmd.Run(context.Background(), opts); err != nil {
		config.Exitf("run game: %v", err)
	}
}
