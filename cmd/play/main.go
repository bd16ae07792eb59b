package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"guess-the-number/internal/game"
	"guess-the-number/internal/tui"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	defaultDifficulty := os.Getenv("GUESS_DIFFICULTY")
	if defaultDifficulty == "" {
		defaultDifficulty = "easy"
	}
	difficultyFlag := flag.String("difficulty", defaultDifficulty, "initial difficulty: easy or hard")
	flag.Parse()

	difficulty, err := game.ParseDifficulty(*difficultyFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid difficulty")
	}

	if err := tui.Run(game.NewController(game.WithDifficulty(difficulty))); err != nil {
		log.Fatal().Err(err).Msg("terminal shell exited")
	}
}
