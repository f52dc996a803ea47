// Package model defines shared data structures.
package model

// Config defines play settings resolved from flags and the config file.
type Config struct {
	WordListPath string
	Plain        bool
	LogLevel     string
}

// Result captures a finished game.
type Result struct {
	GameID       string
	Secret       string
	Won          bool
	GuessesLeft  int
	WarningsLeft int
	Score        int
}
