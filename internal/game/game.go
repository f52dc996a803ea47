// Package game tracks a single round: the secret word, guessed letters and
// the remaining guesses and warnings.
package game

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/rules"
)

// ErrFinished is returned when a guess is made after the game has ended.
var ErrFinished = errors.New("game is already finished")

// Status is the state of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome classifies a single guess.
type Outcome int

const (
	OutcomeInvalid Outcome = iota
	OutcomeRepeated
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRepeated:
		return "repeated"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Game is one round against a fixed secret word.
type Game struct {
	id       string
	rules    rules.Config
	secret   string
	guessed  rules.Letters
	order    []rune
	guesses  int
	warnings int
	status   Status
}

// New starts a game for secret using the given rules.
func New(cfg rules.Config, secret string) *Game {
	return &Game{
		id:       uuid.NewString(),
		rules:    cfg,
		secret:   strings.ToLower(secret),
		guessed:  rules.Letters{},
		guesses:  cfg.MaxGuesses,
		warnings: cfg.MaxWarnings,
		status:   StatusPlaying,
	}
}

// Guess applies one line of player input. The input is trimmed and lowercased
// and must be a single alphabet letter to count as a letter guess.
func (g *Game) Guess(input string) (Outcome, error) {
	if g.status != StatusPlaying {
		return OutcomeInvalid, ErrFinished
	}
	letter, ok := g.parseLetter(input)
	if !ok {
		g.invalid()
		return OutcomeInvalid, nil
	}
	if g.guessed.Has(letter) {
		g.invalid()
		return OutcomeRepeated, nil
	}
	g.guessed.Add(letter)
	g.order = append(g.order, letter)
	if strings.ContainsRune(g.secret, letter) {
		if rules.IsWordGuessed(g.secret, g.guessed) {
			g.status = StatusWon
		}
		return OutcomeCorrect, nil
	}
	g.guesses = g.rules.ApplyIncorrectGuess(letter, g.guesses)
	if g.guesses <= 0 {
		g.status = StatusLost
	}
	return OutcomeIncorrect, nil
}

func (g *Game) invalid() {
	g.warnings, g.guesses = rules.ApplyInvalidGuess(g.warnings, g.guesses)
	if g.guesses <= 0 {
		g.status = StatusLost
	}
}

func (g *Game) parseLetter(input string) (rune, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if utf8.RuneCountInString(input) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(input)
	if !g.rules.IsLetter(r) {
		return 0, false
	}
	return r, true
}

// ID returns the unique identifier of the game.
func (g *Game) ID() string { return g.id }

// Secret returns the word being guessed.
func (g *Game) Secret() string { return g.secret }

// Status returns the current game status.
func (g *Game) Status() Status { return g.status }

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool { return g.status != StatusPlaying }

// GuessesLeft returns the remaining guesses.
func (g *Game) GuessesLeft() int { return g.guesses }

// WarningsLeft returns the remaining warnings.
func (g *Game) WarningsLeft() int { return g.warnings }

// Guessed returns the guessed letters in the order they were played.
func (g *Game) Guessed() []rune {
	return append([]rune(nil), g.order...)
}

// Pattern returns the partially revealed secret.
func (g *Game) Pattern() string {
	return rules.RevealPattern(g.secret, g.guessed)
}

// Available returns the letters not guessed yet.
func (g *Game) Available() string {
	return g.rules.AvailableLetters(g.guessed)
}

// Score returns the score for the current number of guesses left.
func (g *Game) Score() int {
	return rules.Score(g.guesses, g.secret)
}

// Result summarizes the game.
func (g *Game) Result() model.Result {
	return model.Result{
		GameID:       g.id,
		Secret:       g.secret,
		Won:          g.status == StatusWon,
		GuessesLeft:  g.guesses,
		WarningsLeft: g.warnings,
		Score:        g.Score(),
	}
}
