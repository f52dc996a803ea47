// Package console runs a game as a line-oriented prompt over plain readers and writers.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/model"
)

const separator = "--------------------"

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Loop prompts for letters until the game is won or lost.
type Loop struct {
	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
}

// New returns a Loop reading guesses from in and writing to out.
func New(in io.Reader, out io.Writer, log zerolog.Logger) *Loop {
	return &Loop{in: bufio.NewScanner(in), out: out, log: log}
}

// PrintLoaded reports how many words were loaded.
func PrintLoaded(w io.Writer, count int) error {
	_, err := fmt.Fprintf(w, "Loading word list from file...\n   %d words loaded.\n", count)
	return err
}

// Run plays g to completion and returns its result.
func (l *Loop) Run(g *game.Game) (model.Result, error) {
	p := &printer{w: l.out}
	p.line("Welcome to the game Hangman!")
	p.linef("I am thinking of a word that is %d letters long.", len([]rune(g.Secret())))
	p.line(separator)
	if p.err != nil {
		return model.Result{}, p.err
	}

	for !g.Finished() {
		p.linef("You have %d guesses left.", g.GuessesLeft())
		p.linef("You have %d warnings left.", g.WarningsLeft())
		p.linef("Available letters: %s", g.Available())
		p.printf("Enter a letter: ")
		if p.err != nil {
			return model.Result{}, p.err
		}
		if !l.in.Scan() {
			if err := l.in.Err(); err != nil {
				return model.Result{}, fmt.Errorf("failed to read guess: %w", err)
			}
			return model.Result{}, ErrInputClosed
		}
		input := l.in.Text()
		warningsBefore := g.WarningsLeft()
		outcome, err := g.Guess(input)
		if err != nil {
			return model.Result{}, err
		}
		l.log.Debug().Str("game", g.ID()).Str("input", input).Stringer("outcome", outcome).
			Int("guesses", g.GuessesLeft()).Int("warnings", g.WarningsLeft()).Msg("guess")
		p.line(Feedback(g, outcome, g.WarningsLeft() < warningsBefore))
		p.line(separator)
	}

	res := g.Result()
	for _, line := range OutcomeLines(res) {
		p.line(line)
	}
	if p.err != nil {
		return model.Result{}, p.err
	}
	return res, nil
}

// Feedback returns the message shown after a guess. warningUsed tells whether
// an invalid guess was paid for with a warning rather than a guess.
func Feedback(g *game.Game, outcome game.Outcome, warningUsed bool) string {
	switch outcome {
	case game.OutcomeCorrect:
		return "Good guess: " + g.Pattern()
	case game.OutcomeIncorrect:
		return "Oops! That letter is not in my word: " + g.Pattern()
	case game.OutcomeRepeated:
		return "Oops! You've already guessed that letter. " + penaltySuffix(g, warningUsed)
	default:
		return "Oops! That is not a valid letter. " + penaltySuffix(g, warningUsed)
	}
}

func penaltySuffix(g *game.Game, warningUsed bool) string {
	if warningUsed {
		return fmt.Sprintf("You have %d warnings left: %s", g.WarningsLeft(), g.Pattern())
	}
	return fmt.Sprintf("You have no warnings left so you lose one guess: %s", g.Pattern())
}

// OutcomeLines returns the end-of-game message.
func OutcomeLines(res model.Result) []string {
	if res.Won {
		return []string{
			"Congratulations, you won!",
			fmt.Sprintf("Your total score for this game is: %d", res.Score),
		}
	}
	return []string{
		"Sorry, you ran out of guesses.",
		fmt.Sprintf("The word was %s", res.Secret),
	}
}

// printer remembers the first write error so a turn can be checked once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) linef(format string, args ...any) {
	p.printf(format+"\n", args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}
