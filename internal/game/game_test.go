package game

import (
	"errors"
	"testing"

	"github.com/verte-zerg/hangman/internal/rules"
)

func play(t *testing.T, g *Game, inputs ...string) []Outcome {
	t.Helper()
	out := make([]Outcome, 0, len(inputs))
	for _, in := range inputs {
		o, err := g.Guess(in)
		if err != nil {
			t.Fatalf("guess %q: %v", in, err)
		}
		out = append(out, o)
	}
	return out
}

func TestWinScoresAllGuesses(t *testing.T) {
	g := New(rules.Default(), "cat")
	outcomes := play(t, g, "a", "c", "t")
	for i, o := range outcomes {
		if o != OutcomeCorrect {
			t.Fatalf("guess %d: expected correct, got %s", i, o)
		}
	}
	if g.Status() != StatusWon {
		t.Fatalf("expected won, got %s", g.Status())
	}
	if g.Score() != 18 {
		t.Fatalf("expected score 18, got %d", g.Score())
	}
	if _, err := g.Guess("x"); !errors.Is(err, ErrFinished) {
		t.Fatalf("expected ErrFinished, got %v", err)
	}
}

func TestRepeatedLetterConsumesWarnings(t *testing.T) {
	g := New(rules.Default(), "cat")
	play(t, g, "c")
	for want := 2; want >= 0; want-- {
		o, err := g.Guess("c")
		if err != nil {
			t.Fatalf("guess: %v", err)
		}
		if o != OutcomeRepeated {
			t.Fatalf("expected repeated, got %s", o)
		}
		if g.WarningsLeft() != want || g.GuessesLeft() != 6 {
			t.Fatalf("expected %d warnings and 6 guesses, got %d/%d", want, g.WarningsLeft(), g.GuessesLeft())
		}
	}
	play(t, g, "c")
	if g.WarningsLeft() != 0 || g.GuessesLeft() != 5 {
		t.Fatalf("expected guess to be consumed once warnings are gone, got %d/%d", g.WarningsLeft(), g.GuessesLeft())
	}
}

func TestInvalidInput(t *testing.T) {
	g := New(rules.Default(), "cat")
	outcomes := play(t, g, "1", "", "ab")
	for _, o := range outcomes {
		if o != OutcomeInvalid {
			t.Fatalf("expected invalid, got %s", o)
		}
	}
	if g.WarningsLeft() != 0 || g.GuessesLeft() != 6 {
		t.Fatalf("unexpected counters %d/%d", g.WarningsLeft(), g.GuessesLeft())
	}
	if len(g.Guessed()) != 0 {
		t.Fatalf("invalid input must not be recorded")
	}
}

func TestInputIsNormalized(t *testing.T) {
	g := New(rules.Default(), "cat")
	if o := play(t, g, " C\n")[0]; o != OutcomeCorrect {
		t.Fatalf("expected correct, got %s", o)
	}
	if g.Pattern() != "c_ _ " {
		t.Fatalf("unexpected pattern %q", g.Pattern())
	}
}

func TestVowelPenaltyAndLoss(t *testing.T) {
	g := New(rules.Default(), "dry")
	play(t, g, "a")
	if g.GuessesLeft() != 4 {
		t.Fatalf("expected 4 guesses after vowel, got %d", g.GuessesLeft())
	}
	play(t, g, "b", "c", "f")
	if g.GuessesLeft() != 1 {
		t.Fatalf("expected 1 guess left, got %d", g.GuessesLeft())
	}
	play(t, g, "e")
	if g.GuessesLeft() != 0 {
		t.Fatalf("vowel with one guess left must leave 0, got %d", g.GuessesLeft())
	}
	if g.Status() != StatusLost {
		t.Fatalf("expected lost, got %s", g.Status())
	}
	if r := g.Result(); r.Won || r.Score != 0 || r.Secret != "dry" {
		t.Fatalf("unexpected result %+v", r)
	}
}

func TestInvalidGuessCanLose(t *testing.T) {
	cfg := rules.Default()
	cfg.MaxGuesses = 1
	cfg.MaxWarnings = 0
	g := New(cfg, "cat")
	play(t, g, "?")
	if g.Status() != StatusLost {
		t.Fatalf("expected lost, got %s", g.Status())
	}
}

func TestAvailableTracksGuesses(t *testing.T) {
	g := New(rules.Default(), "cat")
	play(t, g, "z", "a")
	if got := g.Available(); got != "bcdefghijklmnopqrstuvwxy" {
		t.Fatalf("unexpected available letters %q", got)
	}
	guessed := g.Guessed()
	if string(guessed) != "za" {
		t.Fatalf("unexpected guess order %q", string(guessed))
	}
}
