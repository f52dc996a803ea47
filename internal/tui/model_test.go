package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/rules"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

func newTestModel(t *testing.T, words ...string) *Model {
	t.Helper()
	src := wordlist.NewSourceWithRand(words, rand.New(rand.NewSource(1)))
	return NewModel(rules.Default(), src, zerolog.Nop())
}

func press(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func TestUpdateGuessesUntilWon(t *testing.T) {
	m := newTestModel(t, "cat")
	for _, r := range "act" {
		press(m, r)
	}
	if m.game.Status() != game.StatusWon {
		t.Fatalf("expected won, got %s", m.game.Status())
	}
	out := m.View()
	if !containsAll(out, []string{"Good guess: cat", "Congratulations, you won!", "Your total score for this game is: 18"}) {
		t.Fatalf("view missing expected text:\n%s", out)
	}
	results := m.Results()
	if len(results) != 1 || !results[0].Won || results[0].Score != 18 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestUpdateNewGameAfterFinish(t *testing.T) {
	m := newTestModel(t, "cat")
	// n is a letter guess while playing.
	press(m, 'n')
	if m.game.GuessesLeft() != 5 {
		t.Fatalf("expected n to be guessed, got %d guesses", m.game.GuessesLeft())
	}
	for _, r := range "cat" {
		press(m, r)
	}
	firstID := m.game.ID()
	if cmd := press(m, 'n'); cmd != nil {
		t.Fatalf("expected no command for new game")
	}
	if m.game.ID() == firstID || m.game.Finished() {
		t.Fatalf("expected a fresh game")
	}
	if m.message != "" {
		t.Fatalf("expected message to reset, got %q", m.message)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := newTestModel(t, "cat")
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Fatalf("expected quit command")
	}
	if cmd := press(m, 'q'); cmd != nil {
		t.Fatalf("q must be a guess while playing")
	}
}

func TestUpdateInvalidKeyUsesWarning(t *testing.T) {
	m := newTestModel(t, "cat")
	press(m, '7')
	if m.game.WarningsLeft() != 2 {
		t.Fatalf("expected 2 warnings, got %d", m.game.WarningsLeft())
	}
	if !strings.Contains(m.View(), "Oops! That is not a valid letter. You have 2 warnings left") {
		t.Fatalf("expected invalid-letter message:\n%s", m.View())
	}
}

func TestWrapCells(t *testing.T) {
	cells := []styledCell{{s: "a", width: 1}, {s: "b", width: 1}, {s: "c", width: 1}}
	if got := wrapCells(cells, 0); got != "a b c" {
		t.Fatalf("unexpected unwrapped cells %q", got)
	}
	if got := wrapCells(cells, 3); got != "a b\nc" {
		t.Fatalf("unexpected wrapped cells %q", got)
	}
}

func TestBuildLetterCellsStates(t *testing.T) {
	cells := buildLetterCells("abc", "cab", rules.NewLetters('a', 'x'))
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if cells[0].s != hitStyle.Render("a") {
		t.Fatalf("expected hit style for a")
	}
	if cells[1].s != availableStyle.Render("b") {
		t.Fatalf("expected available style for b")
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
