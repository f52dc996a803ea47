// Package tui provides the Bubble Tea game interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/hangman/internal/console"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/rules"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	patternStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	goodStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	badStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	availableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	hitStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Underline(true)
	missStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	boxStyle       = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

type keyMap struct {
	Quit    key.Binding
	NewGame key.Binding
	Leave   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Leave:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.NewGame, k.Leave, k.Quit}
}

// Model implements the Bubble Tea game UI.
type Model struct {
	rules  rules.Config
	source *wordlist.Source
	log    zerolog.Logger

	game    *game.Game
	message string
	good    bool
	results []model.Result

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs a game TUI model and starts the first game.
func NewModel(cfg rules.Config, source *wordlist.Source, log zerolog.Logger) *Model {
	m := &Model{
		rules:  cfg,
		source: source,
		log:    log,
		keys:   newKeyMap(),
		help:   help.New(),
	}
	m.newGame()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Results returns the finished games in the order they were played.
func (m *Model) Results() []model.Result {
	return append([]model.Result(nil), m.results...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.game.Finished() {
			switch {
			case key.Matches(msg, m.keys.NewGame):
				m.newGame()
			case key.Matches(msg, m.keys.Leave):
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.Type {
		case tea.KeyRunes:
			m.guess(string(msg.Runes))
		case tea.KeySpace:
			m.guess(" ")
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{
		titleStyle.Render("Hangman"),
		"",
		fmt.Sprintf("I am thinking of a word that is %d letters long.", len([]rune(m.game.Secret()))),
		"",
		patternStyle.Render(m.game.Pattern()),
		"",
		statusStyle.Render(fmt.Sprintf("Guesses left: %d  Warnings left: %d", m.game.GuessesLeft(), m.game.WarningsLeft())),
		wrapCells(buildLetterCells(m.rules.Alphabet, m.game.Secret(), rules.NewLetters(m.game.Guessed()...)), m.contentWidth()),
	}
	if m.message != "" {
		style := badStyle
		if m.good {
			style = goodStyle
		}
		lines = append(lines, "", style.Render(m.truncate(m.message)))
	}
	if m.game.Finished() {
		style := badStyle
		if m.game.Status() == game.StatusWon {
			style = goodStyle
		}
		lines = append(lines, "")
		for _, line := range console.OutcomeLines(m.game.Result()) {
			lines = append(lines, style.Render(line))
		}
	}
	content := boxStyle.Render(strings.Join(lines, "\n"))
	footer := m.help.ShortHelpView(m.keys.bindings())
	if m.width == 0 || m.height == 0 {
		return content + "\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) newGame() {
	m.game = game.New(m.rules, m.source.Choose())
	m.message = ""
	m.good = false
	m.setFinishedKeys(false)
	m.log.Info().Str("game", m.game.ID()).Int("letters", len([]rune(m.game.Secret()))).Msg("game started")
}

func (m *Model) guess(input string) {
	warningsBefore := m.game.WarningsLeft()
	outcome, err := m.game.Guess(input)
	if err != nil {
		m.log.Warn().Err(err).Str("game", m.game.ID()).Msg("guess rejected")
		return
	}
	m.good = outcome == game.OutcomeCorrect
	m.message = console.Feedback(m.game, outcome, m.game.WarningsLeft() < warningsBefore)
	m.log.Debug().Str("game", m.game.ID()).Str("input", input).Stringer("outcome", outcome).Msg("guess")
	if m.game.Finished() {
		res := m.game.Result()
		m.results = append(m.results, res)
		m.setFinishedKeys(true)
		m.log.Info().Str("game", res.GameID).Bool("won", res.Won).Int("score", res.Score).Msg("game finished")
	}
}

func (m *Model) setFinishedKeys(finished bool) {
	m.keys.NewGame.SetEnabled(finished)
	m.keys.Leave.SetEnabled(finished)
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) truncate(s string) string {
	w := m.contentWidth()
	if w == 0 {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}
