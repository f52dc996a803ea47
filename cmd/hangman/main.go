// Package main provides the CLI entrypoint for hangman.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/hangman/internal/config"
	"github.com/verte-zerg/hangman/internal/console"
	"github.com/verte-zerg/hangman/internal/game"
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/rules"
	"github.com/verte-zerg/hangman/internal/stats"
	"github.com/verte-zerg/hangman/internal/tui"
	"github.com/verte-zerg/hangman/internal/wordlist"
)

const defaultLogLevel = "warn"

var (
	playWordList string
	playPlain    bool
	playLogLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hangman",
		Short:         "Guess the secret word one letter at a time",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playWordList, "wordlist", config.DefaultWordListPath, "word list file (whitespace-separated words)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "use the line-based prompt instead of the full-screen UI")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "wordlist", &playWordList, fileCfg.Game.WordList)
	applyBoolConfig(cmd, "plain", &playPlain, fileCfg.Game.Plain)
	applyStringConfig(cmd, "log-level", &playLogLevel, fileCfg.Game.LogLevel)

	cfg := model.Config{
		WordListPath: playWordList,
		Plain:        playPlain,
		LogLevel:     playLogLevel,
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	ruleCfg := rules.Default()
	out := cmd.OutOrStdout()
	plain := cfg.Plain || !term.IsTerminal(int(os.Stdin.Fd()))
	words, err := wordlist.LoadWords(cfg.WordListPath, wordlist.AlphabetFilter(ruleCfg.Alphabet))
	if err != nil {
		return wordListLoadError(cfg.WordListPath, err)
	}
	if plain {
		if err := console.PrintLoaded(out, len(words)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	logger.Debug().Str("path", cfg.WordListPath).Int("words", len(words)).Msg("word list loaded")
	source := wordlist.NewSource(words)

	if plain {
		g := game.New(ruleCfg, source.Choose())
		logger.Info().Str("game", g.ID()).Msg("game started")
		res, err := console.New(cmd.InOrStdin(), out, logger).Run(g)
		if err != nil {
			return fmt.Errorf("game aborted: %w", err)
		}
		logResult(logger, res)
		return nil
	}

	m := tui.NewModel(ruleCfg, source, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	results := m.Results()
	for _, res := range results {
		logResult(logger, res)
	}
	if err := stats.RenderResults(out, results); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level value: %w", err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(lvl).With().Timestamp().Logger(), nil
}

func logResult(logger zerolog.Logger, res model.Result) {
	logger.Info().
		Str("game", res.GameID).
		Bool("won", res.Won).
		Int("guesses", res.GuessesLeft).
		Int("score", res.Score).
		Msg("game finished")
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# hangman configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# wordlist = %q     # Word list file (whitespace-separated words)
# plain = false            # Use the line-based prompt instead of the full-screen UI
# log-level = %q       # Log level (debug, info, warn, error)
`,
		config.DefaultWordListPath,
		defaultLogLevel,
	)
}

func wordListLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
	}
	switch {
	case errors.Is(err, os.ErrNotExist):
		lines = append(lines, "Pass a word list with: hangman --wordlist <path>")
	case errors.Is(err, wordlist.ErrEmpty):
		lines = append(lines, "The file must contain lowercase words separated by whitespace.")
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
