// Package stats summarizes the games played during one run.
package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/hangman/internal/model"
)

// Totals aggregates finished games.
type Totals struct {
	Games     int
	Wins      int
	BestScore int
	Total     int
}

// Summarize computes totals over results.
func Summarize(results []model.Result) Totals {
	var t Totals
	for _, r := range results {
		t.Games++
		t.Total += r.Score
		if r.Won {
			t.Wins++
		}
		if r.Score > t.BestScore {
			t.BestScore = r.Score
		}
	}
	return t
}

// RenderResults prints one row per game followed by the totals.
func RenderResults(w io.Writer, results []model.Result) error {
	if len(results) == 0 {
		return nil
	}
	headers := []string{"#", "Word", "Result", "Guesses", "Score"}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Secret,
			outcome,
			strconv.Itoa(r.GuessesLeft),
			strconv.Itoa(r.Score),
		})
	}
	rightAlign := map[int]bool{0: true, 3: true, 4: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	t := Summarize(results)
	_, err := fmt.Fprintf(w, "Games: %d  Wins: %d  Best score: %d  Total score: %d\n", t.Games, t.Wins, t.BestScore, t.Total)
	return err
}
