package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/hangman/internal/rules"
)

type letterState int

const (
	letterAvailable letterState = iota
	letterHit
	letterMiss
)

type styledCell struct {
	s     string
	width int
}

// buildLetterCells renders every alphabet letter, colored by whether it is
// still available, was a hit, or was a miss.
func buildLetterCells(alphabet, secret string, guessed rules.Letters) []styledCell {
	out := make([]styledCell, 0, len(alphabet))
	for _, r := range alphabet {
		state := letterAvailable
		if guessed.Has(r) {
			state = letterMiss
			if strings.ContainsRune(secret, r) {
				state = letterHit
			}
		}
		style := availableStyle
		switch state {
		case letterHit:
			style = hitStyle
		case letterMiss:
			style = missStyle
		}
		out = append(out, styledCell{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

// wrapCells joins cells with single spaces, breaking lines before width is exceeded.
func wrapCells(cells []styledCell, width int) string {
	var out strings.Builder
	lineWidth := 0
	for i, cell := range cells {
		if i > 0 {
			if width > 0 && lineWidth+1+cell.width > width {
				out.WriteByte('\n')
				lineWidth = 0
			} else {
				out.WriteByte(' ')
				lineWidth++
			}
		}
		out.WriteString(cell.s)
		lineWidth += cell.width
	}
	return out.String()
}
