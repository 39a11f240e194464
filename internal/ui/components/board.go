package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wordletrack/wordletrack/internal/game"
	"github.com/wordletrack/wordletrack/internal/ui/theme"
)

// RenderGuessRow renders one submitted guess as colored tiles.
func RenderGuessRow(rec game.GuessRecord) string {
	tiles := make([]string, len(rec.Guess))
	for i := 0; i < len(rec.Guess); i++ {
		letter := strings.ToUpper(string(rec.Guess[i]))
		switch rec.Statuses[i] {
		case game.StatusCorrect:
			tiles[i] = theme.TileCorrect.Render(letter)
		case game.StatusPresent:
			tiles[i] = theme.TilePresent.Render(letter)
		default:
			tiles[i] = theme.TileAbsent.Render(letter)
		}
	}
	return strings.Join(tiles, " ")
}

// RenderEmptyRow renders a row of blank tiles, optionally previewing
// typed letters in the leftmost cells.
func RenderEmptyRow(length int, typed string) string {
	tiles := make([]string, length)
	for i := 0; i < length; i++ {
		if i < len(typed) {
			tiles[i] = theme.TileEmpty.Render(strings.ToUpper(string(typed[i])))
		} else {
			tiles[i] = theme.TileEmpty.Render("·")
		}
	}
	return strings.Join(tiles, " ")
}

// LetterTracker accumulates per-letter feedback across guesses for the
// on-screen keyboard. A letter's color only upgrades: absent can become
// present, present can become correct, never the reverse.
type LetterTracker struct {
	status map[byte]game.LetterStatus
	seen   map[byte]bool
}

// NewLetterTracker returns an empty tracker.
func NewLetterTracker() *LetterTracker {
	return &LetterTracker{
		status: make(map[byte]game.LetterStatus),
		seen:   make(map[byte]bool),
	}
}

// Record folds one guess's feedback into the tracker.
func (lt *LetterTracker) Record(rec game.GuessRecord) {
	for i := 0; i < len(rec.Guess); i++ {
		letter := rec.Guess[i]
		st := rec.Statuses[i]
		if !lt.seen[letter] || st > lt.status[letter] {
			lt.status[letter] = st
		}
		lt.seen[letter] = true
	}
}

// View renders the a-z rows colored by best-known status.
func (lt *LetterTracker) View() string {
	rows := []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}
	var b strings.Builder
	for ri, row := range rows {
		if ri > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", ri))
		keys := make([]string, len(row))
		for i := 0; i < len(row); i++ {
			letter := row[i]
			display := strings.ToUpper(string(letter))
			if !lt.seen[letter] {
				keys[i] = lipgloss.NewStyle().Foreground(theme.Text).Render(display)
				continue
			}
			switch lt.status[letter] {
			case game.StatusCorrect:
				keys[i] = lipgloss.NewStyle().Foreground(theme.TileGreen).Bold(true).Render(display)
			case game.StatusPresent:
				keys[i] = lipgloss.NewStyle().Foreground(theme.TileYellow).Bold(true).Render(display)
			default:
				keys[i] = lipgloss.NewStyle().Foreground(theme.Border).Render(display)
			}
		}
		b.WriteString(strings.Join(keys, " "))
	}
	return b.String()
}
