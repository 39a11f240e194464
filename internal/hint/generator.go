// Package hint produces human-readable guidance from a session's
// constraint state, varying by attempt number.
package hint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wordletrack/wordletrack/internal/constraint"
	"github.com/wordletrack/wordletrack/internal/game"
)

// letterFrequency is the fixed English letter-frequency order used for
// untried-letter suggestions.
const letterFrequency = "etaoinsrhdlucmfywgpbvkjxqz"

// Generator builds hints from a tracker's constraint state and guess
// history. It remembers only the last hint text returned, to avoid
// repeating it when an alternative exists.
type Generator struct {
	tracker  *constraint.Tracker
	mode     constraint.PlacementMode
	lastHint string
}

// New creates a Generator reading the given tracker. The placement mode
// controls how reposition suggestions locate misplaced letters.
func New(tracker *constraint.Tracker, mode constraint.PlacementMode) *Generator {
	return &Generator{tracker: tracker, mode: mode}
}

// Generate returns a hint for the current state. It never fails: with no
// history it falls back to the opening heuristic. Among multiple
// eligible hints it prefers one that differs from the previous hint;
// repetition happens only when unavoidable.
func (g *Generator) Generate() string {
	candidates := g.eligible()
	chosen := candidates[0]
	for _, c := range candidates {
		if c != g.lastHint {
			chosen = c
			break
		}
	}
	g.lastHint = chosen
	return chosen
}

// eligible returns hint texts in priority order for the current attempt
// count. The slice is never empty.
func (g *Generator) eligible() []string {
	n := g.tracker.Attempts()

	switch {
	case n == 0:
		return []string{g.openingHint()}
	case n == 1:
		return g.absentOrDiversity()
	case n == 2:
		return g.confirmedOrReposition()
	case n == 3:
		return []string{g.patternHint()}
	case n >= 5:
		if critical, ok := g.criticalHint(); ok {
			return append([]string{critical}, g.rotation(n)...)
		}
		return g.rotation(n)
	default: // n == 4
		return g.rotation(n)
	}
}

// openingHint suggests starter words keyed off word length. Deterministic.
func (g *Generator) openingHint() string {
	if g.tracker.WordLength() <= 4 {
		return "Try an opener like 'tale', 'rose', or 'dine' to cover common letters."
	}
	return "Try an opener like 'raise', 'stone', or 'audit' to cover common letters."
}

func (g *Generator) absentOrDiversity() []string {
	absent := g.tracker.AbsentLetters()
	if len(absent) == 0 {
		return []string{"Good start! Try to use different letters in your next guess."}
	}
	parts := make([]string, len(absent))
	for i, letter := range absent {
		parts[i] = strings.ToUpper(string(letter))
	}
	return []string{"Avoid these letters: " + strings.Join(parts, ", ")}
}

func (g *Generator) confirmedOrReposition() []string {
	if report, ok := g.confirmedReport(); ok {
		return []string{report}
	}
	if g.tracker.HasMisplaced() {
		return []string{g.repositionHint()}
	}
	return []string{g.patternHint()}
}

// confirmedReport lists every confirmed position, 1-indexed for display.
func (g *Generator) confirmedReport() (string, bool) {
	correct := g.tracker.CorrectLetters()
	if len(correct) == 0 {
		return "", false
	}
	positions := make([]int, 0, len(correct))
	for pos := range correct {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = fmt.Sprintf("%s at position %d", strings.ToUpper(string(correct[pos])), pos+1)
	}
	return "You've correctly placed: " + strings.Join(parts, ", "), true
}

// repositionHint suggests an arrangement for the last guess's misplaced
// letters, or falls back to naming them.
func (g *Generator) repositionHint() string {
	if arrangement, ok := g.tracker.SuggestArrangement(g.mode); ok {
		return "Try this arrangement: " + strings.ToUpper(arrangement)
	}
	misplaced := g.tracker.MisplacedLetters()
	if len(misplaced) == 0 {
		return "Keep experimenting with new letter positions."
	}
	return "Keep these letters but try different positions: " + strings.ToUpper(string(misplaced))
}

// patternHint renders the confirmed-letter template plus a description
// of where misplaced letters may still go.
func (g *Generator) patternHint() string {
	tpl := g.tracker.Template()
	cells := make([]string, len(tpl))
	for i, b := range tpl {
		cells[i] = strings.ToUpper(string(b))
	}
	pattern := "Word pattern: " + strings.Join(cells, " ")

	candidates := g.tracker.CandidatePositions()
	if len(candidates) == 0 {
		return pattern
	}

	letters := g.tracker.MisplacedLetters()
	parts := make([]string, 0, len(letters))
	for _, letter := range letters {
		positions := candidates[letter]
		strs := make([]string, len(positions))
		for i, pos := range positions {
			strs[i] = fmt.Sprintf("%d", pos+1)
		}
		parts = append(parts, fmt.Sprintf("%s (positions: %s)", strings.ToUpper(string(letter)), strings.Join(strs, ", ")))
	}
	return pattern + "\nYou need to place: " + strings.Join(parts, ", ")
}

// rotation is the attempt 2-4 cycle applied from attempt 4 onward:
// reposition on even attempts, a fresh-letter suggestion on odd ones,
// with the history analysis as the last resort.
func (g *Generator) rotation(n int) []string {
	var out []string
	if n%2 == 0 && g.tracker.HasMisplaced() {
		out = append(out, g.repositionHint())
	}
	if letter, ok := g.untriedCommonLetter(); ok {
		out = append(out, fmt.Sprintf("Try a word with the letter '%s'.", strings.ToUpper(string(letter))))
	}
	out = append(out, g.analyzeHistory())
	return out
}

// untriedCommonLetter walks the frequency table for a letter not yet
// tried and not proven absent.
func (g *Generator) untriedCommonLetter() (byte, bool) {
	tried := make(map[byte]bool)
	for _, rec := range g.tracker.History() {
		for i := 0; i < len(rec.Guess); i++ {
			tried[rec.Guess[i]] = true
		}
	}
	for i := 0; i < len(letterFrequency); i++ {
		letter := letterFrequency[i]
		if !tried[letter] && !g.tracker.IsAbsent(letter) {
			return letter, true
		}
	}
	return 0, false
}

// criticalHint is the escalation for attempt 5 onward.
func (g *Generator) criticalHint() (string, bool) {
	t := g.tracker

	// Nearly solved: reveal one more letter outright, bracketed so the
	// player knows it was given away.
	if t.ConfirmedCount() >= 2 && t.UnknownCount() <= 2 && t.UnknownCount() > 0 {
		pos, letter, ok := t.RevealLetter()
		if ok {
			return fmt.Sprintf("The word has [%s] at position %d.", strings.ToUpper(string(letter)), pos+1), true
		}
	}

	// Misplaced letters: give the true slot of the first one.
	for _, letter := range t.MisplacedLetters() {
		if pos, ok := t.TruePosition(letter); ok {
			return fmt.Sprintf("Your misplaced %s belongs at position %d.", strings.ToUpper(string(letter)), pos+1), true
		}
	}

	// Little progress: reveal an arbitrary unconfirmed letter.
	if t.ConfirmedCount() < 2 {
		if pos, letter, ok := t.RevealLetter(); ok {
			return fmt.Sprintf("The word has [%s] at position %d.", strings.ToUpper(string(letter)), pos+1), true
		}
	}

	return "", false
}

// analyzeHistory is the free-form fallback: most-used letters, repeated
// unsuccessful adjacent pairs, and vowel-count advice.
func (g *Generator) analyzeHistory() string {
	history := g.tracker.History()
	if len(history) < 2 {
		return "Need more guesses to analyze patterns."
	}

	freq := make(map[byte]int)
	for _, rec := range history {
		for i := 0; i < len(rec.Guess); i++ {
			freq[rec.Guess[i]]++
		}
	}

	type letterCount struct {
		letter byte
		count  int
	}
	counts := make([]letterCount, 0, len(freq))
	for letter, count := range freq {
		counts = append(counts, letterCount{letter, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count == counts[j].count {
			return counts[i].letter < counts[j].letter
		}
		return counts[i].count > counts[j].count
	})
	if len(counts) > 3 {
		counts = counts[:3]
	}

	var b strings.Builder
	b.WriteString("Analysis of your guesses:\n")

	if pairs := repeatedDeadPairs(history); len(pairs) > 0 {
		b.WriteString("- You've repeated these unsuccessful patterns: " + strings.Join(pairs, ", ") + "\n")
	}

	parts := make([]string, len(counts))
	for i, lc := range counts {
		parts[i] = fmt.Sprintf("%s (%dx)", string(lc.letter), lc.count)
	}
	b.WriteString("- Most used letters: " + strings.Join(parts, ", ") + "\n")

	vowelsUsed := 0
	for _, v := range []byte{'a', 'e', 'i', 'o', 'u'} {
		if freq[v] > 0 {
			vowelsUsed++
		}
	}
	if vowelsUsed < 3 {
		b.WriteString("- Try using more vowels in your guesses\n")
	}

	return b.String()
}

// repeatedDeadPairs finds adjacent letter pairs, neither letter scoring
// correct, that appeared in more than one guess position.
func repeatedDeadPairs(history []game.GuessRecord) []string {
	pairCounts := make(map[string]int)
	for _, rec := range history {
		for i := 0; i+1 < len(rec.Guess); i++ {
			if rec.Statuses[i] != game.StatusCorrect && rec.Statuses[i+1] != game.StatusCorrect {
				pairCounts[rec.Guess[i:i+2]]++
			}
		}
	}
	var repeated []string
	for pair, count := range pairCounts {
		if count > 1 {
			repeated = append(repeated, pair)
		}
	}
	sort.Strings(repeated)
	return repeated
}
