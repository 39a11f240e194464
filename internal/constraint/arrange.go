package constraint

import (
	"github.com/wordletrack/wordletrack/internal/game"
)

// PlacementMode selects how misplaced letters are positioned when
// building an arrangement suggestion.
type PlacementMode int

const (
	// PlacementDeduced places misplaced letters into open template slots
	// consistent with their candidate-position sets. The arrangement is
	// a legal possibility, not a guaranteed answer.
	PlacementDeduced PlacementMode = iota

	// PlacementOracle looks up each misplaced letter's true position in
	// the secret word. Stronger than deduction; effectively a reveal.
	PlacementOracle
)

// SuggestArrangement proposes a full-word arrangement that keeps every
// confirmed letter and repositions the letters marked present in the
// most recent guess. It returns ok=false when there is no history, the
// last guess had no misplaced letters, or no placement exists.
func (t *Tracker) SuggestArrangement(mode PlacementMode) (string, bool) {
	if len(t.history) == 0 {
		return "", false
	}
	last := t.history[len(t.history)-1]

	var misplaced []byte
	for i, status := range last.Statuses {
		if status == game.StatusPresent {
			misplaced = append(misplaced, last.Guess[i])
		}
	}
	if len(misplaced) == 0 {
		return "", false
	}

	tpl := t.Template()
	if mode == PlacementOracle {
		return t.placeByOracle(tpl, misplaced)
	}
	return t.placeByDeduction(tpl, misplaced)
}

// placeByOracle fills each misplaced letter at a position where it truly
// occurs in the secret word, skipping slots already confirmed.
func (t *Tracker) placeByOracle(tpl, misplaced []byte) (string, bool) {
	placed := false
	for _, letter := range misplaced {
		for pos := 0; pos < len(t.secret); pos++ {
			if t.secret[pos] == letter && tpl[pos] == '_' {
				tpl[pos] = letter
				placed = true
				break
			}
		}
	}
	if !placed {
		return "", false
	}
	return string(tpl), true
}

// placeByDeduction places misplaced letters into open slots allowed by
// their candidate sets. Letters down to a single legal slot go first;
// the rest fill remaining open slots in order.
func (t *Tracker) placeByDeduction(tpl, misplaced []byte) (string, bool) {
	open := make(map[int]bool)
	openCount := 0
	for pos, b := range tpl {
		if b == '_' {
			open[pos] = true
			openCount++
		}
	}
	if openCount < len(misplaced) {
		return "", false
	}

	remaining := make([]byte, 0, len(misplaced))

	// First pass: letters with exactly one viable slot.
	for _, letter := range misplaced {
		set := t.candidates[letter]
		var viable []int
		for pos := range set {
			if open[pos] {
				viable = append(viable, pos)
			}
		}
		if len(viable) == 1 {
			pos := viable[0]
			tpl[pos] = letter
			delete(open, pos)
		} else {
			remaining = append(remaining, letter)
		}
	}

	// Second pass: remaining letters into remaining viable slots.
	for _, letter := range remaining {
		set := t.candidates[letter]
		target := -1
		for pos := 0; pos < len(tpl); pos++ {
			if !open[pos] {
				continue
			}
			if set == nil || set[pos] {
				target = pos
				break
			}
		}
		if target < 0 {
			continue
		}
		tpl[target] = letter
		delete(open, target)
	}

	result := string(tpl)
	if result == string(t.Template()) {
		return "", false
	}
	return result, true
}
