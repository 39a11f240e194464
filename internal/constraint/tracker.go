// Package constraint accumulates letter knowledge across a session's
// guesses: confirmed positions, candidate positions for misplaced
// letters, and letters proven absent.
package constraint

import (
	"github.com/wordletrack/wordletrack/internal/game"
)

// Tracker holds the constraint state for one session. It is reset by
// creating a new Tracker at game start and is not safe for concurrent
// mutation.
type Tracker struct {
	wordLength int
	secret     string

	// correct maps position -> confirmed letter. Entries are permanent
	// for the session.
	correct map[int]byte

	// candidates maps a misplaced letter to the positions where it is
	// still believed possible. A letter is dropped entirely once its
	// set empties.
	candidates map[byte]map[int]bool

	// absent holds letters proven to occur nowhere in the secret word,
	// given everything observed so far.
	absent map[byte]bool

	// history is the append-only record of all guesses this session.
	history []game.GuessRecord
}

// NewTracker creates an empty tracker for a session. The secret word is
// retained only for oracle-mode arrangement suggestions; the constraint
// update rules never consult it.
func NewTracker(secret string) *Tracker {
	return &Tracker{
		wordLength: len(secret),
		secret:     secret,
		correct:    make(map[int]byte),
		candidates: make(map[byte]map[int]bool),
		absent:     make(map[byte]bool),
	}
}

// Record folds one evaluated guess into the constraint state. It must be
// called exactly once per guess, with the statuses the evaluator
// computed for that guess.
func (t *Tracker) Record(rec game.GuessRecord) {
	t.history = append(t.history, rec)

	for i := 0; i < len(rec.Guess); i++ {
		letter := rec.Guess[i]
		switch rec.Statuses[i] {
		case game.StatusCorrect:
			t.correct[i] = letter
			// A letter confirmed here is no longer "misplaced" here.
			t.removeCandidate(letter, i)

		case game.StatusPresent:
			if t.candidates[letter] == nil {
				// First sighting: the letter occurs somewhere, just not at i.
				set := make(map[int]bool, t.wordLength-1)
				for pos := 0; pos < t.wordLength; pos++ {
					if pos != i {
						set[pos] = true
					}
				}
				t.candidates[letter] = set
			} else {
				t.removeCandidate(letter, i)
			}

		case game.StatusAbsent:
			// Only blacklist when no guess, including this one, ever saw
			// the letter correct or present elsewhere. This protects
			// duplicate-letter guesses where one occurrence scores and
			// another does not.
			if !t.seenElsewhere(letter) {
				t.absent[letter] = true
			}
		}
	}
}

// removeCandidate deletes a position from a letter's candidate set and
// drops the letter once the set empties.
func (t *Tracker) removeCandidate(letter byte, pos int) {
	set, ok := t.candidates[letter]
	if !ok {
		return
	}
	delete(set, pos)
	if len(set) == 0 {
		delete(t.candidates, letter)
	}
}

// seenElsewhere scans the full guess history for any correct or present
// occurrence of the letter.
func (t *Tracker) seenElsewhere(letter byte) bool {
	for _, rec := range t.history {
		for i := 0; i < len(rec.Guess); i++ {
			if rec.Guess[i] != letter {
				continue
			}
			if rec.Statuses[i] == game.StatusCorrect || rec.Statuses[i] == game.StatusPresent {
				return true
			}
		}
	}
	return false
}

// WordLength returns the session's word length.
func (t *Tracker) WordLength() int {
	return t.wordLength
}

// CorrectLetters returns a copy of the confirmed position -> letter map.
func (t *Tracker) CorrectLetters() map[int]byte {
	out := make(map[int]byte, len(t.correct))
	for pos, letter := range t.correct {
		out[pos] = letter
	}
	return out
}

// CandidatePositions returns a copy of the misplaced-letter candidate sets.
func (t *Tracker) CandidatePositions() map[byte][]int {
	out := make(map[byte][]int, len(t.candidates))
	for letter, set := range t.candidates {
		positions := make([]int, 0, len(set))
		for pos := 0; pos < t.wordLength; pos++ {
			if set[pos] {
				positions = append(positions, pos)
			}
		}
		out[letter] = positions
	}
	return out
}

// AbsentLetters returns the letters proven absent, in alphabetical order.
func (t *Tracker) AbsentLetters() []byte {
	out := make([]byte, 0, len(t.absent))
	for letter := 'a'; letter <= 'z'; letter++ {
		if t.absent[byte(letter)] {
			out = append(out, byte(letter))
		}
	}
	return out
}

// IsAbsent reports whether a letter is proven absent.
func (t *Tracker) IsAbsent(letter byte) bool {
	return t.absent[letter]
}

// HasMisplaced reports whether any letter still has candidate positions.
func (t *Tracker) HasMisplaced() bool {
	return len(t.candidates) > 0
}

// History returns the append-only guess history.
func (t *Tracker) History() []game.GuessRecord {
	return t.history
}

// Attempts returns the number of guesses recorded so far.
func (t *Tracker) Attempts() int {
	return len(t.history)
}

// Template builds a word-length slice of '_' placeholders with every
// confirmed position filled in.
func (t *Tracker) Template() []byte {
	tpl := make([]byte, t.wordLength)
	for i := range tpl {
		tpl[i] = '_'
	}
	for pos, letter := range t.correct {
		tpl[pos] = letter
	}
	return tpl
}
