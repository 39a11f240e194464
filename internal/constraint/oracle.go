package constraint

// Oracle accessors for escalated hints. These consult the secret word
// directly and are the only reads of it besides oracle-mode placement;
// the constraint update rules never use them.

// ConfirmedCount returns how many positions are confirmed.
func (t *Tracker) ConfirmedCount() int {
	return len(t.correct)
}

// UnknownCount returns how many positions are still unconfirmed.
func (t *Tracker) UnknownCount() int {
	return t.wordLength - len(t.correct)
}

// RevealLetter returns the secret letter at the first unconfirmed
// position. ok is false when every position is confirmed.
func (t *Tracker) RevealLetter() (pos int, letter byte, ok bool) {
	for i := 0; i < t.wordLength; i++ {
		if _, confirmed := t.correct[i]; !confirmed {
			return i, t.secret[i], true
		}
	}
	return 0, 0, false
}

// TruePosition returns a position where the letter occurs in the secret
// word and is not yet confirmed there. ok is false when the letter has
// no such position.
func (t *Tracker) TruePosition(letter byte) (int, bool) {
	for i := 0; i < t.wordLength; i++ {
		if t.secret[i] != letter {
			continue
		}
		if t.correct[i] != letter {
			return i, true
		}
	}
	return 0, false
}

// MisplacedLetters returns the letters with non-empty candidate sets,
// in alphabetical order.
func (t *Tracker) MisplacedLetters() []byte {
	out := make([]byte, 0, len(t.candidates))
	for letter := byte('a'); letter <= 'z'; letter++ {
		if _, ok := t.candidates[letter]; ok {
			out = append(out, letter)
		}
	}
	return out
}
