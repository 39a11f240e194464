package game

import "fmt"

// Evaluate scores a guess against the secret word and returns one status
// per position. Both strings must be lowercase and of equal length; a
// length mismatch is a caller error and is rejected before any scoring.
//
// The algorithm is the classic two-pass multiset scoring: exact matches
// are resolved first and consume their letter from the secret's letter
// counts, then remaining positions are marked present only while counts
// remain. This keeps duplicated guess letters from being credited more
// times than the letter occurs in the secret (secret "error" vs guess
// "rarer" must not over-credit 'r').
func Evaluate(secret, guess string) ([]LetterStatus, error) {
	if len(guess) != len(secret) {
		return nil, fmt.Errorf("evaluate: guess length %d does not match word length %d", len(guess), len(secret))
	}

	statuses := make([]LetterStatus, len(guess))

	var remaining [26]int
	for i := 0; i < len(secret); i++ {
		if guess[i] == secret[i] {
			statuses[i] = StatusCorrect
		} else if idx := letterIndex(secret[i]); idx >= 0 {
			remaining[idx]++
		}
	}

	for i := 0; i < len(guess); i++ {
		if statuses[i] == StatusCorrect {
			continue
		}
		idx := letterIndex(guess[i])
		if idx >= 0 && remaining[idx] > 0 {
			statuses[i] = StatusPresent
			remaining[idx]--
		}
	}

	return statuses, nil
}

// letterIndex maps a lowercase ASCII letter to 0..25, or -1 otherwise.
func letterIndex(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}
