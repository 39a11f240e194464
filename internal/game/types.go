package game

// LetterStatus is the evaluation result for a single letter of a guess.
type LetterStatus int

const (
	// StatusAbsent means the letter does not occur in the secret word, or
	// all of its occurrences are already accounted for by other positions.
	StatusAbsent LetterStatus = iota

	// StatusPresent means the letter occurs in the secret word but not at
	// this position.
	StatusPresent

	// StatusCorrect means the letter matches the secret word at this
	// exact position.
	StatusCorrect
)

// String returns the lowercase name used for rendering and persistence.
func (s LetterStatus) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusPresent:
		return "present"
	default:
		return "absent"
	}
}

// Difficulty selects the word pool a game draws from.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty maps a string to a Difficulty. The second return value
// reports whether the input named one of the recognized levels.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return DifficultyMedium, false
}

// Difficulties lists the recognized levels in ascending order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// GuessRecord pairs a submitted guess with the statuses the evaluator
// computed for it. Records are immutable once created.
type GuessRecord struct {
	Guess    string
	Statuses []LetterStatus
}
