package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session tracks a single playthrough against one secret word. It is
// created at game start, mutated once per guess from the UI goroutine,
// and discarded at game end; nothing carries over between sessions.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// SecretWord is the lowercase word being guessed, fixed for the session.
	SecretWord string

	// WordLength is len(SecretWord); every guess must match it.
	WordLength int

	// MaxAttempts is the ceiling on guesses.
	MaxAttempts int

	// Difficulty the word was drawn at.
	Difficulty Difficulty

	// StartTime is when the session began, for wall-clock duration.
	StartTime time.Time

	// Attempts is the number of guesses submitted so far.
	Attempts int

	// HintsUsed counts hint requests during this session.
	HintsUsed int

	Finished bool
	Won      bool
}

// NewSession starts a session for the given secret word.
func NewSession(secret string, maxAttempts int, difficulty Difficulty) *Session {
	secret = strings.ToLower(secret)
	return &Session{
		ID:          uuid.NewString(),
		SecretWord:  secret,
		WordLength:  len(secret),
		MaxAttempts: maxAttempts,
		Difficulty:  difficulty,
		StartTime:   time.Now(),
	}
}

// SubmitGuess evaluates a guess and advances the session state. The guess
// must be lowercase and already validated against the word source; a
// length mismatch is rejected without mutating the session.
func (s *Session) SubmitGuess(guess string) (GuessRecord, error) {
	if s.Finished {
		return GuessRecord{}, fmt.Errorf("submit guess: session already finished")
	}
	statuses, err := Evaluate(s.SecretWord, guess)
	if err != nil {
		return GuessRecord{}, err
	}

	s.Attempts++
	if guess == s.SecretWord {
		s.Finished = true
		s.Won = true
	} else if s.Attempts >= s.MaxAttempts {
		s.Finished = true
	}

	return GuessRecord{Guess: guess, Statuses: statuses}, nil
}

// Duration returns the wall-clock time elapsed since the session started.
func (s *Session) Duration() time.Duration {
	return time.Since(s.StartTime)
}
