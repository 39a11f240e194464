package game

import "testing"

func TestEvaluate_AllCorrect(t *testing.T) {
	words := []string{"crane", "allow", "error", "a", "zzzzz"}
	for _, w := range words {
		statuses, err := Evaluate(w, w)
		if err != nil {
			t.Fatalf("Evaluate(%q, %q): %v", w, w, err)
		}
		for i, s := range statuses {
			if s != StatusCorrect {
				t.Errorf("Evaluate(%q, %q)[%d] = %v, want correct", w, w, i, s)
			}
		}
	}
}

func TestEvaluate_DuplicateLetters(t *testing.T) {
	tests := []struct {
		secret string
		guess  string
		want   []LetterStatus
	}{
		// "error" has one 'e', three 'r', one 'o'. Guess "rarer":
		// the r's at positions 2 and 4 match exactly, the leading r
		// and the e come from the remaining multiset, and a is absent.
		{"error", "rarer", []LetterStatus{StatusPresent, StatusAbsent, StatusCorrect, StatusPresent, StatusCorrect}},
		// "allow" has exactly two l's. The l at position 1 matches
		// exactly, the other l and one a are present, and the second
		// a finds nothing left to claim.
		{"allow", "llama", []LetterStatus{StatusPresent, StatusCorrect, StatusPresent, StatusAbsent, StatusAbsent}},
		// "crane" vs "trace": r, a, e match exactly; the lone c is presented
		// from the remaining multiset; t finds nothing.
		{"crane", "trace", []LetterStatus{StatusAbsent, StatusCorrect, StatusCorrect, StatusPresent, StatusCorrect}},
		// Exact match must win over an earlier present claim.
		{"abbey", "bebop", []LetterStatus{StatusPresent, StatusPresent, StatusCorrect, StatusAbsent, StatusAbsent}},
	}

	for _, tt := range tests {
		got, err := Evaluate(tt.secret, tt.guess)
		if err != nil {
			t.Fatalf("Evaluate(%q, %q): %v", tt.secret, tt.guess, err)
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("Evaluate(%q, %q)[%d] = %v, want %v", tt.secret, tt.guess, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEvaluate_NeverOverCredits(t *testing.T) {
	secret := "error"
	guess := "rarer"
	statuses, err := Evaluate(secret, guess)
	if err != nil {
		t.Fatal(err)
	}

	credited := map[byte]int{}
	for i, s := range statuses {
		if s == StatusCorrect || s == StatusPresent {
			credited[guess[i]]++
		}
	}
	inSecret := map[byte]int{}
	for i := 0; i < len(secret); i++ {
		inSecret[secret[i]]++
	}
	for letter, n := range credited {
		if n > inSecret[letter] {
			t.Errorf("letter %q credited %d times, occurs %d times in secret", letter, n, inSecret[letter])
		}
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	if _, err := Evaluate("crane", "cran"); err == nil {
		t.Error("expected error for short guess")
	}
	if _, err := Evaluate("crane", "cranes"); err == nil {
		t.Error("expected error for long guess")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"medium", DifficultyMedium, true},
		{"hard", DifficultyHard, true},
		{"extreme", DifficultyMedium, false},
		{"", DifficultyMedium, false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDifficulty(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSession_WinAndLoss(t *testing.T) {
	s := NewSession("crane", 3, DifficultyMedium)
	if s.WordLength != 5 {
		t.Fatalf("WordLength = %d, want 5", s.WordLength)
	}

	rec, err := s.SubmitGuess("trace")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Statuses) != 5 || s.Finished {
		t.Errorf("after one wrong guess: finished=%v", s.Finished)
	}

	if _, err := s.SubmitGuess("crane"); err != nil {
		t.Fatal(err)
	}
	if !s.Finished || !s.Won || s.Attempts != 2 {
		t.Errorf("after winning guess: finished=%v won=%v attempts=%d", s.Finished, s.Won, s.Attempts)
	}

	if _, err := s.SubmitGuess("crane"); err == nil {
		t.Error("expected error submitting to a finished session")
	}

	// Loss path: exhaust attempts.
	s = NewSession("crane", 2, DifficultyHard)
	s.SubmitGuess("trace")
	s.SubmitGuess("brace")
	if !s.Finished || s.Won {
		t.Errorf("after exhausting attempts: finished=%v won=%v", s.Finished, s.Won)
	}
}

func TestSession_RejectsBadLengthWithoutMutating(t *testing.T) {
	s := NewSession("crane", 6, DifficultyEasy)
	if _, err := s.SubmitGuess("cat"); err == nil {
		t.Fatal("expected length error")
	}
	if s.Attempts != 0 {
		t.Errorf("Attempts = %d after rejected guess, want 0", s.Attempts)
	}
}
