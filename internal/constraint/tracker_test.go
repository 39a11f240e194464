package constraint

import (
	"testing"

	"github.com/wordletrack/wordletrack/internal/game"
)

func record(t *testing.T, tr *Tracker, secret, guess string) game.GuessRecord {
	t.Helper()
	statuses, err := game.Evaluate(secret, guess)
	if err != nil {
		t.Fatalf("Evaluate(%q, %q): %v", secret, guess, err)
	}
	rec := game.GuessRecord{Guess: guess, Statuses: statuses}
	tr.Record(rec)
	return rec
}

func TestRecord_CorrectLetters(t *testing.T) {
	tr := NewTracker("crane")
	record(t, tr, "crane", "crown")

	correct := tr.CorrectLetters()
	if correct[0] != 'c' || correct[1] != 'r' {
		t.Errorf("CorrectLetters = %v, want c at 0 and r at 1", correct)
	}
	if len(correct) != 2 {
		t.Errorf("len(CorrectLetters) = %d, want 2", len(correct))
	}
}

func TestRecord_CandidateInitAndNarrowing(t *testing.T) {
	tr := NewTracker("crane")
	// "nacho": n present at 0, a correct at 1? no — crane[1]=r.
	// crane = c,r,a,n,e; nacho = n,a,c,h,o.
	// n: present (pos 0), a: present (pos 1), c: present (pos 2), h/o absent.
	record(t, tr, "crane", "nacho")

	cands := tr.CandidatePositions()
	// 'n' seen present at 0: candidates are every position except 0.
	if got := cands['n']; len(got) != 4 {
		t.Errorf("candidates for n = %v, want 4 positions", got)
	}
	for _, pos := range cands['n'] {
		if pos == 0 {
			t.Error("position 0 must be excluded for n")
		}
	}

	// Second sighting narrows instead of re-initializing.
	// "annoy": a present(0)? crane has a at 2 → a:0 mismatch → present.
	// n at 1: crane[1]=r → present (n count available). n at 2: a → but n count
	// consumed? crane has one n. First n (pos1) consumes it, second n absent.
	record(t, tr, "crane", "annoy")
	cands = tr.CandidatePositions()
	for _, pos := range cands['n'] {
		if pos == 0 || pos == 1 {
			t.Errorf("candidates for n still contain %d after narrowing", pos)
		}
	}
}

func TestRecord_CandidateDroppedWhenConfirmed(t *testing.T) {
	tr := NewTracker("crane")
	record(t, tr, "crane", "trace") // r, a, e correct; c present at 3
	record(t, tr, "crane", "cares") // c correct at 0

	cands := tr.CandidatePositions()
	if positions, ok := cands['c']; ok {
		for _, pos := range positions {
			if pos == 0 {
				t.Errorf("c still candidate at confirmed position 0: %v", positions)
			}
		}
	}
	correct := tr.CorrectLetters()
	if correct[0] != 'c' {
		t.Errorf("c not confirmed at 0: %v", correct)
	}
}

func TestRecord_AbsentElsewhereGuard(t *testing.T) {
	// Secret has one 'l'; a guess with two l's marks one present and one
	// absent. The letter must not be blacklisted.
	tr := NewTracker("melon")
	record(t, tr, "melon", "llama")

	if tr.IsAbsent('l') {
		t.Error("l blacklisted despite being present elsewhere in the same guess")
	}
	if !tr.IsAbsent('a') {
		t.Error("a should be absent")
	}
}

func TestRecord_AbsentMonotonicity(t *testing.T) {
	tr := NewTracker("crane")
	record(t, tr, "crane", "foggy")

	for _, letter := range []byte{'f', 'o', 'g', 'y'} {
		if !tr.IsAbsent(letter) {
			t.Errorf("%q should be absent", letter)
		}
	}

	// A letter proven absent must never appear confirmed afterwards; absent
	// letters are disjoint from correct values for honest feedback.
	record(t, tr, "crane", "crane")
	for _, letter := range tr.CorrectLetters() {
		if tr.IsAbsent(letter) {
			t.Errorf("letter %q both confirmed and absent", letter)
		}
	}
}

func TestTemplate(t *testing.T) {
	tr := NewTracker("crane")
	record(t, tr, "crane", "crown")
	if got := string(tr.Template()); got != "cr___" {
		t.Errorf("Template = %q, want %q", got, "cr___")
	}
}

func TestSuggestArrangement_Oracle(t *testing.T) {
	tr := NewTracker("crane")
	record(t, tr, "crane", "trace") // template _ra_e, c misplaced at 3

	got, ok := tr.SuggestArrangement(PlacementOracle)
	if !ok {
		t.Fatal("expected a suggestion")
	}
	// Oracle places c at its true slot 0.
	if got != "cra_e" {
		t.Errorf("oracle arrangement = %q, want %q", got, "cra_e")
	}
}

func TestSuggestArrangement_DeducedStaysLegal(t *testing.T) {
	tr := NewTracker("crane")
	record(t, tr, "crane", "trace")

	got, ok := tr.SuggestArrangement(PlacementDeduced)
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if len(got) != 5 {
		t.Fatalf("arrangement length = %d", len(got))
	}

	// Confirmed letters must be preserved.
	if got[1] != 'r' || got[2] != 'a' || got[4] != 'e' {
		t.Errorf("arrangement %q does not keep confirmed letters", got)
	}
	// The misplaced c must not return to position 3, its only excluded slot,
	// which leaves exactly one open candidate: position 0.
	if got[3] == 'c' {
		t.Errorf("arrangement %q re-places c at its excluded position", got)
	}
	if got[0] != 'c' {
		t.Errorf("arrangement %q should deduce c at position 0", got)
	}
}

func TestSuggestArrangement_NoHistory(t *testing.T) {
	tr := NewTracker("crane")
	if _, ok := tr.SuggestArrangement(PlacementDeduced); ok {
		t.Error("expected no suggestion without history")
	}
}

func TestSuggestArrangement_NoMisplaced(t *testing.T) {
	tr := NewTracker("crane")
	record(t, tr, "crane", "foggy")
	if _, ok := tr.SuggestArrangement(PlacementDeduced); ok {
		t.Error("expected no suggestion when last guess had no present letters")
	}
}
