package player

import (
	"testing"

	"github.com/wordletrack/wordletrack/internal/game"
)

func TestRecordGame_StreakTracking(t *testing.T) {
	p := New("test")
	p.RecordGame("crane", 3, true, 30)
	p.RecordGame("stone", 4, true, 40)
	p.RecordGame("audit", 6, false, 90)
	p.RecordGame("pilot", 2, true, 20)

	if p.Streak() != 1 {
		t.Errorf("Streak = %d, want 1", p.Streak())
	}
	if p.MaxStreak() != 2 {
		t.Errorf("MaxStreak = %d, want 2", p.MaxStreak())
	}

	s := p.Stats()
	if s.GamesPlayed != 4 || s.GamesWon != 3 {
		t.Errorf("stats = %d played / %d won, want 4/3", s.GamesPlayed, s.GamesWon)
	}
	if s.WinRate != 75 {
		t.Errorf("WinRate = %v, want 75", s.WinRate)
	}
	if s.AvgAttempts != 3.75 {
		t.Errorf("AvgAttempts = %v, want 3.75", s.AvgAttempts)
	}
}

func TestRecordGame_HintCountConsumedPerGame(t *testing.T) {
	p := New("")
	p.UseHint()
	p.UseHint()
	rec := p.RecordGame("crane", 4, true, 50)
	if rec.HintsUsed != 2 {
		t.Errorf("HintsUsed = %d, want 2", rec.HintsUsed)
	}
	if p.HintsUsed() != 0 {
		t.Errorf("hint counter not reset, got %d", p.HintsUsed())
	}

	rec = p.RecordGame("stone", 5, false, 70)
	if rec.HintsUsed != 0 {
		t.Errorf("second game inherited hints: %d", rec.HintsUsed)
	}
}

func TestStats_EmptyProfile(t *testing.T) {
	s := New("").Stats()
	if s.Name != "Player" {
		t.Errorf("Name = %q, want default", s.Name)
	}
	if s.WinRate != 0 || s.AvgAttempts != 0 || s.AvgTime != 0 {
		t.Errorf("empty profile averages nonzero: %+v", s)
	}
}

func TestRecommendedDifficulty(t *testing.T) {
	tests := []struct {
		name   string
		played int
		won    int
		avg    int
		want   game.Difficulty
	}{
		{"too few games", 3, 3, 2, game.DifficultyMedium},
		{"dominant record", 10, 9, 3, game.DifficultyHard},
		{"struggling", 10, 2, 5, game.DifficultyEasy},
		{"middling", 10, 5, 4, game.DifficultyMedium},
		{"high wins but slow", 10, 9, 5, game.DifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("test")
			for i := 0; i < tt.played; i++ {
				p.RecordGame("crane", tt.avg, i < tt.won, 30)
			}
			if got := p.RecommendedDifficulty(); got != tt.want {
				t.Errorf("RecommendedDifficulty = %v, want %v", got, tt.want)
			}
		})
	}
}
