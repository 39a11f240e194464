package stats

import (
	"strings"
	"testing"

	"github.com/wordletrack/wordletrack/internal/analytics"
	"github.com/wordletrack/wordletrack/internal/game"
	"github.com/wordletrack/wordletrack/internal/player"
)

func TestView_EmptyState(t *testing.T) {
	s := New(analytics.NewAggregator(), player.New("test"))
	view := s.View(80, 24)
	if !strings.Contains(view, "No games recorded yet.") {
		t.Errorf("empty state missing: %q", view)
	}
}

func TestRenderReport_Sections(t *testing.T) {
	agg := analytics.NewAggregator()
	prof := player.New("test")
	for i := 0; i < 2; i++ {
		agg.RecordGame("crane", 5, i == 1, 60, game.DifficultyMedium, 0)
		agg.RecordGame("stone", 2, true, 20, game.DifficultyHard, 0)
		prof.RecordGame("crane", 5, i == 1, 60)
		prof.RecordGame("stone", 2, true, 20)
	}

	out := RenderReport(agg.GenerateReport(), prof.Stats(), agg.DifficultyRecommendation(), 60)

	for _, want := range []string{"Overview", "By difficulty", "Hardest words", "Easiest words", "CRANE", "STONE", "MEDIUM", "HARD"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderFirstLetters(t *testing.T) {
	counts := map[byte]int{'c': 3, 's': 5, 'a': 1}
	got := RenderFirstLetters(counts, 2)
	if got != "S (5), C (3)" {
		t.Errorf("RenderFirstLetters = %q", got)
	}
}
