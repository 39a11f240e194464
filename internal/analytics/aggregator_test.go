package analytics

import (
	"math"
	"testing"

	"github.com/wordletrack/wordletrack/internal/game"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRecordGame_Totals(t *testing.T) {
	a := NewAggregator()
	a.RecordGame("crane", 3, true, 40, game.DifficultyMedium, 0)
	a.RecordGame("stone", 6, false, 95, game.DifficultyMedium, 1)
	a.RecordGame("audit", 4, true, 60, game.DifficultyHard, 2)

	if a.GamesPlayed() != 3 {
		t.Fatalf("GamesPlayed = %d, want 3", a.GamesPlayed())
	}
	if a.GamesWon() != 2 {
		t.Fatalf("GamesWon = %d, want 2", a.GamesWon())
	}

	r := a.GenerateReport()
	if r == nil {
		t.Fatal("GenerateReport returned nil after three games")
	}
	if !almostEqual(r.SuccessRate, 200.0/3.0) {
		t.Errorf("SuccessRate = %v, want %v", r.SuccessRate, 200.0/3.0)
	}
	if !almostEqual(r.AvgAttempts, 13.0/3.0) {
		t.Errorf("AvgAttempts = %v, want %v", r.AvgAttempts, 13.0/3.0)
	}
	if got := r.DifficultyStats[game.DifficultyMedium]; got.Played != 2 || got.Won != 1 {
		t.Errorf("medium bucket = %+v, want Played=2 Won=1", got)
	}
	if got := r.DifficultyStats[game.DifficultyEasy]; got.Played != 0 {
		t.Errorf("easy bucket = %+v, want empty", got)
	}
}

func TestRecordGame_RunningAverageMatchesArithmeticMean(t *testing.T) {
	a := NewAggregator()
	samples := []int{2, 5, 3, 6, 4, 1}
	sum := 0
	for _, s := range samples {
		a.RecordGame("crane", s, true, float64(s*10), game.DifficultyMedium, 0)
		sum += s
	}

	want := float64(sum) / float64(len(samples))
	words := a.EasiestWords(1)
	if len(words) != 1 || words[0].Word != "crane" {
		t.Fatalf("EasiestWords = %v, want single entry for crane", words)
	}
	if !almostEqual(words[0].AvgAttempts, want) {
		t.Errorf("per-word avg = %v, want %v", words[0].AvgAttempts, want)
	}
}

func TestRecordGame_IdenticalSamplesKeepAverageFixed(t *testing.T) {
	a := NewAggregator()
	for i := 0; i < 7; i++ {
		a.RecordGame("pilot", 4, true, 30, game.DifficultyMedium, 0)
	}
	words := a.EasiestWords(1)
	if len(words) != 1 || !almostEqual(words[0].AvgAttempts, 4) {
		t.Errorf("avg after identical samples = %v, want exactly 4", words)
	}
}

func TestRecordGame_UnknownDifficultySkipsBucketOnly(t *testing.T) {
	a := NewAggregator()
	a.RecordGame("crane", 3, true, 40, game.Difficulty("nightmare"), 0)

	if a.GamesPlayed() != 1 || a.GamesWon() != 1 {
		t.Fatalf("global totals = %d/%d, want 1/1", a.GamesPlayed(), a.GamesWon())
	}
	for d, bucket := range a.GenerateReport().DifficultyStats {
		if bucket.Played != 0 {
			t.Errorf("bucket %q = %+v, want empty", d, bucket)
		}
	}
}

func TestWordRankings_RequireTwoOccurrences(t *testing.T) {
	a := NewAggregator()
	a.RecordGame("crane", 6, false, 90, game.DifficultyMedium, 0)
	if got := a.MostChallengingWords(3); len(got) != 0 {
		t.Fatalf("single-occurrence word ranked: %v", got)
	}

	a.RecordGame("crane", 6, false, 95, game.DifficultyMedium, 0)
	a.RecordGame("stone", 2, true, 20, game.DifficultyMedium, 0)
	a.RecordGame("stone", 2, true, 25, game.DifficultyMedium, 0)

	hard := a.MostChallengingWords(3)
	if len(hard) != 2 || hard[0].Word != "crane" {
		t.Errorf("MostChallengingWords = %v, want crane first", hard)
	}
	easy := a.EasiestWords(1)
	if len(easy) != 1 || easy[0].Word != "stone" {
		t.Errorf("EasiestWords = %v, want stone", easy)
	}
}

func TestPerformanceTrend_Windows(t *testing.T) {
	a := NewAggregator()
	for i := 0; i < 4; i++ {
		a.RecordGame("crane", 5, true, 60, game.DifficultyMedium, 0)
	}
	if a.PerformanceTrend(DefaultTrendWindow) != nil {
		t.Fatal("trend reported with fewer than window games")
	}

	// Fifth game fills the recent window but leaves nothing before it.
	a.RecordGame("crane", 5, true, 60, game.DifficultyMedium, 0)
	if a.PerformanceTrend(DefaultTrendWindow) != nil {
		t.Fatal("trend reported with empty comparison window")
	}

	// Sixth game: recent window is games 2..6, compared against game 1.
	a.RecordGame("crane", 3, true, 30, game.DifficultyMedium, 0)
	trend := a.PerformanceTrend(DefaultTrendWindow)
	if trend == nil {
		t.Fatal("trend nil after six games")
	}
	if !almostEqual(trend.RecentAvgAttempts, 23.0/5.0) {
		t.Errorf("RecentAvgAttempts = %v, want %v", trend.RecentAvgAttempts, 23.0/5.0)
	}
	if !almostEqual(trend.AttemptTrend, 23.0/5.0-5) {
		t.Errorf("AttemptTrend = %v, want %v", trend.AttemptTrend, 23.0/5.0-5)
	}
	if trend.AttemptTrend >= 0 {
		t.Error("dropping attempt counts should yield a negative trend")
	}
}

func TestPerformanceTrend_FullDoubleWindow(t *testing.T) {
	a := NewAggregator()
	for i := 0; i < 5; i++ {
		a.RecordGame("crane", 6, false, 100, game.DifficultyMedium, 0)
	}
	for i := 0; i < 5; i++ {
		a.RecordGame("crane", 2, true, 20, game.DifficultyMedium, 0)
	}

	trend := a.PerformanceTrend(DefaultTrendWindow)
	if trend == nil {
		t.Fatal("trend nil after ten games")
	}
	if !almostEqual(trend.AttemptTrend, -4) {
		t.Errorf("AttemptTrend = %v, want -4", trend.AttemptTrend)
	}
	if !almostEqual(trend.TimeTrend, -80) {
		t.Errorf("TimeTrend = %v, want -80", trend.TimeTrend)
	}
}

func TestGenerateReport_NilWhenEmpty(t *testing.T) {
	if NewAggregator().GenerateReport() != nil {
		t.Fatal("empty aggregator should produce a nil report")
	}
}

func TestRecordGuess_FirstAndDistinctLetters(t *testing.T) {
	a := NewAggregator()
	a.RecordGuess("Llama", game.DifficultyMedium)
	a.RecordGuess("lemon", game.DifficultyMedium)

	first := a.FirstLetterCounts()
	if first['l'] != 2 {
		t.Errorf("first letter 'l' count = %d, want 2", first['l'])
	}
	// 'l' appears twice in llama but counts once per guess.
	if a.letterFreq['l'-'a'] != 2 {
		t.Errorf("letter 'l' usage = %d, want 2", a.letterFreq['l'-'a'])
	}
	if a.letterFreq['m'-'a'] != 2 {
		t.Errorf("letter 'm' usage = %d, want 2", a.letterFreq['m'-'a'])
	}
}

func TestLetterAndPositionRates(t *testing.T) {
	a := NewAggregator()
	a.RecordLetterFeedback('e', 4, game.StatusCorrect)
	a.RecordLetterFeedback('e', 2, game.StatusPresent)
	a.RecordLetterFeedback('e', 0, game.StatusAbsent)
	a.RecordLetterFeedback('q', 0, game.StatusAbsent)

	rates := a.LetterSuccessRates()
	er, ok := rates['e']
	if !ok {
		t.Fatal("no rate recorded for 'e'")
	}
	if er.Attempts != 3 || !almostEqual(er.CorrectRate, 1.0/3.0) || !almostEqual(er.OverallRate, 2.0/3.0) {
		t.Errorf("rate for 'e' = %+v", er)
	}
	if qr := rates['q']; !almostEqual(qr.OverallRate, 0) {
		t.Errorf("rate for 'q' = %+v, want zero success", qr)
	}

	pos := a.PositionSuccessRates()
	if pr := pos[4]['e']; pr.Attempts != 1 || !almostEqual(pr.CorrectRate, 1) {
		t.Errorf("position 4 rate for 'e' = %+v", pr)
	}
	if pr := pos[2]['e']; !almostEqual(pr.CorrectRate, 0) {
		t.Errorf("position 2 rate for 'e' = %+v, want no correct placements", pr)
	}
}

func TestDifficultyRecommendation(t *testing.T) {
	t.Run("too few games", func(t *testing.T) {
		a := NewAggregator()
		a.RecordGame("crane", 3, true, 30, game.DifficultyMedium, 0)
		if got := a.DifficultyRecommendation(); got != "Play more games to get a personalized difficulty recommendation." {
			t.Errorf("recommendation = %q", got)
		}
	})

	t.Run("low success suggests easier", func(t *testing.T) {
		a := NewAggregator()
		for i := 0; i < 9; i++ {
			a.RecordGame("crane", 6, false, 90, game.DifficultyMedium, 0)
		}
		a.RecordGame("crane", 4, true, 50, game.DifficultyMedium, 0)
		if got := a.DifficultyRecommendation(); got != "Consider trying Easy difficulty to build confidence." {
			t.Errorf("recommendation = %q", got)
		}
	})

	t.Run("strong play suggests harder", func(t *testing.T) {
		a := NewAggregator()
		for i := 0; i < 10; i++ {
			a.RecordGame("crane", 2, true, 20, game.DifficultyMedium, 0)
		}
		if got := a.DifficultyRecommendation(); got != "You're doing great! Challenge yourself with Hard difficulty." {
			t.Errorf("recommendation = %q", got)
		}
	})

	t.Run("improving trend encourages", func(t *testing.T) {
		a := NewAggregator()
		for i := 0; i < 5; i++ {
			a.RecordGame("crane", 6, false, 90, game.DifficultyMedium, 0)
		}
		for i := 0; i < 5; i++ {
			a.RecordGame("crane", 4, i >= 3, 50, game.DifficultyMedium, 0)
		}
		if got := a.DifficultyRecommendation(); got != "You're improving! Continue with your current difficulty or try one level higher." {
			t.Errorf("recommendation = %q", got)
		}
	})

	t.Run("solid record affirms level", func(t *testing.T) {
		a := NewAggregator()
		for i := 0; i < 6; i++ {
			a.RecordGame("crane", 4, true, 50, game.DifficultyMedium, 0)
		}
		for i := 0; i < 4; i++ {
			a.RecordGame("crane", 4, false, 50, game.DifficultyMedium, 0)
		}
		if got := a.DifficultyRecommendation(); got != "You're doing well at your current difficulty level." {
			t.Errorf("recommendation = %q", got)
		}
	})
}
