package analytics

import (
	"sort"

	"github.com/wordletrack/wordletrack/internal/game"
)

// DefaultTrendWindow is the game count compared on each side of a trend.
const DefaultTrendWindow = 5

// minWordOccurrences gates words out of the rankings until their running
// average means something.
const minWordOccurrences = 2

// MostChallengingWords returns up to n words with the highest running
// average attempts, among words recorded at least twice.
func (a *Aggregator) MostChallengingWords(n int) []WordAverage {
	ranked := a.rankedWords(func(i, j WordAverage) bool {
		if i.AvgAttempts == j.AvgAttempts {
			return i.Word < j.Word
		}
		return i.AvgAttempts > j.AvgAttempts
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// EasiestWords returns up to n words with the lowest running average
// attempts, among words recorded at least twice.
func (a *Aggregator) EasiestWords(n int) []WordAverage {
	ranked := a.rankedWords(func(i, j WordAverage) bool {
		if i.AvgAttempts == j.AvgAttempts {
			return i.Word < j.Word
		}
		return i.AvgAttempts < j.AvgAttempts
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func (a *Aggregator) rankedWords(less func(i, j WordAverage) bool) []WordAverage {
	eligible := make([]WordAverage, 0, len(a.words))
	for word, ws := range a.words {
		if ws.Count >= minWordOccurrences {
			eligible = append(eligible, WordAverage{Word: word, AvgAttempts: ws.AvgAttempts})
		}
	}
	sort.Slice(eligible, func(i, j int) bool { return less(eligible[i], eligible[j]) })
	return eligible
}

// PerformanceTrend compares the most recent window games against the
// window before them (or everything before the recent window when fewer
// than 2*window games exist). Returns nil when fewer than window games
// have been recorded or there is nothing to compare against.
func (a *Aggregator) PerformanceTrend(window int) *Trend {
	if window <= 0 || len(a.attempts) < window {
		return nil
	}

	recentAttempts := a.attempts[len(a.attempts)-window:]
	recentTimes := a.times[len(a.times)-window:]

	var prevAttempts []int
	var prevTimes []float64
	if len(a.attempts) >= window*2 {
		prevAttempts = a.attempts[len(a.attempts)-window*2 : len(a.attempts)-window]
		prevTimes = a.times[len(a.times)-window*2 : len(a.times)-window]
	} else {
		prevAttempts = a.attempts[:len(a.attempts)-window]
		prevTimes = a.times[:len(a.times)-window]
	}
	if len(prevAttempts) == 0 {
		return nil
	}

	recentAvgAttempts := meanInts(recentAttempts)
	recentAvgTime := meanFloats(recentTimes)

	return &Trend{
		AttemptTrend:      recentAvgAttempts - meanInts(prevAttempts),
		TimeTrend:         recentAvgTime - meanFloats(prevTimes),
		RecentAvgAttempts: recentAvgAttempts,
		RecentAvgTime:     recentAvgTime,
	}
}

// GenerateReport snapshots lifetime performance. Returns nil when no
// games have been recorded, the expected steady state for a new player.
func (a *Aggregator) GenerateReport() *Report {
	if a.gamesPlayed == 0 {
		return nil
	}

	r := &Report{
		GamesPlayed:     a.gamesPlayed,
		GamesWon:        a.gamesWon,
		SuccessRate:     float64(a.gamesWon) / float64(a.gamesPlayed) * 100,
		AvgAttempts:     meanInts(a.attempts),
		AvgTime:         meanFloats(a.times),
		DifficultyStats: make(map[game.Difficulty]BucketStats, len(a.difficulty)),
	}
	for d, bucket := range a.difficulty {
		r.DifficultyStats[d] = *bucket
	}

	if challenging := a.MostChallengingWords(3); len(challenging) > 0 {
		r.ChallengingWords = challenging
	}
	if easiest := a.EasiestWords(3); len(easiest) > 0 {
		r.EasiestWords = easiest
	}
	r.Trend = a.PerformanceTrend(DefaultTrendWindow)

	return r
}

// LetterSuccessRates summarizes how each guessed letter has scored.
func (a *Aggregator) LetterSuccessRates() map[byte]LetterRate {
	out := make(map[byte]LetterRate, len(a.letters))
	for letter, ls := range a.letters {
		if ls.Attempts == 0 {
			continue
		}
		n := float64(ls.Attempts)
		out[letter] = LetterRate{
			Attempts:    ls.Attempts,
			CorrectRate: float64(ls.Correct) / n,
			PresentRate: float64(ls.Present) / n,
			OverallRate: float64(ls.Correct+ls.Present) / n,
		}
	}
	return out
}

// PositionSuccessRates summarizes per-position letter accuracy.
func (a *Aggregator) PositionSuccessRates() map[int]map[byte]PositionRate {
	out := make(map[int]map[byte]PositionRate, len(a.positions))
	for pos, letters := range a.positions {
		rates := make(map[byte]PositionRate, len(letters))
		for letter, ps := range letters {
			if ps.Attempts == 0 {
				continue
			}
			rates[letter] = PositionRate{
				Attempts:    ps.Attempts,
				CorrectRate: float64(ps.Correct) / float64(ps.Attempts),
			}
		}
		out[pos] = rates
	}
	return out
}

// DifficultyRecommendation suggests a level based on lifetime results.
func (a *Aggregator) DifficultyRecommendation() string {
	if a.gamesPlayed < 5 {
		return "Play more games to get a personalized difficulty recommendation."
	}

	successRate := float64(a.gamesWon) / float64(a.gamesPlayed) * 100
	avgAttempts := meanInts(a.attempts)
	trend := a.PerformanceTrend(DefaultTrendWindow)
	improving := trend != nil && trend.AttemptTrend < 0

	switch {
	case successRate < 20:
		return "Consider trying Easy difficulty to build confidence."
	case successRate > 80 && avgAttempts < 3:
		return "You're doing great! Challenge yourself with Hard difficulty."
	case improving:
		return "You're improving! Continue with your current difficulty or try one level higher."
	case successRate > 50:
		return "You're doing well at your current difficulty level."
	default:
		return "Keep practicing at this level to improve your skills."
	}
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func meanFloats(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
