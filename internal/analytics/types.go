package analytics

import "github.com/wordletrack/wordletrack/internal/game"

// LetterStats tracks how a single letter has scored across all guesses.
type LetterStats struct {
	Attempts int
	Correct  int
	Present  int
}

// PositionLetterStats tracks a letter's results at one board position.
type PositionLetterStats struct {
	Attempts int
	Correct  int
}

// WordStats tracks how often a word appeared and the running average of
// attempts needed for it.
type WordStats struct {
	Count       int
	AvgAttempts float64
}

// BucketStats aggregates games sharing a difficulty or word length.
type BucketStats struct {
	Played      int
	Won         int
	AvgAttempts float64
}

// GameOutcome is one completed game's (time, attempts, success) triple,
// kept in order for trend windows.
type GameOutcome struct {
	TimeTaken float64
	Attempts  int
	Success   bool
}

// WordAverage is a (word, running average attempts) pair for rankings.
type WordAverage struct {
	Word        string
	AvgAttempts float64
}

// Trend compares the most recent games against the window before them.
type Trend struct {
	AttemptTrend      float64
	TimeTrend         float64
	RecentAvgAttempts float64
	RecentAvgTime     float64
}

// LetterRate is the per-letter success summary for reporting.
type LetterRate struct {
	Attempts    int
	CorrectRate float64
	PresentRate float64
	OverallRate float64
}

// PositionRate is the per-position, per-letter success summary.
type PositionRate struct {
	Attempts    int
	CorrectRate float64
}

// Report is a point-in-time snapshot of lifetime performance. A nil
// Report from the aggregator means no games have been recorded yet.
type Report struct {
	GamesPlayed      int
	GamesWon         int
	SuccessRate      float64
	AvgAttempts      float64
	AvgTime          float64
	DifficultyStats  map[game.Difficulty]BucketStats
	ChallengingWords []WordAverage
	EasiestWords     []WordAverage
	Trend            *Trend
}
