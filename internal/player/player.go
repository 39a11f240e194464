// Package player tracks a single player's profile: lifetime counters,
// win streaks, and per-game history. It is the mutable state the play
// screen updates and the stats screen reads.
package player

import "github.com/wordletrack/wordletrack/internal/game"

// GameRecord is one completed game in the player's history.
type GameRecord struct {
	Word      string
	Attempts  int
	Success   bool
	TimeTaken float64
	HintsUsed int
}

// Stats is a point-in-time summary of the player's record.
type Stats struct {
	Name          string
	GamesPlayed   int
	GamesWon      int
	WinRate       float64
	AvgAttempts   float64
	AvgTime       float64
	CurrentStreak int
	MaxStreak     int
}

// Player accumulates results across games. Hints are counted against
// the in-progress game and folded into its record on completion.
type Player struct {
	name          string
	gamesPlayed   int
	gamesWon      int
	totalAttempts int
	totalTime     float64
	hintsUsed     int
	history       []GameRecord
	streak        int
	maxStreak     int
}

// New returns a fresh profile. An empty name defaults to "Player".
func New(name string) *Player {
	if name == "" {
		name = "Player"
	}
	return &Player{name: name}
}

// Name returns the profile name.
func (p *Player) Name() string { return p.name }

// UseHint counts one hint against the game in progress.
func (p *Player) UseHint() {
	p.hintsUsed++
}

// HintsUsed returns the hint count for the game in progress.
func (p *Player) HintsUsed() int { return p.hintsUsed }

// RecordGame folds in a completed game, updating streaks and history.
// The in-progress hint counter is consumed by the new record and reset.
func (p *Player) RecordGame(word string, attempts int, success bool, timeTaken float64) GameRecord {
	p.gamesPlayed++
	p.totalAttempts += attempts
	p.totalTime += timeTaken

	if success {
		p.gamesWon++
		p.streak++
		if p.streak > p.maxStreak {
			p.maxStreak = p.streak
		}
	} else {
		p.streak = 0
	}

	rec := GameRecord{
		Word:      word,
		Attempts:  attempts,
		Success:   success,
		TimeTaken: timeTaken,
		HintsUsed: p.hintsUsed,
	}
	p.history = append(p.history, rec)
	p.hintsUsed = 0
	return rec
}

// History returns the completed games, oldest first.
func (p *Player) History() []GameRecord {
	out := make([]GameRecord, len(p.history))
	copy(out, p.history)
	return out
}

// Streak returns the current run of consecutive wins.
func (p *Player) Streak() int { return p.streak }

// MaxStreak returns the longest run of consecutive wins.
func (p *Player) MaxStreak() int { return p.maxStreak }

// Stats summarizes the profile. Averages are zero until a game exists.
func (p *Player) Stats() Stats {
	s := Stats{
		Name:          p.name,
		GamesPlayed:   p.gamesPlayed,
		GamesWon:      p.gamesWon,
		CurrentStreak: p.streak,
		MaxStreak:     p.maxStreak,
	}
	if p.gamesPlayed > 0 {
		s.WinRate = float64(p.gamesWon) / float64(p.gamesPlayed) * 100
		s.AvgAttempts = float64(p.totalAttempts) / float64(p.gamesPlayed)
		s.AvgTime = p.totalTime / float64(p.gamesPlayed)
	}
	return s
}

// RecommendedDifficulty maps the player's record to a starting level.
// Fewer than five games always yields medium.
func (p *Player) RecommendedDifficulty() game.Difficulty {
	if p.gamesPlayed < 5 {
		return game.DifficultyMedium
	}
	winRate := float64(p.gamesWon) / float64(p.gamesPlayed)
	avgAttempts := float64(p.totalAttempts) / float64(p.gamesPlayed)
	switch {
	case winRate > 0.8 && avgAttempts < 3.5:
		return game.DifficultyHard
	case winRate < 0.3:
		return game.DifficultyEasy
	default:
		return game.DifficultyMedium
	}
}
