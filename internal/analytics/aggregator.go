// Package analytics maintains lifetime gameplay statistics: running
// counters and averages updated incrementally per guess and per game,
// plus read-only report and recommendation queries.
package analytics

import (
	"strings"

	"github.com/wordletrack/wordletrack/internal/game"
)

// Aggregator accumulates per-guess and per-game events for a player's
// lifetime. It holds no ambient state: construct one per player and
// pass it explicitly. Mutation is single-goroutine only.
//
// All averages are maintained incrementally as
// (old_avg*old_count + x) / (old_count+1), never recomputed from the
// full history.
type Aggregator struct {
	gamesPlayed int
	gamesWon    int

	// Append-only sequences for trend windows.
	attempts []int
	times    []float64
	outcomes []GameOutcome

	words       map[string]*WordStats
	difficulty  map[game.Difficulty]*BucketStats
	wordLengths map[int]*BucketStats

	letters      map[byte]*LetterStats
	positions    map[int]map[byte]*PositionLetterStats
	firstLetters map[byte]int
	letterFreq   [26]int
}

// NewAggregator returns an empty aggregator with every difficulty
// bucket initialized.
func NewAggregator() *Aggregator {
	a := &Aggregator{
		words:        make(map[string]*WordStats),
		difficulty:   make(map[game.Difficulty]*BucketStats),
		wordLengths:  make(map[int]*BucketStats),
		letters:      make(map[byte]*LetterStats),
		positions:    make(map[int]map[byte]*PositionLetterStats),
		firstLetters: make(map[byte]int),
	}
	for _, d := range game.Difficulties() {
		a.difficulty[d] = &BucketStats{}
	}
	return a
}

// RecordGuess tracks the guess's first letter and overall letter usage.
// Each distinct letter of the guess is counted once, case-insensitive.
func (a *Aggregator) RecordGuess(guess string, _ game.Difficulty) {
	guess = strings.ToLower(guess)
	if guess == "" {
		return
	}
	if idx := letterIndex(guess[0]); idx >= 0 {
		a.firstLetters[guess[0]]++
	}

	seen := [26]bool{}
	for i := 0; i < len(guess); i++ {
		idx := letterIndex(guess[i])
		if idx >= 0 && !seen[idx] {
			seen[idx] = true
			a.letterFreq[idx]++
		}
	}
}

// RecordLetterFeedback tracks one letter's evaluation at one position.
func (a *Aggregator) RecordLetterFeedback(letter byte, position int, status game.LetterStatus) {
	ls := a.letters[letter]
	if ls == nil {
		ls = &LetterStats{}
		a.letters[letter] = ls
	}
	ls.Attempts++
	switch status {
	case game.StatusCorrect:
		ls.Correct++
	case game.StatusPresent:
		ls.Present++
	}

	posMap := a.positions[position]
	if posMap == nil {
		posMap = make(map[byte]*PositionLetterStats)
		a.positions[position] = posMap
	}
	ps := posMap[letter]
	if ps == nil {
		ps = &PositionLetterStats{}
		posMap[letter] = ps
	}
	ps.Attempts++
	if status == game.StatusCorrect {
		ps.Correct++
	}
}

// RecordGame folds in a completed game. An unrecognized difficulty tag
// still counts toward global totals; only its difficulty bucket is
// skipped.
func (a *Aggregator) RecordGame(word string, attempts int, success bool, timeTaken float64, difficulty game.Difficulty, hintsUsed int) {
	a.gamesPlayed++
	if success {
		a.gamesWon++
	}
	a.attempts = append(a.attempts, attempts)
	a.times = append(a.times, timeTaken)
	a.outcomes = append(a.outcomes, GameOutcome{TimeTaken: timeTaken, Attempts: attempts, Success: success})

	ws := a.words[word]
	if ws == nil {
		a.words[word] = &WordStats{Count: 1, AvgAttempts: float64(attempts)}
	} else {
		ws.AvgAttempts = runningAvg(ws.AvgAttempts, ws.Count, attempts)
		ws.Count++
	}

	if bucket, ok := a.difficulty[difficulty]; ok {
		bucket.AvgAttempts = runningAvg(bucket.AvgAttempts, bucket.Played, attempts)
		bucket.Played++
		if success {
			bucket.Won++
		}
	}

	length := len(word)
	lb := a.wordLengths[length]
	if lb == nil {
		lb = &BucketStats{}
		a.wordLengths[length] = lb
	}
	lb.AvgAttempts = runningAvg(lb.AvgAttempts, lb.Played, attempts)
	lb.Played++
	if success {
		lb.Won++
	}
}

// GamesPlayed returns the lifetime game count.
func (a *Aggregator) GamesPlayed() int { return a.gamesPlayed }

// GamesWon returns the lifetime win count.
func (a *Aggregator) GamesWon() int { return a.gamesWon }

// WordLengthStats returns a copy of the per-length buckets.
func (a *Aggregator) WordLengthStats() map[int]BucketStats {
	out := make(map[int]BucketStats, len(a.wordLengths))
	for length, bucket := range a.wordLengths {
		out[length] = *bucket
	}
	return out
}

// FirstLetterCounts returns how often each letter opened a guess.
func (a *Aggregator) FirstLetterCounts() map[byte]int {
	out := make(map[byte]int, len(a.firstLetters))
	for letter, count := range a.firstLetters {
		out[letter] = count
	}
	return out
}

// runningAvg folds one new sample into an incrementally maintained mean.
func runningAvg(oldAvg float64, oldCount, sample int) float64 {
	return (oldAvg*float64(oldCount) + float64(sample)) / float64(oldCount+1)
}

func letterIndex(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}
