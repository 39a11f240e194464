package store

import (
	"context"
	"fmt"

	"github.com/wordletrack/wordletrack/internal/analytics"
	"github.com/wordletrack/wordletrack/internal/player"
)

// Replay rebuilds in-memory state from the stored history by feeding
// every game and guess back through the aggregator and profile in
// insertion order. Either destination may be nil to skip it.
func (s *Store) Replay(ctx context.Context, name string, agg *analytics.Aggregator, prof *player.Player) error {
	games, err := s.ListGames(ctx, name, 0)
	if err != nil {
		return fmt.Errorf("replay: list games: %w", err)
	}

	for _, row := range games {
		if agg != nil {
			guesses, err := s.ListGuesses(ctx, row.ID)
			if err != nil {
				return fmt.Errorf("replay: list guesses for game %d: %w", row.ID, err)
			}
			for _, g := range guesses {
				agg.RecordGuess(g.Guess, row.Difficulty)
				for i, st := range g.Feedback {
					if i < len(g.Guess) {
						agg.RecordLetterFeedback(g.Guess[i], i, st)
					}
				}
			}
			agg.RecordGame(row.Word, row.Attempts, row.Success, row.TimeTaken, row.Difficulty, row.HintsUsed)
		}
		if prof != nil {
			for i := 0; i < row.HintsUsed; i++ {
				prof.UseHint()
			}
			prof.RecordGame(row.Word, row.Attempts, row.Success, row.TimeTaken)
		}
	}
	return nil
}
