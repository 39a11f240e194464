package store

import (
	"context"
	"fmt"
	"time"

	"github.com/wordletrack/wordletrack/internal/game"
)

// GameRow is one completed game as persisted.
type GameRow struct {
	ID         int64
	Player     string
	Word       string
	Attempts   int
	Success    bool
	TimeTaken  float64
	Difficulty game.Difficulty
	HintsUsed  int
	PlayedAt   time.Time
}

// GuessRow is one guess within a persisted game, ordered by Attempt
// starting at 1.
type GuessRow struct {
	Attempt  int
	Guess    string
	Feedback []game.LetterStatus
}

// InsertGame stores a completed game with its guesses in one
// transaction and returns the new row id.
func (s *Store) InsertGame(ctx context.Context, row GameRow, guesses []GuessRow) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO games (player, word, word_length, attempts, success, time_taken, difficulty, hints_used, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.Player,
		row.Word,
		len(row.Word),
		row.Attempts,
		boolToInt(row.Success),
		row.TimeTaken,
		string(row.Difficulty),
		row.HintsUsed,
		row.PlayedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert game: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(guesses) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO guesses (game_id, attempt, guess, feedback) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer stmt.Close()
		for _, g := range guesses {
			if _, err := stmt.ExecContext(ctx, id, g.Attempt, g.Guess, encodeFeedback(g.Feedback)); err != nil {
				return 0, fmt.Errorf("insert guess %d: %w", g.Attempt, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListGames returns a player's games, oldest first. A non-positive
// limit returns everything.
func (s *Store) ListGames(ctx context.Context, player string, limit int) ([]GameRow, error) {
	query := `SELECT id, player, word, attempts, success, time_taken, difficulty, hints_used, played_at
		FROM games WHERE player = ? ORDER BY id ASC`
	args := []any{player}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []GameRow
	for rows.Next() {
		var row GameRow
		var success int
		var difficulty, playedAt string
		if err := rows.Scan(&row.ID, &row.Player, &row.Word, &row.Attempts, &success, &row.TimeTaken, &difficulty, &row.HintsUsed, &playedAt); err != nil {
			return nil, err
		}
		row.Success = success != 0
		row.Difficulty = game.Difficulty(difficulty)
		parsed, err := time.Parse(time.RFC3339Nano, playedAt)
		if err != nil {
			return nil, fmt.Errorf("parse played_at: %w", err)
		}
		row.PlayedAt = parsed
		games = append(games, row)
	}
	return games, rows.Err()
}

// ListGuesses returns the guesses of one game in attempt order.
func (s *Store) ListGuesses(ctx context.Context, gameID int64) ([]GuessRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT attempt, guess, feedback FROM guesses WHERE game_id = ? ORDER BY attempt ASC`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guesses []GuessRow
	for rows.Next() {
		var g GuessRow
		var feedback string
		if err := rows.Scan(&g.Attempt, &g.Guess, &feedback); err != nil {
			return nil, err
		}
		g.Feedback, err = decodeFeedback(feedback)
		if err != nil {
			return nil, err
		}
		guesses = append(guesses, g)
	}
	return guesses, rows.Err()
}

// CountGames returns the number of stored games for a player.
func (s *Store) CountGames(ctx context.Context, player string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games WHERE player = ?`, player).Scan(&n)
	return n, err
}

// Reset deletes every stored game and guess.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM guesses`); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM games`)
	return err
}

// encodeFeedback packs statuses into one character per letter:
// 'c' correct, 'p' present, 'a' absent.
func encodeFeedback(statuses []game.LetterStatus) string {
	buf := make([]byte, len(statuses))
	for i, st := range statuses {
		switch st {
		case game.StatusCorrect:
			buf[i] = 'c'
		case game.StatusPresent:
			buf[i] = 'p'
		default:
			buf[i] = 'a'
		}
	}
	return string(buf)
}

func decodeFeedback(s string) ([]game.LetterStatus, error) {
	statuses := make([]game.LetterStatus, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'c':
			statuses[i] = game.StatusCorrect
		case 'p':
			statuses[i] = game.StatusPresent
		case 'a':
			statuses[i] = game.StatusAbsent
		default:
			return nil, fmt.Errorf("feedback code %q: unknown status %q", s, s[i])
		}
	}
	return statuses, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
