// Package play implements the interactive game screen: the guess
// board, letter tracker, hint line, and end-of-game summary.
package play

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wordletrack/wordletrack/internal/analytics"
	"github.com/wordletrack/wordletrack/internal/config"
	"github.com/wordletrack/wordletrack/internal/constraint"
	"github.com/wordletrack/wordletrack/internal/game"
	"github.com/wordletrack/wordletrack/internal/hint"
	"github.com/wordletrack/wordletrack/internal/player"
	"github.com/wordletrack/wordletrack/internal/router"
	"github.com/wordletrack/wordletrack/internal/screen"
	"github.com/wordletrack/wordletrack/internal/screens/stats"
	"github.com/wordletrack/wordletrack/internal/store"
	"github.com/wordletrack/wordletrack/internal/ui/components"
	"github.com/wordletrack/wordletrack/internal/ui/layout"
	"github.com/wordletrack/wordletrack/internal/words"
)

const saveTimeout = 5 * time.Second

// PlayScreen implements screen.Screen for an active game.
type PlayScreen struct {
	settings config.Settings
	bank     *words.Bank
	agg      *analytics.Aggregator
	profile  *player.Player
	st       *store.Store

	session *game.Session
	tracker *constraint.Tracker
	hints   *hint.Generator
	letters *components.LetterTracker
	guesses []store.GuessRow

	input    components.TextInput
	hintText string
	errMsg   string
	saveErr  error
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen and starts the first game.
func New(settings config.Settings, bank *words.Bank, agg *analytics.Aggregator, profile *player.Player, st *store.Store) *PlayScreen {
	p := &PlayScreen{
		settings: settings,
		bank:     bank,
		agg:      agg,
		profile:  profile,
		st:       st,
	}
	p.startGame()
	return p
}

// startGame resets all per-game state around a freshly drawn secret.
func (p *PlayScreen) startGame() {
	secret := p.bank.RandomWord(p.settings.Difficulty, p.settings.WordLength)
	p.session = game.NewSession(secret, p.settings.MaxAttempts, p.settings.Difficulty)
	p.tracker = constraint.NewTracker(secret)
	p.hints = hint.New(p.tracker, constraint.PlacementDeduced)
	p.letters = components.NewLetterTracker()
	p.guesses = nil
	p.input = components.NewTextInput("Type a word...", true, len(secret))
	p.hintText = ""
	p.errMsg = ""
	p.saveErr = nil
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PlayScreen) Title() string {
	return "Play"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.session.Finished {
		return []layout.KeyHint{
			{Key: "N", Description: "New game"},
			{Key: "S", Description: "Statistics"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Guess"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "Esc", Description: "Home"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameSavedMsg:
		p.saveErr = msg.err
		return p, nil

	case tea.KeyMsg:
		if p.session.Finished {
			return p.updateFinished(msg)
		}
		switch msg.String() {
		case "enter":
			return p.submitGuess()
		case "ctrl+h":
			p.hintText = p.hints.Generate()
			p.profile.UseHint()
			p.session.HintsUsed++
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// updateFinished handles keys on the end-of-game summary.
func (p *PlayScreen) updateFinished(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n", "N":
		next := New(p.settings, p.bank, p.agg, p.profile, p.st)
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	case "s", "S":
		return p, func() tea.Msg {
			return router.PushScreenMsg{Screen: stats.New(p.agg, p.profile)}
		}
	}
	return p, nil
}

// submitGuess validates and scores the typed word, then records the
// feedback everywhere it flows: tracker, letter display, and analytics.
func (p *PlayScreen) submitGuess() (screen.Screen, tea.Cmd) {
	guess := strings.ToLower(strings.TrimSpace(p.input.Value()))

	if len(guess) != p.session.WordLength {
		p.errMsg = "Not enough letters"
		return p, nil
	}
	if !p.bank.IsValid(guess) {
		p.errMsg = "Not in word list"
		return p, nil
	}

	rec, err := p.session.SubmitGuess(guess)
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	p.errMsg = ""
	p.hintText = ""
	p.input.Reset()

	p.tracker.Record(rec)
	p.letters.Record(rec)
	p.guesses = append(p.guesses, store.GuessRow{
		Attempt:  p.session.Attempts,
		Guess:    rec.Guess,
		Feedback: rec.Statuses,
	})

	p.agg.RecordGuess(rec.Guess, p.session.Difficulty)
	for i := 0; i < len(rec.Guess); i++ {
		p.agg.RecordLetterFeedback(rec.Guess[i], i, rec.Statuses[i])
	}

	if p.session.Finished {
		return p, p.finishGame()
	}
	return p, nil
}

// finishGame folds the completed game into the profile and analytics,
// then persists it in the background.
func (p *PlayScreen) finishGame() tea.Cmd {
	timeTaken := p.session.Duration().Seconds()
	hintsUsed := p.profile.HintsUsed()
	p.agg.RecordGame(p.session.SecretWord, p.session.Attempts, p.session.Won, timeTaken, p.session.Difficulty, hintsUsed)
	p.profile.RecordGame(p.session.SecretWord, p.session.Attempts, p.session.Won, timeTaken)

	if p.st == nil {
		return nil
	}

	row := store.GameRow{
		Player:     p.profile.Name(),
		Word:       p.session.SecretWord,
		Attempts:   p.session.Attempts,
		Success:    p.session.Won,
		TimeTaken:  timeTaken,
		Difficulty: p.session.Difficulty,
		HintsUsed:  hintsUsed,
		PlayedAt:   time.Now(),
	}
	guesses := p.guesses

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		_, err := p.st.InsertGame(ctx, row, guesses)
		return gameSavedMsg{err: err}
	}
}
