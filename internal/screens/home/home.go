package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wordletrack/wordletrack/internal/analytics"
	"github.com/wordletrack/wordletrack/internal/config"
	"github.com/wordletrack/wordletrack/internal/player"
	"github.com/wordletrack/wordletrack/internal/router"
	"github.com/wordletrack/wordletrack/internal/screen"
	"github.com/wordletrack/wordletrack/internal/screens/play"
	"github.com/wordletrack/wordletrack/internal/screens/stats"
	"github.com/wordletrack/wordletrack/internal/store"
	"github.com/wordletrack/wordletrack/internal/ui/components"
	"github.com/wordletrack/wordletrack/internal/ui/theme"
	"github.com/wordletrack/wordletrack/internal/words"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu     components.Menu
	settings config.Settings
	profile  *player.Player
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen with injected dependencies.
func New(settings config.Settings, bank *words.Bank, agg *analytics.Aggregator, profile *player.Player, st *store.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "NEW GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(settings, bank, agg, profile, st)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(agg, profile)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		settings: settings,
		profile:  profile,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 90

	cw := contentWidth(width)
	s := h.profile.Stats()

	sections := []string{
		renderBanner(cw, compact),
		renderStatsBar(s.GamesPlayed, s.GamesWon, s.CurrentStreak, cw, compact),
		renderDifficultyNote(
			string(h.settings.Difficulty),
			string(h.profile.RecommendedDifficulty()),
			cw,
		),
		renderMenu(h.menu, cw),
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderMenu centers the shared menu component at content width.
func renderMenu(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(m.View())
}
