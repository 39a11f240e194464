// Package app wires the Bubble Tea program: root model, screen router,
// and the header/footer frame.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wordletrack/wordletrack/internal/analytics"
	"github.com/wordletrack/wordletrack/internal/config"
	"github.com/wordletrack/wordletrack/internal/player"
	"github.com/wordletrack/wordletrack/internal/router"
	"github.com/wordletrack/wordletrack/internal/screen"
	"github.com/wordletrack/wordletrack/internal/screens/home"
	"github.com/wordletrack/wordletrack/internal/store"
	"github.com/wordletrack/wordletrack/internal/ui/layout"
	"github.com/wordletrack/wordletrack/internal/words"
)

// Options carries the dependencies the TUI needs. Store may be nil,
// in which case games are not persisted.
type Options struct {
	Settings   config.Settings
	Bank       *words.Bank
	Aggregator *analytics.Aggregator
	Profile    *player.Player
	Store      *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile *player.Player
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Settings, opts.Bank, opts.Aggregator, opts.Profile, opts.Store)
	return AppModel{
		router:  router.New(homeScreen),
		profile: opts.Profile,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stats := m.profile.Stats()
	header := layout.RenderHeader(title, stats.GamesWon, stats.CurrentStreak, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to stack
// navigation defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
