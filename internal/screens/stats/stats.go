// Package stats renders the lifetime statistics report.
package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wordletrack/wordletrack/internal/analytics"
	"github.com/wordletrack/wordletrack/internal/game"
	"github.com/wordletrack/wordletrack/internal/player"
	"github.com/wordletrack/wordletrack/internal/screen"
	"github.com/wordletrack/wordletrack/internal/ui/components"
	"github.com/wordletrack/wordletrack/internal/ui/theme"
)

// StatsScreen implements screen.Screen for the statistics report.
type StatsScreen struct {
	agg     *analytics.Aggregator
	profile *player.Player
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a StatsScreen over the shared aggregator and profile.
func New(agg *analytics.Aggregator, profile *player.Player) *StatsScreen {
	return &StatsScreen{agg: agg, profile: profile}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) View(width, height int) string {
	report := s.agg.GenerateReport()
	if report == nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No games recorded yet.\nFinish a game and come back.")
	}

	content := RenderReport(report, s.profile.Stats(), s.agg.DifficultyRecommendation(), min(width-8, 64))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(theme.Card.Render(content))
}

// RenderReport formats the report as plain styled text. It is shared
// with the stats CLI subcommand.
func RenderReport(r *analytics.Report, ps player.Stats, recommendation string, width int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	section := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	b.WriteString(section.Render("Overview"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		label.Render("Played"), value.Render(fmt.Sprintf("%d", r.GamesPlayed)),
		label.Render("Won"), value.Render(fmt.Sprintf("%d", r.GamesWon)),
		label.Render("Streak"), value.Render(fmt.Sprintf("%d (best %d)", ps.CurrentStreak, ps.MaxStreak)),
	)
	bar := components.NewProgressBar("Win rate", r.SuccessRate/100, true, width)
	b.WriteString(bar.View())
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   %s %s\n",
		label.Render("Avg attempts"), value.Render(fmt.Sprintf("%.2f", r.AvgAttempts)),
		label.Render("Avg time"), value.Render(fmt.Sprintf("%.0fs", r.AvgTime)),
	)

	if len(r.DifficultyStats) > 0 {
		b.WriteString("\n")
		b.WriteString(section.Render("By difficulty"))
		b.WriteString("\n")
		for _, d := range game.Difficulties() {
			bucket, ok := r.DifficultyStats[d]
			if !ok || bucket.Played == 0 {
				continue
			}
			fmt.Fprintf(&b, "%-8s %s\n",
				strings.ToUpper(string(d)),
				label.Render(fmt.Sprintf("%d played, %d won, %.2f avg attempts", bucket.Played, bucket.Won, bucket.AvgAttempts)),
			)
		}
	}

	if len(r.ChallengingWords) > 0 {
		b.WriteString("\n")
		b.WriteString(section.Render("Hardest words"))
		b.WriteString("\n")
		b.WriteString(renderWordList(r.ChallengingWords, label))
	}
	if len(r.EasiestWords) > 0 {
		b.WriteString("\n")
		b.WriteString(section.Render("Easiest words"))
		b.WriteString("\n")
		b.WriteString(renderWordList(r.EasiestWords, label))
	}

	if r.Trend != nil {
		b.WriteString("\n")
		b.WriteString(section.Render("Recent trend"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s   %s %s\n",
			label.Render("Attempts"), trendArrow(r.Trend.AttemptTrend),
			label.Render("Time"), trendArrow(r.Trend.TimeTrend),
		)
	}

	if recommendation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(recommendation))
		b.WriteString("\n")
	}

	return b.String()
}

func renderWordList(entries []analytics.WordAverage, label lipgloss.Style) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-8s %s\n", strings.ToUpper(e.Word), label.Render(fmt.Sprintf("%.2f avg attempts", e.AvgAttempts)))
	}
	return b.String()
}

// trendArrow formats a delta where negative means improving.
func trendArrow(delta float64) string {
	switch {
	case delta < 0:
		return theme.Correct.Render(fmt.Sprintf("▼ %.2f", -delta))
	case delta > 0:
		return theme.Incorrect.Render(fmt.Sprintf("▲ %.2f", delta))
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("steady")
	}
}

// RenderFirstLetters summarizes opening-letter habits for the CLI
// report, most used first.
func RenderFirstLetters(counts map[byte]int, top int) string {
	type entry struct {
		letter byte
		count  int
	}
	entries := make([]entry, 0, len(counts))
	for letter, count := range counts {
		entries = append(entries, entry{letter, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count == entries[j].count {
			return entries[i].letter < entries[j].letter
		}
		return entries[i].count > entries[j].count
	})
	if top < len(entries) {
		entries = entries[:top]
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s (%d)", strings.ToUpper(string(e.letter)), e.count)
	}
	return strings.Join(parts, ", ")
}
