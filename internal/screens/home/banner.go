package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wordletrack/wordletrack/internal/ui/theme"
)

// Block-letter title for the home screen.
const bannerFull = ` ██╗    ██╗ ██████╗ ██████╗ ██████╗ ██╗     ███████╗
 ██║    ██║██╔═══██╗██╔══██╗██╔══██╗██║     ██╔════╝
 ██║ █╗ ██║██║   ██║██████╔╝██║  ██║██║     █████╗
 ██║███╗██║██║   ██║██╔══██╗██║  ██║██║     ██╔══╝
 ╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝███████╗███████╗
  ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚══════╝╚══════╝
                      T R A C K`

const bannerCompact = "W · O · R · D · L · E · T · R · A · C · K"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderBanner returns the styled title block or compact fallback.
func renderBanner(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(bannerCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(bannerFull))
}

// renderStatsBar renders the dashboard stats in a bordered box
// matching content width.
func renderStatsBar(played, won, streak, cw int, compact bool) string {
	wonStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	playedStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			playedStyle.Render(fmt.Sprintf("▣%d", played)),
			wonStyle.Render(fmt.Sprintf("✓%d", won)),
			streakStyle.Render(fmt.Sprintf("★%d", streak)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			playedStyle.Render(fmt.Sprintf("▣ %d PLAYED", played)),
			wonStyle.Render(fmt.Sprintf("✓ %d WON", won)),
			streakStyle.Render(fmt.Sprintf("★ %d STREAK", streak)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderDifficultyNote renders the current difficulty and a
// recommendation when it differs.
func renderDifficultyNote(current, recommended string, cw int) string {
	text := fmt.Sprintf("Difficulty: %s", strings.ToUpper(current))
	if recommended != "" && recommended != current {
		text += fmt.Sprintf("  (suggested: %s)", strings.ToUpper(recommended))
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
