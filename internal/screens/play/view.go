package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wordletrack/wordletrack/internal/ui/components"
	"github.com/wordletrack/wordletrack/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(p.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Render(p.renderBoard()))
	b.WriteString("\n\n")
	b.WriteString(center.Render(p.letters.View()))
	b.WriteString("\n\n")

	if p.session.Finished {
		b.WriteString(center.Render(p.renderOutcome()))
	} else {
		b.WriteString(center.Render("Guess: " + p.input.View()))
		if p.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(center.Render(theme.Incorrect.Render(p.errMsg)))
		}
		if p.hintText != "" {
			b.WriteString("\n\n")
			b.WriteString(center.Render(theme.Hint.Render(wrapHint(p.hintText, width-8))))
		}
	}

	return b.String()
}

// renderInfoLine shows the attempt counter, difficulty, and hint use.
func (p *PlayScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Attempt %d/%d", p.session.Attempts, p.session.MaxAttempts))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  hints %d", strings.ToUpper(string(p.session.Difficulty)), p.profile.HintsUsed()))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderBoard draws submitted guess rows, the in-progress row, and
// blank rows up to the attempt limit.
func (p *PlayScreen) renderBoard() string {
	rows := make([]string, 0, p.session.MaxAttempts)
	for _, rec := range p.tracker.History() {
		rows = append(rows, components.RenderGuessRow(rec))
	}
	if !p.session.Finished && len(rows) < p.session.MaxAttempts {
		rows = append(rows, components.RenderEmptyRow(p.session.WordLength, strings.ToLower(p.input.Value())))
	}
	for len(rows) < p.session.MaxAttempts {
		rows = append(rows, components.RenderEmptyRow(p.session.WordLength, ""))
	}
	return strings.Join(rows, "\n")
}

// renderOutcome shows the win or loss banner.
func (p *PlayScreen) renderOutcome() string {
	var banner string
	if p.session.Won {
		banner = theme.Correct.Render(fmt.Sprintf("You got it in %d!", p.session.Attempts))
	} else {
		banner = theme.Incorrect.Render(fmt.Sprintf("Out of attempts. The word was %s.", strings.ToUpper(p.session.SecretWord)))
	}

	lines := []string{banner}
	if p.saveErr != nil {
		lines = append(lines, theme.Hint.Render("Could not save this game: "+p.saveErr.Error()))
	}
	lines = append(lines, theme.Subtitle.Render("Press N for a new game"))
	return strings.Join(lines, "\n")
}

// wrapHint soft-wraps the hint text so multi-line analysis hints stay
// inside the content area.
func wrapHint(text string, width int) string {
	if width < 20 {
		width = 20
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for len(line) > width {
			cut := strings.LastIndex(line[:width], " ")
			if cut <= 0 {
				cut = width
			}
			out = append(out, line[:cut])
			line = strings.TrimLeft(line[cut:], " ")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
