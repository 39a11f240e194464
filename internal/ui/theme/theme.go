package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Tile colors follow the classic word-puzzle scheme.
var (
	Primary   = lipgloss.Color("#6AAA64") // Tile Green
	Secondary = lipgloss.Color("#C9B458") // Tile Yellow
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#6AAA64") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#121213") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#3A3A3C") // Gray

	TileGreen  = lipgloss.Color("#6AAA64")
	TileYellow = lipgloss.Color("#C9B458")
	TileGray   = lipgloss.Color("#787C7E")
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Board tiles. Filled tiles invert foreground onto the status color;
// empty tiles are outlined only.
var (
	TileCorrect = lipgloss.NewStyle().
			Background(TileGreen).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	TilePresent = lipgloss.NewStyle().
			Background(TileYellow).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 1)

	TileAbsent = lipgloss.NewStyle().
			Background(TileGray).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	TileEmpty = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
