package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — bright and friendly for young learners
var (
	Primary   = lipgloss.Color("#6A1B9A") // Deep Purple
	Secondary = lipgloss.Color("#2196F3") // Sky Blue
	Accent    = lipgloss.Color("#FF9800") // Marigold Orange
	Success   = lipgloss.Color("#4CAF50") // Leaf Green
	Error     = lipgloss.Color("#E74C3C") // Warm Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#1A237E") // Indigo Night
	BgCard    = lipgloss.Color("#283593") // Indigo Card
	Border    = lipgloss.Color("#3949AB") // Indigo Border
)

// Mood colors for the tracker calendar
var (
	MoodAngry     = lipgloss.Color("#E53935")
	MoodDisgusted = lipgloss.Color("#43A047")
	MoodSad       = lipgloss.Color("#1E88E5")
	MoodFearful   = lipgloss.Color("#8E24AA")
	MoodHappy     = lipgloss.Color("#FDD835")
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

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
