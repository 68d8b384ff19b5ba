package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, readable on dark and light terminals
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Index = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Exercises
var (
	// Blank marks the slot the learner fills in.
	Blank = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true).
		Underline(true)

	// Match highlights sentences that contain a preferred term.
	Match = lipgloss.NewStyle().
		Foreground(Secondary)

	// Card frames the end-of-session summary.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
