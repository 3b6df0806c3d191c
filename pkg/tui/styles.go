package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#06B6D4") // Cyan
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	successColor   = lipgloss.Color("#10B981") // Green
	mutedColor     = lipgloss.Color("#6B7280") // Gray

	bgDark = lipgloss.Color("#1F2937")

	textPrimary   = lipgloss.Color("#F9FAFB")
	textSecondary = lipgloss.Color("#9CA3AF")
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textPrimary).
			Background(primaryColor).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textSecondary).
			Background(bgDark).
			Padding(0, 1)

	statusItemStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	settledStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	moverSkin = nodeSkin{
		fill:  lipgloss.NewStyle().Foreground(textPrimary).Background(primaryColor),
		ghost: lipgloss.NewStyle().Foreground(primaryColor),
		label: "mover",
	}

	vanisherSkin = nodeSkin{
		fill:  lipgloss.NewStyle().Foreground(textPrimary).Background(secondaryColor),
		ghost: lipgloss.NewStyle().Foreground(secondaryColor),
		label: "vanisher",
	}

	badgeSkin = nodeSkin{
		fill:  lipgloss.NewStyle().Foreground(bgDark).Background(accentColor),
		ghost: lipgloss.NewStyle().Foreground(accentColor),
		label: "new!",
	}
)
