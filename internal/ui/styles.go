// Package ui provides styled terminal output for command results.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorDanger  = lipgloss.Color("#EF4444") // Red
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorBorder  = lipgloss.Color("#374151") // Dark gray
)

// Text styles.
var (
	// TitleStyle for headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// SuccessStyle for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// WarningStyle for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// InfoStyle for regular output lines.
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	// DimStyle for secondary text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))
)

// Table styles.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Bold(true)

	TableRuleStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)
