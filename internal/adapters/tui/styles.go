package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cachet/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Copper).
			Foreground(style.White)

	statusConvergedStyle = lipgloss.NewStyle().
				Foreground(style.Green).
				Bold(true)

	statusFailedStyle = lipgloss.NewStyle().
				Foreground(style.Red).
				Bold(true)

	statusRunningStyle = lipgloss.NewStyle().
				Foreground(style.Yellow).
				Bold(true)

	statusIdleStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	entryNameStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	entryValueStyle = lipgloss.NewStyle()

	entryAdvancedStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Faint(true)

	entryNewStyle = lipgloss.NewStyle().
			Foreground(style.Yellow).
			Bold(true)

	entryStagedStyle = lipgloss.NewStyle().
				Foreground(style.Blue)

	entryChangedStyle = lipgloss.NewStyle().
				Foreground(style.Green)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Copper).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	outputTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(style.Slate)
)
