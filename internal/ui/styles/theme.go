package styles

import "github.com/charmbracelet/lipgloss"

// Common reusable styles built from the color tokens.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)
	TitleStyle         = lipgloss.NewStyle().Foreground(TitleText).Bold(true)
	SelectedRowStyle   = lipgloss.NewStyle().Background(SelectedRowBg)

	DotActiveStyle   = lipgloss.NewStyle().Foreground(DotActive).Bold(true)
	DotInactiveStyle = lipgloss.NewStyle().Foreground(DotInactive)

	PlaceholderStyle = lipgloss.NewStyle().Foreground(StatusFailed)
)
