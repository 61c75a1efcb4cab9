package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dstrand/filmstrip/internal/queue"
)

// Semantic colors — AdaptiveColor{Light, Dark}
var (
	BorderFocused   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	BorderUnfocused = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	TitleText       = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	KeybindKey      = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	KeybindLabel    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextPrimary     = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextSecondary   = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextDim         = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}

	StatusPending = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	StatusReady   = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	StatusFailed  = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}

	SelectedRowBg = lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: "#292e42"}

	DotActive   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	DotInactive = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}
)

// RenderStateColor returns the status color for an entry's render state.
func RenderStateColor(state queue.RenderState) lipgloss.AdaptiveColor {
	switch state {
	case queue.StateReady:
		return StatusReady
	case queue.StateFailed:
		return StatusFailed
	case queue.StatePending:
		return StatusPending
	default:
		return TextDim
	}
}
