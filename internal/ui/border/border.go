package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dstrand/filmstrip/internal/ui/styles"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	horizBar = "─"
	vertBar  = "│"
)

// Keybind is a single bottom-border hint: [y]ank, [o]pen, etc.
type Keybind struct {
	Key   string
	Label string
}

func renderKeybind(kb Keybind) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return keyStyle.Render("["+kb.Key+"]") + labelStyle.Render(kb.Label)
}

func borderColor(focused bool) lipgloss.AdaptiveColor {
	if focused {
		return styles.BorderFocused
	}
	return styles.BorderUnfocused
}

// renderTop renders: ╭─ Title ────────────╮
func renderTop(title string, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := lipgloss.NewStyle().Foreground(borderColor(focused))

	var ts lipgloss.Style
	if focused {
		ts = styles.TitleStyle
	} else {
		ts = styles.TextSecondaryStyle.Bold(true)
	}

	innerWidth := width - 2
	if title == "" {
		return bs.Render(cornerTL + strings.Repeat(horizBar, innerWidth) + cornerTR)
	}

	titleRendered := ts.Render(title)
	fill := innerWidth - lipgloss.Width(titleRendered) - 3 // "─ " prefix + " " suffix
	if fill < 0 {
		fill = 0
	}
	return bs.Render(cornerTL+horizBar+" ") +
		titleRendered +
		bs.Render(" "+strings.Repeat(horizBar, fill)+cornerTR)
}

// renderBottom renders the bottom border, with keybind hints when focused:
// ╰─ [y]ank  [o]pen ──╯. Hints that overflow the panel are dropped.
func renderBottom(keybinds []Keybind, width int, focused bool) string {
	if width < 2 {
		return ""
	}
	bs := lipgloss.NewStyle().Foreground(borderColor(focused))
	innerWidth := width - 2

	if !focused || len(keybinds) == 0 {
		return bs.Render(cornerBL + strings.Repeat(horizBar, innerWidth) + cornerBR)
	}

	maxKbWidth := innerWidth - 3
	if maxKbWidth < 0 {
		maxKbWidth = 0
	}

	var parts []string
	used := 0
	for _, kb := range keybinds {
		rendered := renderKeybind(kb)
		w := lipgloss.Width(rendered)
		sep := 0
		if len(parts) > 0 {
			sep = 2
		}
		if used+sep+w > maxKbWidth {
			break
		}
		parts = append(parts, rendered)
		used += sep + w
	}

	fill := maxKbWidth - used
	if fill < 0 {
		fill = 0
	}
	return bs.Render(cornerBL+horizBar+" ") +
		strings.Join(parts, "  ") +
		bs.Render(" "+strings.Repeat(horizBar, fill)+cornerBR)
}

// renderSides wraps content lines with │ on each side, truncating and
// padding each line to exactly width-2 columns (ANSI-aware).
func renderSides(content string, width int, focused bool) string {
	if width < 2 {
		return content
	}
	bs := lipgloss.NewStyle().Foreground(borderColor(focused))
	truncator := lipgloss.NewStyle().MaxWidth(width - 2)

	innerWidth := width - 2
	var result []string
	for _, line := range strings.Split(content, "\n") {
		w := lipgloss.Width(line)
		if w > innerWidth {
			line = truncator.Render(line)
			w = lipgloss.Width(line)
		}
		if w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		result = append(result, bs.Render(vertBar)+line+bs.Render(vertBar))
	}
	return strings.Join(result, "\n")
}

// RenderPanel assembles a complete bordered panel: a titled top border,
// content padded/cropped to exactly (height-2)x(width-2), and a bottom
// border carrying keybind hints when focused.
func RenderPanel(title, content string, keybinds []Keybind, width, height int, focused bool) string {
	if height < 2 || width < 2 {
		return ""
	}

	innerHeight := height - 2
	innerWidth := width - 2

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, strings.Repeat(" ", innerWidth))
	}

	return renderTop(title, width, focused) + "\n" +
		renderSides(strings.Join(lines, "\n"), width, focused) + "\n" +
		renderBottom(keybinds, width, focused)
}
