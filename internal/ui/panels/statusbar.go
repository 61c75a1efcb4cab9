package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dstrand/filmstrip/internal/queue"
	"github.com/dstrand/filmstrip/internal/ui/styles"
)

const flashDurationVal = 4 * time.Second

// Version is set via -ldflags at build time. Falls back to "dev".
var Version = "dev"

// FlashDuration returns how long a status bar flash is shown.
func FlashDuration() time.Duration { return flashDurationVal }

type StatusBar struct {
	width      int
	queue      *queue.Queue
	previewURL string
	generating bool
	flash      string
	flashUntil time.Time
	tickStep   int
}

func NewStatusBar(q *queue.Queue, previewURL string) StatusBar {
	return StatusBar{queue: q, previewURL: previewURL}
}

func (s StatusBar) View() string {
	var pending, ready, failed int
	for _, e := range s.queue.Entries() {
		switch e.State {
		case queue.StatePending:
			pending++
		case queue.StateReady:
			ready++
		case queue.StateFailed:
			failed++
		}
	}

	sep := styles.TextDimStyle.Render(" │ ")

	appName := "filmstrip " + Version
	if pending > 0 || s.generating {
		frame := spinnerFrames[s.tickStep%len(spinnerFrames)]
		appName = lipgloss.NewStyle().Foreground(styles.StatusPending).Render(frame) + " " + appName
	}
	name := styles.TextSecondaryStyle.Render(appName)

	counts := fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Foreground(styles.StatusPending).Render(fmt.Sprintf("%d rendering", pending)),
		lipgloss.NewStyle().Foreground(styles.StatusReady).Render(fmt.Sprintf("%d ready", ready)),
		lipgloss.NewStyle().Foreground(styles.StatusFailed).Render(fmt.Sprintf("%d failed", failed)),
	)

	left := " " + name + sep + counts
	if s.previewURL != "" {
		left += sep + styles.TextSecondaryStyle.Render(s.previewURL)
	}

	if s.flash != "" && time.Now().Before(s.flashUntil) {
		flashStr := lipgloss.NewStyle().Foreground(styles.StatusReady).Bold(true).Render("✓ " + s.flash)
		left += sep + flashStr
	}

	right := styles.TextSecondaryStyle.Render("tab:focus  h/l:navigate  q:quit") + " "

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return left + strings.Repeat(" ", gap) + right
}

func (s *StatusBar) SetFlash(msg string) {
	s.flash = msg
	s.flashUntil = time.Now().Add(flashDurationVal)
}

func (s *StatusBar) ClearFlash() {
	s.flash = ""
	s.flashUntil = time.Time{}
}

func (s *StatusBar) SetGenerating(on bool) {
	s.generating = on
}

// Generating reports whether a run is in flight.
func (s StatusBar) Generating() bool {
	return s.generating
}

func (s *StatusBar) SetSize(w int) {
	s.width = w
}

// Tick advances the spinner frame.
func (s *StatusBar) Tick() {
	s.tickStep++
}
