package panels

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dstrand/filmstrip/internal/queue"
	"github.com/dstrand/filmstrip/internal/ui/border"
	"github.com/dstrand/filmstrip/internal/ui/styles"
	"github.com/dstrand/filmstrip/internal/ui/text"
)

// Status messages shown while the queue is empty, keyed by the
// host-supplied ui state. Unknown states fall back to the generic
// building message.
var stateMessages = map[string]string{
	"generating":      "The AI is currently generating code and building your app. Preview will be ready once generation completes...",
	"recovering":      "Recovering your previous session. Preview will be back in a moment...",
	"sandboxNotReady": "The development sandbox is still starting up. Hang tight...",
	"newProject":      "Setting up your new project...",
}

const fallbackMessage = "Building your components..."

const placeholderText = "Cannot render this content"

// statusMessage maps a ui state to its loading message.
func statusMessage(uiState string) string {
	if msg, ok := stateMessages[uiState]; ok {
		return msg
	}
	return fallbackMessage
}

type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeOut
	fadeIn
)

// shownDoc is the document currently presented, which lags the queue's
// displayed entry by at most one crossfade.
type shownDoc struct {
	index  int
	path   string
	html   string
	failed bool
}

// Preview drives the visible state machine: empty (status message),
// rendering (progress message), displaying (document + navigation
// controls). Document swaps happen only at the midpoint of a crossfade,
// so two documents are never visually interleaved.
type Preview struct {
	queue      *queue.Queue
	width      int
	height     int
	focused    bool
	uiState    string
	typer      Typewriter
	crossfade  time.Duration
	phase      fadePhase
	fadeGen    int
	shown      shownDoc
	hasShown   bool
	body       viewport.Model
	previewURL string
}

func NewPreview(q *queue.Queue, crossfade, typeSpeed time.Duration, previewURL string) Preview {
	p := Preview{
		queue:      q,
		crossfade:  crossfade,
		typer:      NewTypewriter(1, typeSpeed),
		body:       viewport.New(0, 0),
		previewURL: previewURL,
	}
	p.typer, _ = p.typer.SetText(p.statusText())
	return p
}

// Init schedules the first typewriter tick for the initial status text.
func (p Preview) Init() tea.Cmd {
	return p.typer.Start()
}

func (p Preview) Update(msg tea.Msg) (Preview, tea.Cmd) {
	switch msg := msg.(type) {
	case QueueUpdatedMsg:
		return p.refresh()

	case UIStateMsg:
		p.uiState = msg.State
		return p.syncStatus()

	case CrossfadeTickMsg:
		if msg.Gen != p.fadeGen {
			return p, nil
		}
		return p.stepFade()

	case TypewriterTickMsg:
		var cmd tea.Cmd
		p.typer, cmd = p.typer.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

// refresh reconciles the panel with the queue after any queue change:
// restarts the status typewriter when still loading, or kicks off a
// crossfade when the displayed entry moved.
func (p Preview) refresh() (Preview, tea.Cmd) {
	if _, idx, ok := p.queue.Displayed(); ok {
		if p.phase == fadeNone && (!p.hasShown || idx != p.shown.index) {
			return p.beginFade()
		}
		return p, nil
	}
	return p.syncStatus()
}

func (p Preview) syncStatus() (Preview, tea.Cmd) {
	var cmd tea.Cmd
	p.typer, cmd = p.typer.SetText(p.statusText())
	return p, cmd
}

func (p Preview) statusText() string {
	if n := p.queue.Len(); n > 0 {
		return fmt.Sprintf("Rendering %d components...", n)
	}
	return statusMessage(p.uiState)
}

func (p Preview) beginFade() (Preview, tea.Cmd) {
	p.phase = fadeOut
	p.fadeGen++
	return p, p.fadeTick()
}

// stepFade runs the two-phase transition: after the fade-out interval the
// document is swapped atomically, then after the fade-in interval the
// panel is steady again. If the cursor moved during the fade, a fresh
// fade starts at the end rather than swapping mid-phase.
func (p Preview) stepFade() (Preview, tea.Cmd) {
	switch p.phase {
	case fadeOut:
		if e, idx, ok := p.queue.Displayed(); ok {
			p.shown = shownDoc{
				index:  idx,
				path:   e.Event.Path,
				html:   e.HTML,
				failed: e.State == queue.StateFailed,
			}
			p.hasShown = true
			p.body.SetContent(p.shown.html)
			p.body.GotoTop()
		}
		p.phase = fadeIn
		return p, p.fadeTick()
	case fadeIn:
		p.phase = fadeNone
		if _, idx, ok := p.queue.Displayed(); ok && idx != p.shown.index {
			return p.beginFade()
		}
	}
	return p, nil
}

func (p Preview) fadeTick() tea.Cmd {
	gen := p.fadeGen
	return tea.Tick(p.crossfade, func(time.Time) tea.Msg {
		return CrossfadeTickMsg{Gen: gen}
	})
}

func (p Preview) handleKey(msg tea.KeyMsg) (Preview, tea.Cmd) {
	switch s := msg.String(); s {
	case "h", "left":
		p.queue.Prev()
		return p, nil
	case "l", "right":
		p.queue.Next()
		return p, nil
	case "o":
		if p.previewURL != "" {
			url := p.previewURL
			return p, func() tea.Msg { return YankMsg{Text: url} }
		}
		return p, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		p.queue.GoTo(int(s[0]-'0') - 1)
		return p, nil
	}
	var cmd tea.Cmd
	p.body, cmd = p.body.Update(msg)
	return p, cmd
}

func (p Preview) View() string {
	innerWidth := p.width - 2
	innerHeight := p.height - 2
	if innerWidth < 0 {
		innerWidth = 0
	}
	if innerHeight < 0 {
		innerHeight = 0
	}

	title := "[2] Preview"
	if p.hasShown && p.shown.path != "" {
		title = "[2] Preview — " + text.Truncate(p.shown.path, innerWidth-14)
	}

	var keybinds []border.Keybind
	if p.focused {
		keybinds = []border.Keybind{
			{Key: "h/l", Label: " prev/next"},
			{Key: "1-9", Label: " jump"},
			{Key: "o", Label: " copy url"},
		}
	}

	content := p.renderContent(innerWidth, innerHeight)
	return border.RenderPanel(title, content, keybinds, p.width, p.height, p.focused)
}

// ResetRun clears the presented document when a new generation run
// begins; the panel falls back to the loading view until the new run's
// first entry is ready.
func (p Preview) ResetRun() (Preview, tea.Cmd) {
	p.shown = shownDoc{}
	p.hasShown = false
	p.phase = fadeNone
	p.fadeGen++
	return p.syncStatus()
}

func (p Preview) renderContent(width, height int) string {
	if !p.hasShown {
		return p.renderLoading(width, height)
	}
	return p.renderDocument(width, height)
}

func (p Preview) renderLoading(width, height int) string {
	lines := text.Wrap(p.typer.View(), max(width-4, 1))
	var b strings.Builder
	top := (height - len(lines)) / 2
	for i := 0; i < top; i++ {
		b.WriteString("\n")
	}
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(styles.TextSecondaryStyle.Render(line))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (p Preview) renderDocument(width, height int) string {
	controls := p.renderControls(width)
	bodyHeight := height
	if controls != "" {
		bodyHeight -= 2 // blank spacer + control row
	}
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if p.shown.failed {
		body = centerLine(styles.PlaceholderStyle.Render(placeholderText), width, bodyHeight)
	} else {
		p.body.Width = width
		p.body.Height = bodyHeight
		body = p.body.View()
	}

	// The opacity phases of the crossfade: dim the outgoing document
	// before the swap and the incoming one right after.
	if p.phase != fadeNone {
		body = styles.TextDimStyle.Render(body)
	}

	if controls == "" {
		return body
	}
	return body + "\n\n" + controls
}

// renderControls draws the navigation row: prev/next arrows (dimmed at
// the boundaries), one dot per navigable entry, and the current/total
// counter. Hidden entirely until at least two entries are navigable.
func (p Preview) renderControls(width int) string {
	pos, total := p.queue.NavigablePos()
	if total < 2 {
		return ""
	}

	hasPrev, hasNext := p.navSpan()
	prev := styles.TextDimStyle.Render("‹")
	if hasPrev {
		prev = styles.TextPrimaryStyle.Render("‹")
	}
	next := styles.TextDimStyle.Render("›")
	if hasNext {
		next = styles.TextPrimaryStyle.Render("›")
	}

	dots := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if i == pos {
			dots = append(dots, styles.DotActiveStyle.Render("●"))
		} else {
			dots = append(dots, styles.DotInactiveStyle.Render("○"))
		}
	}

	counter := styles.TextSecondaryStyle.Render(fmt.Sprintf("%d/%d", pos, total))
	row := prev + "  " + strings.Join(dots, " ") + "  " + next + "  " + counter
	return centerLine(row, width, 1)
}

// navSpan reports whether ready entries exist on either side of the
// displayed entry. Distinct from the navigable position: a displayed
// failed entry has no position of its own but can still have ready
// neighbors that Prev/Next would reach.
func (p Preview) navSpan() (hasPrev, hasNext bool) {
	_, displayed, ok := p.queue.Displayed()
	if !ok {
		return false, false
	}
	for _, idx := range p.queue.Navigable() {
		if idx < displayed {
			hasPrev = true
		}
		if idx > displayed {
			hasNext = true
		}
	}
	return hasPrev, hasNext
}

func centerLine(line string, width, height int) string {
	pad := (width - lipgloss.Width(line)) / 2
	if pad < 0 {
		pad = 0
	}
	out := strings.Repeat(" ", pad) + line
	top := (height - 1) / 2
	return strings.Repeat("\n", top) + out
}

func (p *Preview) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.body.Width = max(w-2, 0)
	p.body.Height = max(h-4, 1)
}

func (p *Preview) SetFocused(focused bool) {
	p.focused = focused
}

// Shown exposes the currently presented document index for tests.
func (p Preview) Shown() (int, bool) {
	return p.shown.index, p.hasShown
}
