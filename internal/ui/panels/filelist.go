package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dstrand/filmstrip/internal/queue"
	"github.com/dstrand/filmstrip/internal/ui/border"
	"github.com/dstrand/filmstrip/internal/ui/styles"
	"github.com/dstrand/filmstrip/internal/ui/text"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// entryRow pairs an entry with its arrival index, which filtering would
// otherwise lose.
type entryRow struct {
	index int
	file  queue.QueuedFile
}

// FileList shows every queued file in arrival order with its render
// state. Selecting a ready entry and pressing enter jumps the preview to
// it; pending and failed entries can be selected but not jumped to.
type FileList struct {
	queue        *queue.Queue
	rows         []entryRow
	selected     int
	offset       int
	width        int
	height       int
	focused      bool
	filterActive bool
	filterText   string
	filterInput  textinput.Model
	tickStep     int
}

func NewFileList(q *queue.Queue) FileList {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.CharLimit = 64

	fl := FileList{queue: q, filterInput: ti}
	fl.applyFilter()
	return fl
}

func (f FileList) Update(msg tea.Msg) (FileList, tea.Cmd) {
	switch msg.(type) {
	case QueueUpdatedMsg:
		f.applyFilter()
		f.clampSelection()
		return f, nil
	case AnimTickMsg:
		f.tickStep++
		return f, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	if f.filterActive {
		return f.updateFilter(keyMsg)
	}

	switch keyMsg.String() {
	case "/":
		f.filterActive = true
		f.filterInput.Focus()
		return f, nil
	case "j", "down":
		if f.selected < len(f.rows)-1 {
			f.selected++
			f.scrollToSelection()
		}
	case "k", "up":
		if f.selected > 0 {
			f.selected--
			f.scrollToSelection()
		}
	case "g":
		f.selected = 0
		f.scrollToSelection()
	case "G":
		f.selected = max(len(f.rows)-1, 0)
		f.scrollToSelection()
	case "y":
		if row := f.selectedRow(); row != nil {
			path := row.file.Event.Path
			return f, func() tea.Msg { return YankMsg{Text: path} }
		}
	case "enter":
		if row := f.selectedRow(); row != nil {
			f.queue.GoToEntry(row.index)
		}
	}
	return f, nil
}

func (f *FileList) updateFilter(msg tea.KeyMsg) (FileList, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			f.filterText = ""
			f.filterInput.SetValue("")
		}
		f.filterActive = false
		f.filterInput.Blur()
		f.applyFilter()
		f.clampSelection()
		return *f, nil
	}

	var cmd tea.Cmd
	f.filterInput, cmd = f.filterInput.Update(msg)
	f.filterText = f.filterInput.Value()
	f.applyFilter()
	f.clampSelection()
	return *f, cmd
}

func (f FileList) View() string {
	innerWidth := max(f.width-2, 0)
	innerHeight := max(f.height-2, 0)

	ready := 0
	for _, row := range f.rows {
		if row.file.State == queue.StateReady {
			ready++
		}
	}
	title := fmt.Sprintf("[1] Files (%d/%d ready)", ready, len(f.rows))

	var keybinds []border.Keybind
	if f.focused {
		keybinds = []border.Keybind{
			{Key: "↵", Label: " view"},
			{Key: "y", Label: "ank path"},
			{Key: "/", Label: "filter"},
		}
	}

	content := f.renderContent(innerWidth, innerHeight)
	return border.RenderPanel(title, content, keybinds, f.width, f.height, f.focused)
}

func (f FileList) renderContent(width, height int) string {
	if len(f.rows) == 0 {
		if f.filterActive || f.filterText != "" {
			return f.renderFilterBar() + "\nNo matching files."
		}
		return styles.TextDimStyle.Render("Waiting for generated files...")
	}

	var b strings.Builder
	availableRows := height
	if f.filterActive {
		b.WriteString(f.renderFilterBar())
		b.WriteString("\n")
		availableRows--
	}

	if f.offset > 0 {
		b.WriteString(styles.TextDimStyle.Render("  ▲"))
		b.WriteString("\n")
		availableRows--
	}

	end := f.offset + availableRows
	if end > len(f.rows) {
		end = len(f.rows)
	}
	if end < len(f.rows) && availableRows > 1 {
		end = f.offset + availableRows - 1
		if end > len(f.rows) {
			end = len(f.rows)
		}
	}

	for i := f.offset; i < end; i++ {
		row := f.rows[i]

		icon := f.stateIcon(row.file.State)
		seq := fmt.Sprintf("#%d", row.file.Event.Sequence)
		path := row.file.Event.Path

		if i == f.selected {
			plain := fmt.Sprintf("%s %4s  %s", text.PadRight(f.plainIcon(row.file.State), 2), seq, path)
			plain = text.Truncate(plain, width)
			b.WriteString(styles.SelectedRowStyle.Width(width).Render(plain))
		} else {
			line := fmt.Sprintf("%s %4s  %s",
				icon,
				styles.TextSecondaryStyle.Render(seq),
				path,
			)
			line = text.Truncate(line, width)
			if row.file.State == queue.StateFailed {
				line = styles.TextDimStyle.Render(text.Truncate(fmt.Sprintf("%s %4s  %s", f.plainIcon(row.file.State), seq, path), width))
			}
			b.WriteString(line)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(f.rows) {
		b.WriteString("\n")
		b.WriteString(styles.TextDimStyle.Render("  ▼"))
	}

	return b.String()
}

func (f FileList) plainIcon(state queue.RenderState) string {
	switch state {
	case queue.StateReady:
		return "✓"
	case queue.StateFailed:
		return "✗"
	default:
		return spinnerFrames[f.tickStep%len(spinnerFrames)]
	}
}

func (f FileList) stateIcon(state queue.RenderState) string {
	return lipgloss.NewStyle().
		Foreground(styles.RenderStateColor(state)).
		Render(text.PadRight(f.plainIcon(state), 2))
}

func (f *FileList) SetSize(w, h int) {
	f.width = w
	f.height = h
	f.filterInput.Width = w - 6
	f.clampSelection()
}

func (f *FileList) SetFocused(focused bool) {
	f.focused = focused
}

// FilterActive reports whether the filter input is capturing keys.
func (f FileList) FilterActive() bool {
	return f.filterActive
}

func (f FileList) selectedRow() *entryRow {
	if len(f.rows) == 0 || f.selected >= len(f.rows) {
		return nil
	}
	row := f.rows[f.selected]
	return &row
}

func (f *FileList) applyFilter() {
	entries := f.queue.Entries()
	rows := make([]entryRow, 0, len(entries))
	query := strings.ToLower(f.filterText)
	for i, e := range entries {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Event.Path), query) &&
			!strings.Contains(strings.ToLower(string(e.State)), query) {
			continue
		}
		rows = append(rows, entryRow{index: i, file: e})
	}
	f.rows = rows
}

func (f *FileList) clampSelection() {
	if len(f.rows) == 0 {
		f.selected = 0
		f.offset = 0
		return
	}
	if f.selected >= len(f.rows) {
		f.selected = len(f.rows) - 1
	}
	if f.selected < 0 {
		f.selected = 0
	}
	f.scrollToSelection()
}

func (f *FileList) scrollToSelection() {
	visible := f.visibleRows()
	if visible <= 0 {
		return
	}
	if f.selected < f.offset {
		f.offset = f.selected
	}
	if f.selected >= f.offset+visible {
		f.offset = f.selected - visible + 1
	}
	maxOffset := len(f.rows) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if f.offset > maxOffset {
		f.offset = maxOffset
	}
	if f.offset < 0 {
		f.offset = 0
	}
}

func (f FileList) visibleRows() int {
	rows := f.height - 2
	if f.filterActive {
		rows--
	}
	if f.offset > 0 {
		rows--
	}
	if f.offset+rows < len(f.rows) {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (f FileList) renderFilterBar() string {
	return "/ " + f.filterInput.View()
}
