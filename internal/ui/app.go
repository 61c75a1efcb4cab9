package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dstrand/filmstrip/internal/config"
	"github.com/dstrand/filmstrip/internal/queue"
	"github.com/dstrand/filmstrip/internal/ui/clipboard"
	"github.com/dstrand/filmstrip/internal/ui/panels"
)

const (
	panelFileList = 0
	panelPreview  = 1
	numPanels     = 2
)

const animInterval = 250 * time.Millisecond

type App struct {
	cfg          *config.Config
	queue        *queue.Queue
	layout       Layout
	width        int
	height       int
	focusedPanel int
	fileList     panels.FileList
	preview      panels.Preview
	statusBar    panels.StatusBar
	keys         KeyMap
	ready        bool
}

func NewApp(cfg *config.Config, q *queue.Queue, previewURL string) App {
	crossfade := time.Duration(cfg.Preview.CrossfadeMS) * time.Millisecond
	typeSpeed := time.Duration(cfg.UI.TypewriterMS) * time.Millisecond

	pv := panels.NewPreview(q, crossfade, typeSpeed, previewURL)
	pv.SetFocused(true)

	return App{
		cfg:          cfg,
		queue:        q,
		focusedPanel: panelPreview,
		fileList:     panels.NewFileList(q),
		preview:      pv,
		statusBar:    panels.NewStatusBar(q, previewURL),
		keys:         DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		listenForChanges(a.queue.Changes()),
		a.animTick(),
		a.advanceTick(),
		a.preview.Init(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout = Calculate(msg.Width, msg.Height)
		a.propagateSizes()
		return a, nil

	case QueueUpdatedMsg:
		var flCmd, pvCmd tea.Cmd
		a.fileList, flCmd = a.fileList.Update(msg)
		a.preview, pvCmd = a.preview.Update(msg)
		return a, tea.Batch(flCmd, pvCmd, listenForChanges(a.queue.Changes()))

	case RunStartedMsg:
		a.statusBar.SetGenerating(true)
		var resetCmd, stateCmd, flCmd tea.Cmd
		a.preview, resetCmd = a.preview.ResetRun()
		a.preview, stateCmd = a.preview.Update(UIStateMsg{State: "generating"})
		a.fileList, flCmd = a.fileList.Update(QueueUpdatedMsg{})
		return a, tea.Batch(resetCmd, stateCmd, flCmd)

	case RunEndedMsg:
		a.statusBar.SetGenerating(false)
		a.statusBar.SetFlash("generation complete")
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(UIStateMsg{State: ""})
		return a, tea.Batch(cmd, clearFlashLater())

	case UIStateMsg:
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd

	case panels.AnimTickMsg:
		a.statusBar.Tick()
		var cmd tea.Cmd
		a.fileList, cmd = a.fileList.Update(msg)
		return a, tea.Batch(cmd, a.animTick())

	case panels.AdvanceTickMsg:
		a.queue.Advance()
		return a, a.advanceTick()

	case panels.CrossfadeTickMsg, panels.TypewriterTickMsg, panels.TypewriterDoneMsg:
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd

	case YankMsg:
		if err := clipboard.Write(msg.Text); err != nil {
			a.statusBar.SetFlash("clipboard unavailable")
		} else {
			a.statusBar.SetFlash("copied " + msg.Text)
		}
		return a, clearFlashLater()

	case ClearFlashMsg:
		a.statusBar.ClearFlash()
		return a, nil

	case tea.KeyMsg:
		if a.fileList.FilterActive() && a.focusedPanel == panelFileList {
			var cmd tea.Cmd
			a.fileList, cmd = a.fileList.Update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.FocusNext):
			a.focusedPanel = (a.focusedPanel + 1) % numPanels
			a.updateFocusState()
			return a, nil
		}
		return a.routeKey(msg)
	}
	return a, nil
}

func (a App) View() string {
	if !a.ready {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}

	if a.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			a.width, a.height, MinWidth, MinHeight)
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center, msg)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, a.fileList.View(), a.preview.View())
	return lipgloss.JoinVertical(lipgloss.Left, row, a.statusBar.View())
}

func (a App) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.focusedPanel {
	case panelFileList:
		var cmd tea.Cmd
		a.fileList, cmd = a.fileList.Update(msg)
		return a, cmd
	case panelPreview:
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) propagateSizes() {
	l := a.layout
	a.fileList.SetSize(l.FileListWidth, l.FileListHeight)
	a.preview.SetSize(l.PreviewWidth, l.PreviewHeight)
	a.statusBar.SetSize(l.StatusBarWidth)
}

func (a *App) updateFocusState() {
	a.fileList.SetFocused(a.focusedPanel == panelFileList)
	a.preview.SetFocused(a.focusedPanel == panelPreview)
}

func (a App) animTick() tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg {
		return panels.AnimTickMsg{}
	})
}

func (a App) advanceTick() tea.Cmd {
	interval := time.Duration(a.cfg.Preview.AdvanceMS) * time.Millisecond
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return panels.AdvanceTickMsg{}
	})
}

func clearFlashLater() tea.Cmd {
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return ClearFlashMsg{}
	})
}

func listenForChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return QueueUpdatedMsg{}
	}
}
