package panels

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// panelAdapter wraps panel types that use typed Update signatures into
// a proper tea.Model so they can be used with teatest.
type panelAdapter struct {
	view     func() string
	updateFn func(tea.Msg) tea.Cmd
}

func (a panelAdapter) Init() tea.Cmd                           { return nil }
func (a panelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return a, a.updateFn(msg) }
func (a panelAdapter) View() string                            { return a.view() }

// wrapFileList creates a tea.Model adapter around a FileList for teatest use.
func wrapFileList(fl *FileList) tea.Model {
	return panelAdapter{
		view: func() string { return fl.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newFL, cmd := fl.Update(msg)
			*fl = newFL
			return cmd
		},
	}
}

// wrapPreview creates a tea.Model adapter around a Preview for teatest use.
func wrapPreview(p *Preview) tea.Model {
	return panelAdapter{
		view: func() string { return p.View() },
		updateFn: func(msg tea.Msg) tea.Cmd {
			newP, cmd := p.Update(msg)
			*p = newP
			return cmd
		},
	}
}

// wrapStatusBar creates a tea.Model adapter around a StatusBar for teatest use.
// StatusBar has no Update method, so the adapter uses a no-op.
func wrapStatusBar(sb *StatusBar) tea.Model {
	return panelAdapter{
		view:     func() string { return sb.View() },
		updateFn: func(tea.Msg) tea.Cmd { return nil },
	}
}

// waitDuration is the standard timeout for WaitFor calls in tests.
const waitDuration = 3 * time.Second

// tmOutputs accumulates output per TestModel so that successive
// waitForContains calls see everything rendered so far. tm.Output() is
// a consuming reader, so teatest.WaitFor alone would only see frames
// produced after the previous wait returned.
var tmOutputs = map[*teatest.TestModel]*bytes.Buffer{}

// waitForContains waits until the output contains the given substring.
func waitForContains(tb testing.TB, tm *teatest.TestModel, substr string) {
	tb.Helper()
	buf, ok := tmOutputs[tm]
	if !ok {
		buf = &bytes.Buffer{}
		tmOutputs[tm] = buf
	}
	deadline := time.Now().Add(waitDuration)
	for {
		if _, err := io.Copy(buf, tm.Output()); err != nil {
			tb.Fatalf("WaitFor: %v", err)
		}
		if contains(buf.Bytes(), substr) {
			return
		}
		if time.Now().After(deadline) {
			tb.Fatalf("WaitFor: condition not met after %s. Last output:\n%s", waitDuration, buf.String())
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func contains(bts []byte, s string) bool {
	return len(s) > 0 && len(bts) >= len(s) && bytesContains(bts, []byte(s))
}

func bytesContains(haystack, needle []byte) bool {
	for i := 0; i <= len(haystack)-len(needle); i++ {
		found := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}
