package ui

import (
	"bytes"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/dstrand/filmstrip/internal/config"
	"github.com/dstrand/filmstrip/internal/queue"
)

const waitDuration = 3 * time.Second

// appAdapter wraps the App (value receiver model) into a model that
// suppresses Init() side effects (queue listener, tick timers) so the
// teatest program doesn't block forever on channel reads.
type appAdapter struct {
	app App
}

func newTestAppAdapter(tb testing.TB) (*appAdapter, *queue.Queue) {
	tb.Helper()
	cfg := config.DefaultConfig()
	q := queue.New("run-1")
	return &appAdapter{app: NewApp(&cfg, q, "http://127.0.0.1:8080/")}, q
}

func (a *appAdapter) Init() tea.Cmd {
	// Skip the real Init() which blocks on queue.Changes() channel.
	return nil
}

func (a *appAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.app.Update(msg)
	a.app = m.(App)
	return a, cmd
}

func (a *appAdapter) View() string {
	return a.app.View()
}

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
		if bytesContains(buf.Bytes(), []byte(substr)) {
			return
		}
		if time.Now().After(deadline) {
			tb.Fatalf("WaitFor: condition not met after %s. Last output:\n%s", waitDuration, buf.String())
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func bytesContains(haystack, needle []byte) bool {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return false
	}
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
