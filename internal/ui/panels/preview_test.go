package panels

import (
	"strings"
	"testing"
	"time"

	"github.com/dstrand/filmstrip/internal/queue"
)

func newTestPreview(q *queue.Queue) Preview {
	p := NewPreview(q, 10*time.Millisecond, time.Millisecond, "http://127.0.0.1:8080/")
	p.SetSize(60, 20)
	return p
}

// settleFade drains an in-flight crossfade by feeding the panel its own
// tick messages until it reaches the steady state.
func settleFade(t *testing.T, p Preview) Preview {
	t.Helper()
	for i := 0; p.phase != fadeNone; i++ {
		if i > 10 {
			t.Fatal("crossfade never settled")
		}
		p, _ = p.Update(CrossfadeTickMsg{Gen: p.fadeGen})
	}
	return p
}

func revealAll(t *testing.T, p Preview) Preview {
	t.Helper()
	for i := 0; !p.typer.Done(); i++ {
		if i > 500 {
			t.Fatal("typewriter never finished")
		}
		p.typer, _ = p.typer.Update(TypewriterTickMsg{ID: p.typer.id, Gen: p.typer.gen})
	}
	return p
}

func TestPreviewGeneratingMessage(t *testing.T) {
	p := newTestPreview(queue.New("run-1"))
	p, _ = p.Update(UIStateMsg{State: "generating"})

	want := "The AI is currently generating code and building your app. Preview will be ready once generation completes..."
	if p.typer.Text() != want {
		t.Errorf("expected generating message, got %q", p.typer.Text())
	}

	p = revealAll(t, p)
	if p.typer.View() != want {
		t.Errorf("expected full reveal, got %q", p.typer.View())
	}
}

func TestPreviewUnknownStateFallsBack(t *testing.T) {
	p := newTestPreview(queue.New("run-1"))
	p, _ = p.Update(UIStateMsg{State: "somethingElse"})
	if p.typer.Text() != "Building your components..." {
		t.Errorf("expected fallback message, got %q", p.typer.Text())
	}
}

func TestPreviewRenderingCountMessage(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Append("src/Nav.tsx", "b")

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	if p.typer.Text() != "Rendering 2 components..." {
		t.Errorf("expected rendering count, got %q", p.typer.Text())
	}
}

func TestPreviewShowsFirstReadyEntryAfterFade(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)

	p := newTestPreview(q)
	p, cmd := p.Update(QueueUpdatedMsg{})
	if cmd == nil {
		t.Fatal("expected a crossfade tick after the queue update")
	}
	if _, shown := p.Shown(); shown {
		t.Error("document must not appear before the fade midpoint")
	}

	p = settleFade(t, p)
	idx, shown := p.Shown()
	if !shown || idx != 0 {
		t.Errorf("expected entry 0 shown after fade, got idx=%d shown=%v", idx, shown)
	}
	if !strings.Contains(p.View(), "App.tsx") {
		t.Error("expected panel title to carry the displayed path")
	}
}

func TestPreviewMidFadeSettlementsDoNotSkipFirstEntry(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Append("src/Nav.tsx", "b")
	q.Append("src/Footer.tsx", "c")

	// Renders finish out of order, faster than the crossfade.
	q.Settle("run-1", 2, "<html><body>Nav</body></html>", true)
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{}) // fade toward entry 0 begins

	// A third settlement lands while the fade is still in flight.
	q.Settle("run-1", 3, "<html><body>Footer</body></html>", true)

	p = settleFade(t, p)
	idx, shown := p.Shown()
	if !shown || idx != 0 {
		t.Fatalf("first presented document is entry %d, want 0", idx)
	}

	// The next dwell tick presents entry 1; nothing was skipped.
	q.Advance()
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)
	if idx, _ := p.Shown(); idx != 1 {
		t.Errorf("expected entry 1 presented after the dwell tick, got %d", idx)
	}
}

func TestPreviewStaleFadeTickIgnored(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})

	p, _ = p.Update(CrossfadeTickMsg{Gen: p.fadeGen - 1})
	if p.phase != fadeOut {
		t.Error("stale tick must not advance the fade")
	}
}

func TestPreviewFailedEntryShowsPlaceholder(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Settle("run-1", 1, "", false)

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)

	if !strings.Contains(p.View(), "Cannot render this content") {
		t.Error("expected placeholder for a failed entry")
	}
}

func TestPreviewControlsHiddenBelowTwoNavigable(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)

	if strings.Contains(p.View(), "●") {
		t.Error("expected no navigation dots with a single navigable entry")
	}
}

func TestPreviewControlsWithTwoReadyEntries(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Append("src/Nav.tsx", "b")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)
	q.Settle("run-1", 2, "<html><body>Nav</body></html>", true)
	q.Advance()

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)

	view := p.View()
	if !strings.Contains(view, "●") || !strings.Contains(view, "○") {
		t.Error("expected active and inactive dots")
	}
	if !strings.Contains(view, "2/2") {
		t.Error("expected position counter 2/2")
	}
}

func TestPreviewArrowsAroundFailedEntry(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Append("src/Nav.tsx", "b")
	q.Append("src/Footer.tsx", "c")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)
	q.Settle("run-1", 2, "", false)
	q.Settle("run-1", 3, "<html><body>Footer</body></html>", true)
	q.Advance() // onto the failed entry's placeholder

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)

	// The failed entry has no navigable position, but ready entries sit
	// on both sides, so both arrows must be live.
	hasPrev, hasNext := p.navSpan()
	if !hasPrev {
		t.Error("expected a live prev arrow with a ready entry behind")
	}
	if !hasNext {
		t.Error("expected a live next arrow with a ready entry ahead")
	}

	p, _ = p.Update(keyMsg("l"))
	if _, idx, _ := q.Displayed(); idx != 2 {
		t.Errorf("expected l to move past the failed entry to 2, got %d", idx)
	}
}

func TestPreviewNavigationKeys(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Append("src/Nav.tsx", "b")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)
	q.Settle("run-1", 2, "<html><body>Nav</body></html>", true)
	q.Advance()

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)

	p, _ = p.Update(keyMsg("h"))
	if _, idx, _ := q.Displayed(); idx != 0 {
		t.Errorf("expected h to move to entry 0, got %d", idx)
	}

	p, _ = p.Update(keyMsg("l"))
	if _, idx, _ := q.Displayed(); idx != 1 {
		t.Errorf("expected l to move to entry 1, got %d", idx)
	}

	p, _ = p.Update(keyMsg("1"))
	if _, idx, _ := q.Displayed(); idx != 0 {
		t.Errorf("expected 1 to jump to entry 0, got %d", idx)
	}
}

func TestPreviewCursorMoveKicksOffNewFade(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Append("src/Nav.tsx", "b")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)
	q.Settle("run-1", 2, "<html><body>Nav</body></html>", true)
	q.Advance()

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)

	p, _ = p.Update(keyMsg("h"))
	p, cmd := p.Update(QueueUpdatedMsg{})
	if cmd == nil || p.phase != fadeOut {
		t.Fatal("expected a new fade after navigating")
	}
	p = settleFade(t, p)

	idx, _ := p.Shown()
	if idx != 0 {
		t.Errorf("expected entry 0 shown after navigating back, got %d", idx)
	}
}

func TestPreviewCopyURLKey(t *testing.T) {
	p := newTestPreview(queue.New("run-1"))
	p, cmd := p.Update(keyMsg("o"))
	if cmd == nil {
		t.Fatal("expected yank command")
	}
	msg, ok := cmd().(YankMsg)
	if !ok {
		t.Fatalf("expected YankMsg, got %T", cmd())
	}
	if msg.Text != "http://127.0.0.1:8080/" {
		t.Errorf("expected preview URL, got %q", msg.Text)
	}
}

func TestPreviewResetRunClearsShownDocument(t *testing.T) {
	q := queue.New("run-1")
	q.Append("src/App.tsx", "a")
	q.Settle("run-1", 1, "<html><body>App</body></html>", true)

	p := newTestPreview(q)
	p, _ = p.Update(QueueUpdatedMsg{})
	p = settleFade(t, p)

	q.Reset("run-2")
	p, _ = p.ResetRun()

	if _, shown := p.Shown(); shown {
		t.Error("expected no shown document after run reset")
	}
	p = revealAll(t, p)
	if !strings.Contains(p.View(), "Building your components") {
		t.Error("expected loading view after run reset")
	}
}
