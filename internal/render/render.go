package render

import (
	"context"
	"strings"

	"github.com/dstrand/filmstrip/internal/queue"
)

// Renderer turns one generated file into a self-contained HTML document.
// An error or an empty document both mean the file cannot be previewed;
// neither aborts the run.
type Renderer interface {
	Render(ctx context.Context, path, content string) (string, error)
}

// Func adapts a plain function to the Renderer interface.
type Func func(ctx context.Context, path, content string) (string, error)

func (f Func) Render(ctx context.Context, path, content string) (string, error) {
	return f(ctx, path, content)
}

// Dispatch starts the asynchronous render for ev and settles its queue
// entry exactly once when the outcome is known. The caller is never
// blocked and render failures never surface as errors here: they fold
// into the entry's failed state. The settlement carries the run id
// captured at dispatch time, so a queue that has since been reset drops
// it silently.
func Dispatch(q *queue.Queue, ev queue.FileEvent, r Renderer) {
	runID := q.RunID()
	go func() {
		html, err := r.Render(context.Background(), ev.Path, ev.Content)
		ok := err == nil && strings.TrimSpace(html) != ""
		q.Settle(runID, ev.Sequence, html, ok)
	}()
}
