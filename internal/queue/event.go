package queue

// FileEvent is one file written (or overwritten) by the generation
// pipeline. Sequence strictly increases within a run. Path may repeat when
// the pipeline rewrites a file; that produces a brand-new entry rather than
// mutating the old one.
type FileEvent struct {
	Path     string
	Content  string
	Sequence int
}

// RenderState is the lifecycle of one entry's asynchronous render.
// An entry settles exactly once: pending -> ready or pending -> failed.
type RenderState string

const (
	StatePending RenderState = "pending"
	StateReady   RenderState = "ready"
	StateFailed  RenderState = "failed"
)

// QueuedFile binds a FileEvent to its render outcome. HTML is non-empty
// iff State is StateReady.
type QueuedFile struct {
	Event FileEvent
	State RenderState
	HTML  string
}

// Settled reports whether the render outcome is known.
func (f QueuedFile) Settled() bool {
	return f.State != StatePending
}
