package panels

// QueueUpdatedMsg is sent when anything in the file queue changes:
// an append, a settlement, or a cursor move.
type QueueUpdatedMsg struct{}

// RunStartedMsg is sent when the generation pipeline starts a new run.
type RunStartedMsg struct {
	RunID string
}

// RunEndedMsg is sent when the generation pipeline finishes the run.
type RunEndedMsg struct{}

// UIStateMsg carries the host-supplied loading state shown while the
// queue is empty.
type UIStateMsg struct {
	State string
}

// YankMsg asks the app to copy text to the clipboard.
type YankMsg struct {
	Text string
}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}

// AnimTickMsg advances spinner frames.
type AnimTickMsg struct{}

// AdvanceTickMsg is the auto-advance dwell tick.
type AdvanceTickMsg struct{}

// CrossfadeTickMsg ends one phase of the preview crossfade. Gen
// identifies the fade cycle; ticks from an abandoned cycle are inert.
type CrossfadeTickMsg struct {
	Gen int
}

// TypewriterTickMsg reveals one more character. Gen identifies the
// reveal cycle; ticks from an abandoned cycle are inert.
type TypewriterTickMsg struct {
	ID  int
	Gen int
}

// TypewriterDoneMsg is emitted exactly once when a reveal completes.
type TypewriterDoneMsg struct {
	ID int
}
