package queue

import "sync"

// Mode says who owns the display cursor. Auto-advance tracks newly settled
// entries in arrival order; any manual navigation takes the cursor over
// until the user catches back up to the newest navigable entry.
type Mode int

const (
	ModeAuto Mode = iota
	ModeManual
)

// Queue holds the file entries for a single generation run and derives
// what should be displayed. Entries are append-only and never reordered;
// only their render state changes in place. Render goroutines settle
// entries concurrently, so all state is guarded by the mutex, and the UI
// is woken through the buffered change channel.
type Queue struct {
	mu        sync.Mutex
	runID     string
	entries   []QueuedFile
	displayed int // arrival index, -1 when nothing shown yet
	mode      Mode
	version   int // bumped whenever the displayed document changes
	changeCh  chan struct{}
}

func New(runID string) *Queue {
	return &Queue{
		runID:     runID,
		displayed: -1,
		changeCh:  make(chan struct{}, 1),
	}
}

// Reset starts a new run: the entry list and cursor are cleared and any
// settlement still in flight for the previous run will be dropped.
func (q *Queue) Reset(runID string) {
	q.mu.Lock()
	q.runID = runID
	q.entries = nil
	q.displayed = -1
	q.mode = ModeAuto
	q.version++
	q.mu.Unlock()
	q.notify()
}

func (q *Queue) RunID() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.runID
}

// Append adds a pending entry at the tail and returns the event with its
// assigned sequence number. Safe to call while earlier entries are still
// rendering.
func (q *Queue) Append(path, content string) FileEvent {
	q.mu.Lock()
	ev := FileEvent{
		Path:     path,
		Content:  content,
		Sequence: len(q.entries) + 1,
	}
	q.entries = append(q.entries, QueuedFile{Event: ev, State: StatePending})
	q.mu.Unlock()
	q.notify()
	return ev
}

// Settle records the render outcome for the entry with the given sequence.
// Settlements for a run that has since been reset are dropped, and an
// entry settles at most once; later calls are ignored. An empty document
// counts as a failure.
//
// Only the very first display happens here; once something is on screen,
// the cursor moves on the presenter's dwell tick via Advance. Settlements
// can land faster than the crossfade, and stepping the cursor per
// settlement would swap documents past entries the user never saw.
func (q *Queue) Settle(runID string, sequence int, html string, ok bool) {
	q.mu.Lock()
	if runID != q.runID {
		q.mu.Unlock()
		return
	}
	idx := sequence - 1
	if idx < 0 || idx >= len(q.entries) || q.entries[idx].Settled() {
		q.mu.Unlock()
		return
	}
	if ok && html != "" {
		q.entries[idx].State = StateReady
		q.entries[idx].HTML = html
	} else {
		q.entries[idx].State = StateFailed
	}
	if q.displayed < 0 {
		q.advanceLocked()
	}
	q.mu.Unlock()
	q.notify()
}

// Advance moves the auto cursor one step if the next entry in arrival
// order has settled. The presenter calls this on its dwell tick so each
// entry gets shown before the cursor moves on.
func (q *Queue) Advance() {
	q.mu.Lock()
	moved := q.advanceLocked()
	q.mu.Unlock()
	if moved {
		q.notify()
	}
}

func (q *Queue) advanceLocked() bool {
	if q.mode != ModeAuto {
		return false
	}
	next := ComputeCursor(q.entries, q.displayed)
	if next == q.displayed {
		return false
	}
	q.displayed = next
	q.version++
	return true
}

// Next moves to the next ready entry after the current position. A no-op
// at the end of the navigable subsequence.
func (q *Queue) Next() {
	q.mu.Lock()
	nav := q.navigableLocked()
	target := -1
	for _, idx := range nav {
		if idx > q.displayed {
			target = idx
			break
		}
	}
	moved := q.goToLocked(nav, target)
	q.mu.Unlock()
	if moved {
		q.notify()
	}
}

// Prev moves to the closest ready entry before the current position. A
// no-op at the start of the navigable subsequence.
func (q *Queue) Prev() {
	q.mu.Lock()
	nav := q.navigableLocked()
	target := -1
	for _, idx := range nav {
		if idx < q.displayed {
			target = idx
		}
	}
	moved := q.goToLocked(nav, target)
	q.mu.Unlock()
	if moved {
		q.notify()
	}
}

// GoTo jumps to the pos'th entry of the navigable (ready-only)
// subsequence. Out-of-range positions and the already-current position
// are no-ops: no transition fires.
func (q *Queue) GoTo(pos int) {
	q.mu.Lock()
	nav := q.navigableLocked()
	target := -1
	if pos >= 0 && pos < len(nav) {
		target = nav[pos]
	}
	moved := q.goToLocked(nav, target)
	q.mu.Unlock()
	if moved {
		q.notify()
	}
}

// GoToEntry jumps to the entry at the given arrival index, if it is ready.
// Pending and failed entries are invisible to navigation.
func (q *Queue) GoToEntry(idx int) {
	q.mu.Lock()
	nav := q.navigableLocked()
	target := -1
	for _, n := range nav {
		if n == idx {
			target = n
			break
		}
	}
	moved := q.goToLocked(nav, target)
	q.mu.Unlock()
	if moved {
		q.notify()
	}
}

// goToLocked applies a manual navigation to target (-1 means no-op).
// Reaching the tail of the navigable subsequence hands the cursor back to
// auto-advance; anywhere else the user is inspecting history and the
// cursor stays manual.
func (q *Queue) goToLocked(nav []int, target int) bool {
	if target < 0 || target == q.displayed {
		return false
	}
	q.displayed = target
	q.version++
	if len(nav) > 0 && target == nav[len(nav)-1] {
		q.mode = ModeAuto
	} else {
		q.mode = ModeManual
	}
	return true
}

func (q *Queue) navigableLocked() []int {
	var nav []int
	for i, e := range q.entries {
		if e.State == StateReady {
			nav = append(nav, i)
		}
	}
	return nav
}

// Entries returns a copy of the full entry list in arrival order.
func (q *Queue) Entries() []QueuedFile {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]QueuedFile, len(q.entries))
	copy(out, q.entries)
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

// Displayed returns the current displayed entry and its arrival index.
func (q *Queue) Displayed() (QueuedFile, int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.displayed < 0 || q.displayed >= len(q.entries) {
		return QueuedFile{}, -1, false
	}
	return q.entries[q.displayed], q.displayed, true
}

func (q *Queue) DisplayedHTML() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.displayed < 0 || q.displayed >= len(q.entries) {
		return ""
	}
	return q.entries[q.displayed].HTML
}

func (q *Queue) Mode() Mode {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.mode
}

// Navigable returns the arrival indices of the ready entries, in order.
// Pending and failed entries never occupy a slot.
func (q *Queue) Navigable() []int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.navigableLocked()
}

// NavigablePos returns the 1-based position of the displayed entry within
// the navigable subsequence (0 when the displayed entry is not ready) and
// the subsequence length. This backs the dot row and the "current/total"
// counter.
func (q *Queue) NavigablePos() (pos, total int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	nav := q.navigableLocked()
	for i, idx := range nav {
		if idx == q.displayed {
			pos = i + 1
			break
		}
	}
	return pos, len(nav)
}

func (q *Queue) Version() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.version
}

// DisplayedDoc is the read model for the preview server: the displayed
// document (empty when nothing ready is displayed), whether the displayed
// entry failed to render, and a version that changes whenever the
// displayed document does.
func (q *Queue) DisplayedDoc() (html string, failed bool, version int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.displayed >= 0 && q.displayed < len(q.entries) {
		e := q.entries[q.displayed]
		html = e.HTML
		failed = e.State == StateFailed
	}
	return html, failed, q.version
}

// Changes returns a channel that receives a signal after any state
// change. The channel is buffered with size one; coalesced signals are
// fine because readers re-read the full state.
func (q *Queue) Changes() <-chan struct{} {
	return q.changeCh
}

func (q *Queue) notify() {
	select {
	case q.changeCh <- struct{}{}:
	default:
	}
}
