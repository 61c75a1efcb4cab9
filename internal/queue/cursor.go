package queue

// ComputeCursor returns the arrival index the auto cursor should occupy
// next, given the previously displayed index (-1 when nothing has been
// shown). The cursor moves one step at a time and only onto a settled
// entry, so display order always follows arrival order no matter which
// renders finish first. If the next entry in arrival order has not settled
// yet, the cursor stays put.
func ComputeCursor(entries []QueuedFile, prev int) int {
	next := prev + 1
	if next >= 0 && next < len(entries) && entries[next].Settled() {
		return next
	}
	return prev
}
