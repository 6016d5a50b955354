package debounce

// Tag identifies one scheduled run handed out by a Gate.
type Tag uint64

// Gate is the single-goroutine form of Timer for event loops that deliver
// their own timer messages, such as Bubble Tea's tea.Tick. Every Schedule
// supersedes the previous tag; when a timer message arrives its tag is passed
// to Fire, which accepts only the newest outstanding tag.
//
// A Gate is not safe for concurrent use.
type Gate struct {
	last    Tag
	pending bool
}

// Schedule returns the tag for a new run and cancels any earlier one.
func (g *Gate) Schedule() Tag {
	g.last++
	g.pending = true
	return g.last
}

// Fire reports whether the run identified by tag should happen now. It
// returns true at most once per Schedule.
func (g *Gate) Fire(tag Tag) bool {
	if !g.pending || tag != g.last {
		return false
	}
	g.pending = false
	return true
}

// Pending reports whether a scheduled run has not fired yet.
func (g *Gate) Pending() bool {
	return g.pending
}

// Cancel drops the outstanding run. It reports whether one was pending.
func (g *Gate) Cancel() bool {
	was := g.pending
	g.pending = false
	g.last++
	return was
}
