package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"tableflip.dev/gratitude/pkg/calendar"
	"tableflip.dev/gratitude/pkg/datekey"
	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/export"
	"tableflip.dev/gratitude/pkg/share"
	"tableflip.dev/gratitude/pkg/store"
	"tableflip.dev/gratitude/pkg/streak"
)

// State is the session-only selection: the month on screen and the day being
// read or written.
type State struct {
	ViewMonth time.Time
	Selected  time.Time
}

// Snapshot is everything a view needs, derived from State and the entries.
type Snapshot struct {
	Today     time.Time
	ViewMonth time.Time
	Selected  time.Time
	Key       string
	Content   string
	HasEntry  bool
	Grid      calendar.Grid
	Streak    int
	Longest   int
	Total     int
}

// Derive computes a Snapshot. It has no side effects.
func Derive(st State, entries entry.Collection, today time.Time) Snapshot {
	key := datekey.Encode(st.Selected)
	content, ok := entries.Get(key)
	return Snapshot{
		Today:     datekey.Midnight(today),
		ViewMonth: st.ViewMonth,
		Selected:  st.Selected,
		Key:       key,
		Content:   content,
		HasEntry:  ok,
		Grid: calendar.Build(st.ViewMonth, st.Selected, today, func(d time.Time) bool {
			return entries.Has(datekey.Encode(d))
		}),
		Streak:  streak.Current(entries, today),
		Longest: streak.Longest(entries),
		Total:   entries.Count(),
	}
}

// Options configure a Journal.
type Options struct {
	Share     *share.Service
	ExportDir string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Journal owns the entry store and the selection, and is the only path by
// which either changes. Every change produces a new Snapshot that is handed to
// all subscribers.
type Journal struct {
	persistence store.Persistence
	share       *share.Service
	exportDir   string
	now         func() time.Time

	mu        sync.Mutex
	state     State
	observers map[int]func(Snapshot)
	nextID    int
}

var errNoPersistence = errors.New("app: no persistence configured")

// NewJournal starts a journal with today selected.
func NewJournal(p store.Persistence, opts Options) (*Journal, error) {
	if p == nil {
		return nil, errNoPersistence
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	today := datekey.Midnight(now())
	return &Journal{
		persistence: p,
		share:       opts.Share,
		exportDir:   opts.ExportDir,
		now:         now,
		state: State{
			ViewMonth: calendar.FirstOfMonth(today),
			Selected:  today,
		},
		observers: make(map[int]func(Snapshot)),
	}, nil
}

// Subscribe registers fn to receive every new Snapshot. The returned func
// removes it.
func (j *Journal) Subscribe(fn func(Snapshot)) func() {
	j.mu.Lock()
	defer j.mu.Unlock()
	id := j.nextID
	j.nextID++
	j.observers[id] = fn
	return func() {
		j.mu.Lock()
		defer j.mu.Unlock()
		delete(j.observers, id)
	}
}

// Snapshot derives the current view state without changing anything.
func (j *Journal) Snapshot() Snapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.deriveLocked()
}

func (j *Journal) deriveLocked() Snapshot {
	return Derive(j.state, j.persistence.All(), j.now())
}

// commit applies mutate under the lock, persists when it reports that entries
// changed, then publishes the resulting Snapshot.
func (j *Journal) commit(ctx context.Context, mutate func(st *State) bool) (Snapshot, error) {
	j.mu.Lock()
	dirty := mutate(&j.state)
	var err error
	if dirty {
		err = j.persistence.Persist(ctx)
	}
	snap := j.deriveLocked()
	observers := make([]func(Snapshot), 0, len(j.observers))
	for _, fn := range j.observers {
		observers = append(observers, fn)
	}
	j.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	return snap, err
}

// Select moves the selection to date and brings its month into view.
func (j *Journal) Select(date time.Time) Snapshot {
	snap, _ := j.commit(context.Background(), func(st *State) bool {
		st.Selected = datekey.Midnight(date)
		st.ViewMonth = calendar.FirstOfMonth(st.Selected)
		return false
	})
	return snap
}

// SelectToday selects the current date.
func (j *Journal) SelectToday() Snapshot {
	return j.Select(j.now())
}

// MoveSelection moves the selection by days, following it into other months.
func (j *Journal) MoveSelection(days int) Snapshot {
	snap, _ := j.commit(context.Background(), func(st *State) bool {
		st.Selected = st.Selected.AddDate(0, 0, days)
		st.ViewMonth = calendar.FirstOfMonth(st.Selected)
		return false
	})
	return snap
}

// ShiftMonth changes the month on screen by n. The selection stays put.
func (j *Journal) ShiftMonth(n int) Snapshot {
	snap, _ := j.commit(context.Background(), func(st *State) bool {
		st.ViewMonth = calendar.AddMonths(st.ViewMonth, n)
		return false
	})
	return snap
}

// Save stores content for date, deleting the entry when content is blank,
// and persists the journal. The in-memory entry is kept even when persisting
// fails; the error is returned for the caller to report.
func (j *Journal) Save(ctx context.Context, date time.Time, content string) (Snapshot, error) {
	key := datekey.Encode(date)
	return j.commit(ctx, func(*State) bool {
		return j.persistence.Set(key, content)
	})
}

// SaveSelected saves content for the selected date.
func (j *Journal) SaveSelected(ctx context.Context, content string) (Snapshot, error) {
	j.mu.Lock()
	date := j.state.Selected
	j.mu.Unlock()
	return j.Save(ctx, date, content)
}

// Delete removes the entry for date.
func (j *Journal) Delete(ctx context.Context, date time.Time) (Snapshot, error) {
	return j.Save(ctx, date, "")
}

// Reload rereads the stored journal, after another process changed it.
func (j *Journal) Reload(ctx context.Context) Snapshot {
	snap, _ := j.commit(ctx, func(*State) bool {
		j.persistence.Load(ctx)
		return false
	})
	return snap
}

// Entry returns the content saved for date.
func (j *Journal) Entry(date time.Time) (string, bool) {
	return j.persistence.Get(datekey.Encode(date))
}

// Entries lists every entry, oldest first.
func (j *Journal) Entries() []entry.Entry {
	return j.persistence.All().Entries()
}

// Share shares the entry for date.
func (j *Journal) Share(ctx context.Context, date time.Time) (share.Result, error) {
	if j.share == nil {
		return share.Result{}, errors.New("app: sharing not configured")
	}
	content, _ := j.Entry(date)
	return j.share.Share(ctx, content)
}

// Export writes the journal to dir, or to the configured export directory
// when dir is empty.
func (j *Journal) Export(dir string) (string, error) {
	if dir == "" {
		dir = j.exportDir
	}
	return export.WriteFile(dir, j.persistence.All())
}

// Now is the journal's clock.
func (j *Journal) Now() time.Time {
	return j.now()
}

// Watch streams change notifications for the underlying store.
func (j *Journal) Watch(ctx context.Context) (<-chan store.Event, error) {
	return j.persistence.Watch(ctx)
}
