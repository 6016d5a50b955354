package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"tableflip.dev/gratitude/pkg/debounce"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventEntriesChanged indicates the stored journal was rewritten, usually
	// by another gratitude process.
	EventEntriesChanged EventType = iota

	// EventInvalidated signals the watcher hit an error and callers should
	// reload to be safe.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

const watchQuietPeriod = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Bursts of filesystem
// activity are coalesced into one event. The channel is closed once ctx is
// done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	dir := p.b.Dir()
	if dir == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	var (
		mu      sync.Mutex
		pending = EventEntriesChanged
		closed  bool
	)
	send := func() {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case events <- Event{Type: pending}:
		default:
			// The consumer has a reload queued already.
		}
		pending = EventEntriesChanged
	}
	timer := debounce.New(watchQuietPeriod, send)

	go func() {
		defer func() {
			timer.Stop()
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
			if err := watcher.Close(); err != nil {
				log.Printf("store: watcher close: %v", err)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("store: watch: %v", err)
				mu.Lock()
				pending = EventInvalidated
				mu.Unlock()
				timer.Trigger()
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if !p.b.Owns(evt.Name) {
					continue
				}
				timer.Trigger()
			}
		}
	}()

	return events, nil
}
