// Package store persists the journal's entry collection.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"tableflip.dev/gratitude/pkg/entry"
)

// Persistence is the entry store: an in-memory collection that is loaded once
// and written back in full after every change.
type Persistence interface {
	// Load replaces the in-memory collection with what is stored. Missing or
	// unreadable data yields an empty collection; the stored bytes are left
	// alone until the next Persist.
	Load(ctx context.Context)
	Get(key string) (string, bool)
	// Set stores trimmed content for key, deleting it when the content is
	// blank, and reports whether the collection changed.
	Set(key, content string) bool
	Count() int
	// All returns a copy of the collection.
	All() entry.Collection
	Persist(ctx context.Context) error
	Watch(ctx context.Context) (<-chan Event, error)
	Path() string
	Close() error
}

// Open opens the configured backend and loads the stored collection. A nil
// cfg is read with LoadConfig.
func Open(ctx context.Context, cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	b, err := OpenBackend(cfg)
	if err != nil {
		return nil, err
	}
	p := New(b)
	p.Load(ctx)
	return p, nil
}

// New wraps a backend. The collection starts empty until Load is called.
func New(b Backend) Persistence {
	return &persistence{b: b, entries: entry.New()}
}

type persistence struct {
	mu      sync.RWMutex
	b       Backend
	entries entry.Collection
}

func (p *persistence) Load(ctx context.Context) {
	entries, err := p.read(ctx)
	if err != nil {
		log.Printf("store: load %s: %v", EntriesKey, err)
		entries = entry.New()
	}
	p.mu.Lock()
	p.entries = entries
	p.mu.Unlock()
}

func (p *persistence) read(ctx context.Context) (entry.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := p.b.Read(EntriesKey)
	if errors.Is(err, ErrNotFound) {
		return entry.New(), nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return entry.New(), nil
	}
	c, err := entry.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed journal: %w", err)
	}
	return c, nil
}

func (p *persistence) Get(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entries.Get(key)
}

func (p *persistence) Set(key, content string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.entries.Set(key, content)
}

func (p *persistence) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entries.Count()
}

func (p *persistence) All() entry.Collection {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.entries.Clone()
}

func (p *persistence) Persist(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	data, err := p.entries.Marshal()
	p.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("store: encode journal: %w", err)
	}
	if err := p.b.Write(EntriesKey, data); err != nil {
		return fmt.Errorf("store: write journal: %w", err)
	}
	return nil
}

func (p *persistence) Path() string {
	return p.b.Dir()
}

func (p *persistence) Close() error {
	return p.b.Close()
}
