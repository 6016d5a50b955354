package store

import "sync"

// Memory is a Backend that keeps values in process. It has no directory, so
// it cannot be watched.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
	// Fail, when set, is returned by every Write.
	Fail error
}

// NewMemory returns an empty in-process backend.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	m.values[key] = append([]byte(nil), val...)
	m.writes++
	return nil
}

// Writes counts successful writes.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Dir() string { return "" }

func (m *Memory) Owns(string) bool { return false }

func (m *Memory) Close() error { return nil }
