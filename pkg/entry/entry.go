// Package entry holds the gratitude entries keyed by date.
package entry

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"tableflip.dev/gratitude/pkg/datekey"
)

// Entry is the text written for one calendar day.
type Entry struct {
	Key     string    `json:"key"`
	Date    time.Time `json:"date"`
	Content string    `json:"content"`
}

// Collection maps date keys to entry content. Content is always trimmed and
// never empty.
type Collection map[string]string

// New returns an empty collection.
func New() Collection {
	return make(Collection)
}

// Get looks up the content stored for key.
func (c Collection) Get(key string) (string, bool) {
	content, ok := c[key]
	return content, ok
}

// Has reports whether an entry exists for key.
func (c Collection) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// Set stores the trimmed content for key, or removes key when the trimmed
// content is empty. It reports whether the collection changed.
func (c Collection) Set(key, content string) bool {
	content = strings.TrimSpace(content)
	prev, ok := c[key]
	if content == "" {
		if !ok {
			return false
		}
		delete(c, key)
		return true
	}
	if ok && prev == content {
		return false
	}
	c[key] = content
	return true
}

// Count is the number of stored entries.
func (c Collection) Count() int {
	return len(c)
}

// Clone returns a copy that shares nothing with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Keys returns the keys in chronological order.
func (c Collection) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	datekey.Sort(keys)
	return keys
}

// Entries lists the collection in chronological order. Keys that are not
// valid dates come last with a zero Date.
func (c Collection) Entries() []Entry {
	keys := c.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e := Entry{Key: k, Content: c[k]}
		if d, err := datekey.Decode(k); err == nil {
			e.Date = d
		}
		out = append(out, e)
	}
	return out
}

// Since returns the entries dated on or after from, oldest first.
func (c Collection) Since(from time.Time) []Entry {
	from = datekey.Midnight(from)
	all := c.Entries()
	i := sort.Search(len(all), func(i int) bool {
		return all[i].Date.IsZero() || !all[i].Date.Before(from)
	})
	out := make([]Entry, 0, len(all)-i)
	for _, e := range all[i:] {
		if e.Date.IsZero() {
			break
		}
		out = append(out, e)
	}
	return out
}

// Marshal encodes the collection as compact JSON for storage.
func (c Collection) Marshal() ([]byte, error) {
	return c.encode("")
}

// MarshalIndent encodes the collection as two-space indented JSON.
func (c Collection) MarshalIndent() ([]byte, error) {
	return c.encode("  ")
}

// encode writes content verbatim; "<", ">" and "&" are not escaped.
func (c Collection) encode(indent string) ([]byte, error) {
	if c == nil {
		c = New()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(map[string]string(c)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes a stored collection. Blank content is dropped so the
// collection invariants hold for data written by other tools.
func Unmarshal(data []byte) (Collection, error) {
	raw := make(map[string]string)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	c := make(Collection, len(raw))
	for k, v := range raw {
		c.Set(k, v)
	}
	return c, nil
}
