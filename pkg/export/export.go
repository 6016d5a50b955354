// Package export writes the whole journal to a JSON file.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"tableflip.dev/gratitude/pkg/entry"
)

// FileName is the name of the exported journal.
const FileName = "gratitude-journal.json"

// Encode writes the collection as two-space indented JSON with a trailing
// newline.
func Encode(w io.Writer, c entry.Collection) error {
	data, err := c.MarshalIndent()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteFile writes FileName into dir, replacing an earlier export, and
// returns the file's path.
func WriteFile(dir string, c entry.Collection) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	tmp, err := os.CreateTemp(dir, FileName+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, c); err != nil {
		tmp.Close()
		return "", fmt.Errorf("export: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return path, nil
}
