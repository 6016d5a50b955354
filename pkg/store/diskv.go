package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

type diskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv stores each key as a file directly under basePath.
func NewDiskv(basePath string) (Backend, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvBackend{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// No read cache: the file may be rewritten by another process.
			CacheSizeMax: 0,
			TempDir:      filepath.Join(basePath, ".tmp"),
		}),
		basePath: basePath,
	}, nil
}

func (b *diskvBackend) Read(key string) ([]byte, error) {
	val, err := b.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (b *diskvBackend) Write(key string, val []byte) error {
	return b.d.Write(key, val)
}

func (b *diskvBackend) Dir() string {
	return b.basePath
}

func (b *diskvBackend) Owns(path string) bool {
	return filepath.Base(path) == EntriesKey
}

func (b *diskvBackend) Close() error {
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{FileName: s}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
