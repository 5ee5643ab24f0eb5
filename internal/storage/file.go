package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File stores each namespace as <dir>/<namespace>.json. Writes go to a
// temporary file that is renamed over the old one, so a reader never sees a
// half-written record.
type File struct {
	mu  sync.Mutex
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (s *File) path(namespace string) string {
	return filepath.Join(s.dir, namespace+".json")
}

func (s *File) Get(_ context.Context, namespace string) ([]byte, bool, error) {
	if err := validateNamespace(namespace); err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(namespace))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", namespace, err)
	}
	return data, true, nil
}

func (s *File) Set(_ context.Context, namespace string, value []byte) error {
	if err := validateNamespace(namespace); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, namespace+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", namespace, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", namespace, err)
	}

	if err := os.Rename(tmp.Name(), s.path(namespace)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", namespace, err)
	}
	return nil
}

func (s *File) Remove(_ context.Context, namespace string) error {
	if err := validateNamespace(namespace); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(namespace))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", namespace, err)
	}
	return nil
}

func (s *File) Close() error {
	return nil
}
