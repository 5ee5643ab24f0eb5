package storage

import (
	"context"
	"sync"
)

// Memory keeps records for the life of the process only. Used in tests and
// with STORAGE_DRIVER=memory.
type Memory struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{
		records: make(map[string][]byte),
	}
}

func (s *Memory) Get(_ context.Context, namespace string) ([]byte, bool, error) {
	if err := validateNamespace(namespace); err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.records[namespace]
	if !exists {
		return nil, false, nil
	}

	return clone(value), true, nil
}

func (s *Memory) Set(_ context.Context, namespace string, value []byte) error {
	if err := validateNamespace(namespace); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[namespace] = clone(value)
	return nil
}

func (s *Memory) Remove(_ context.Context, namespace string) error {
	if err := validateNamespace(namespace); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, namespace)
	return nil
}

func (s *Memory) Close() error {
	return nil
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
