package storage

import "fmt"

// MemoryStore is an in-process slot. SaveErr, when set, is returned by every
// Save so callers can exercise persistence failures.
type MemoryStore struct {
	data    []byte
	saves   int
	SaveErr error
}

func NewMemoryStore(initial []byte) *MemoryStore {
	return &MemoryStore{data: initial}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Load() ([]byte, error) {
	if len(s.data) == 0 {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *MemoryStore) Save(data []byte) error {
	if s.SaveErr != nil {
		return fmt.Errorf("failed to write snapshot: %w", s.SaveErr)
	}
	s.data = append(s.data[:0:0], data...)
	s.saves++
	return nil
}

// Saves reports how many successful writes the slot has received.
func (s *MemoryStore) Saves() int { return s.saves }

func (s *MemoryStore) GetConfigPath() string { return ":memory:" }
