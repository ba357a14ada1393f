package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

const countersDoc = "counters"

// Sequence issues monotonic per-collection counters persisted next to the
// collections, so IDs survive deletions and restarts. Display format stays
// compatible with the legacy type-prefixed zero-padded IDs.
type Sequence struct {
	backend Backend
	mu      sync.Mutex
}

func NewSequence(backend Backend) *Sequence {
	return &Sequence{backend: backend}
}

func (s *Sequence) Next(collection string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counters := make(map[string]int)
	data, err := s.backend.Read(countersDoc)
	if err != nil {
		return 0, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &counters); err != nil {
			return 0, fmt.Errorf("decode counters: %w", err)
		}
	}

	counters[collection]++
	n := counters[collection]

	out, err := json.MarshalIndent(counters, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode counters: %w", err)
	}
	if err := s.backend.Write(countersDoc, out); err != nil {
		return 0, err
	}
	return n, nil
}

// NextID issues the next display ID for a collection, e.g. ("appointments",
// "APT") -> "APT0001".
func (s *Sequence) NextID(collection, prefix string) (string, error) {
	n, err := s.Next(collection)
	if err != nil {
		return "", err
	}
	return FormatID(prefix, n), nil
}

func FormatID(prefix string, n int) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}
