// Package memory provides an in-memory store.Store. Nothing survives Close;
// it backs tests and `scribe --ephemeral`.
package memory

import (
	"errors"
	"sync"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("memory store closed")

// Store is a map-backed store.Store, safe for concurrent use.
// Values are copied on the way in and out.
type Store struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
	closed  bool
}

// New returns an empty Store.
func New() *Store {
	return &Store{buckets: make(map[string]map[string][]byte)}
}

func (s *Store) Get(bucket, key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	v, ok := s.buckets[string(bucket)][string(key)]
	if !ok {
		return nil, nil
	}
	return append([]byte{}, v...), nil
}

func (s *Store) Set(bucket, key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	b, ok := s.buckets[string(bucket)]
	if !ok {
		b = make(map[string][]byte)
		s.buckets[string(bucket)] = b
	}
	b[string(key)] = append([]byte{}, value...)
	return nil
}

func (s *Store) Delete(bucket, key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	delete(s.buckets[string(bucket)], string(key))
	return nil
}

// Close marks the store closed. Calling it twice is harmless.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
