package storage

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
)

// MaxValueSize mirrors the per-origin quota of browser local storage.
const MaxValueSize = 5 << 20

var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// Store is a durable string key-value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string)
}

// PreferencesStore keeps values in the application's Fyne preferences, which
// survive restarts.
type PreferencesStore struct {
	prefs fyne.Preferences
}

var _ Store = (*PreferencesStore)(nil)

func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Get treats an empty value as absent; preferences cannot tell them apart.
func (s *PreferencesStore) Get(key string) (string, bool) {
	v := s.prefs.String(key)
	return v, v != ""
}

func (s *PreferencesStore) Set(key, value string) error {
	if len(value) > MaxValueSize {
		return fmt.Errorf("%w: %d bytes for %q", ErrQuotaExceeded, len(value), key)
	}
	s.prefs.SetString(key, value)
	return nil
}

func (s *PreferencesStore) Remove(key string) {
	s.prefs.RemoveValue(key)
}

// MemoryStore is a Store that lives as long as the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	limit  int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string), limit: MaxValueSize}
}

// SetLimit changes the maximum value size accepted by Set.
func (s *MemoryStore) SetLimit(n int) {
	s.mu.Lock()
	s.limit = n
	s.mu.Unlock()
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(value) > s.limit {
		return fmt.Errorf("%w: %d bytes for %q", ErrQuotaExceeded, len(value), key)
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}
