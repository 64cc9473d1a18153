package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shhac/discbag/internal/domain"
)

const maxLookups = 100

// MemoryRepository implements Repository in memory. Nothing outlives the
// process; history starts empty on every launch.
type MemoryRepository struct {
	lookups []domain.LookupEntry // most recent first
	mu      sync.RWMutex
}

// NewMemoryRepository creates an empty session history
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		lookups: []domain.LookupEntry{},
	}
}

// AddLookup prepends an entry, assigning an ID and timestamp when missing
func (m *MemoryRepository) AddLookup(entry domain.LookupEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups = append([]domain.LookupEntry{entry}, m.lookups...)
	if len(m.lookups) > maxLookups {
		m.lookups = m.lookups[:maxLookups]
	}
	return nil
}

// GetLookups returns up to limit entries, most recent first. A limit of
// zero or less returns everything.
func (m *MemoryRepository) GetLookups(limit int) ([]domain.LookupEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.lookups)
	if limit > 0 && limit < n {
		n = limit
	}

	// Return a copy to prevent external modification
	lookups := make([]domain.LookupEntry, n)
	copy(lookups, m.lookups[:n])
	return lookups, nil
}

// RecentIdentifiers returns distinct non-empty identifiers from successful
// lookups, most recent first.
func (m *MemoryRepository) RecentIdentifiers(limit int) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	ids := []string{}
	for _, entry := range m.lookups {
		if entry.Identifier == "" || entry.Status != domain.LookupSuccess || seen[entry.Identifier] {
			continue
		}
		seen[entry.Identifier] = true
		ids = append(ids, entry.Identifier)
		if limit > 0 && len(ids) == limit {
			break
		}
	}
	return ids, nil
}

// DeleteLookup removes the entry with the given ID. Unknown IDs are ignored.
func (m *MemoryRepository) DeleteLookup(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, entry := range m.lookups {
		if entry.ID == id {
			m.lookups = append(m.lookups[:i:i], m.lookups[i+1:]...)
			return nil
		}
	}
	return nil
}

// ClearLookups removes all entries
func (m *MemoryRepository) ClearLookups() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups = []domain.LookupEntry{}
	return nil
}
