package storage

import "github.com/shhac/discbag/internal/domain"

// Repository records lookups made during a session
type Repository interface {
	AddLookup(entry domain.LookupEntry) error
	GetLookups(limit int) ([]domain.LookupEntry, error)
	RecentIdentifiers(limit int) ([]string, error)
	DeleteLookup(id string) error
	ClearLookups() error
}
