package domain

import "time"

// Lookup status values recorded in history
const (
	LookupSuccess = "success"
	LookupError   = "error"
)

// LookupEntry records one bag lookup made during the session
type LookupEntry struct {
	ID         string        `json:"id"`
	Timestamp  time.Time     `json:"timestamp"`
	Identifier string        `json:"identifier"` // Empty for the default bag
	URL        string        `json:"url"`
	Status     string        `json:"status"` // "success" or "error"
	Error      string        `json:"error,omitempty"`
	DiscCount  int           `json:"disc_count"`
	Duration   time.Duration `json:"duration"`
}
