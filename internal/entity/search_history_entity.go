package entity

import (
	"time"

	"github.com/google/uuid"
)

// SearchType tags what a history entry searched over.
type SearchType string

const (
	SearchComponent SearchType = "component"
	SearchMachine   SearchType = "machine"
	SearchAdvanced  SearchType = "advanced"
	SearchAll       SearchType = "all"
)

// ValidSearchType reports whether s names a known search type.
func ValidSearchType(s string) bool {
	switch SearchType(s) {
	case SearchComponent, SearchMachine, SearchAdvanced, SearchAll:
		return true
	}
	return false
}

// SearchHistoryEntry is an immutable log record. Entries are appended and
// retained; they are never updated.
type SearchHistoryEntry struct {
	Id           uuid.UUID
	SearchQuery  string
	SearchType   SearchType
	ResultsCount int
	SearchedAt   time.Time
	UserKey      *string
}
