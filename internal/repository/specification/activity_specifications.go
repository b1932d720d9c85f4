package specification

import (
	"time"

	"gorm.io/gorm"
)

// ForUser filters favorites or history by the opaque caller key.
type ForUser struct {
	UserKey string
}

func (s ForUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserKey)
}

// ByFavoriteType filters favorites by kind tag.
type ByFavoriteType struct {
	FavoriteType string
}

func (s ByFavoriteType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("favorite_type = ?", s.FavoriteType)
}

// CreatedSince keeps rows created at or after the window start.
type CreatedSince struct {
	Since time.Time
}

func (s CreatedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at >= ?", s.Since)
}

// SearchedSince keeps history entries at or after the window start.
type SearchedSince struct {
	Since time.Time
}

func (s SearchedSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("searched_at >= ?", s.Since)
}

// BySearchType filters history entries by type tag.
type BySearchType struct {
	SearchType string
}

func (s BySearchType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("search_type = ?", s.SearchType)
}

// ByQueryPrefix matches history entries whose query starts with the prefix,
// case-insensitively. Used for typeahead suggestions.
type ByQueryPrefix struct {
	Prefix string
}

func (s ByQueryPrefix) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`LOWER(search_query) LIKE ? ESCAPE '\'`, likePrefixPattern(s.Prefix))
}
