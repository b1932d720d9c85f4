package model

import (
	"time"

	"github.com/google/uuid"
)

// SearchHistory rows are append-only; nothing ever updates them.
type SearchHistory struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SearchQuery  string    `gorm:"type:varchar(255);not null"`
	SearchType   string    `gorm:"type:varchar(20);not null"` // component | machine | advanced | all
	ResultsCount int       `gorm:"not null"`
	SearchedAt   time.Time `gorm:"not null;index"`
	UserId       *string   `gorm:"type:varchar(255);index"`
}

func (SearchHistory) TableName() string {
	return "search_history"
}
