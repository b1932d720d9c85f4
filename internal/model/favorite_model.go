package model

import (
	"time"

	"github.com/google/uuid"
)

type Favorite struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Opaque caller key: authenticated user id or client session token.
	// Dedup runs through two partial unique indexes, one per reference
	// column. A single composite index over both nullable columns would
	// never fire: NULLs compare distinct in unique indexes on both
	// Postgres and sqlite.
	UserId       string     `gorm:"type:varchar(255);not null;index:idx_favorites_user_type,priority:1;uniqueIndex:idx_favorites_machine_key,priority:1;uniqueIndex:idx_favorites_component_key,priority:1"`
	FavoriteType string     `gorm:"type:varchar(20);not null;index:idx_favorites_user_type,priority:2"` // machine | component
	MachineId    *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_favorites_machine_key,priority:2,where:machine_id IS NOT NULL"`
	ComponentId  *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_favorites_component_key,priority:2,where:component_id IS NOT NULL"`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`

	Machine   *Machine   `gorm:"foreignKey:MachineId;constraint:OnDelete:CASCADE"`
	Component *Component `gorm:"foreignKey:ComponentId;constraint:OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "favorites"
}
