package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MachineDrawing struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	MachineId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	FilePath    string    `gorm:"type:varchar(500);not null"`
	DrawingType string    `gorm:"type:varchar(20);not null;index"` // exploded | assembly | schematic
	PageNumber  *int
	// Ordered array of {x, y, width, height, component_id}. Stored as a
	// JSON blob, not normalized rows: hit testing depends on element order.
	ClickableAreas datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`

	Machine Machine `gorm:"foreignKey:MachineId;constraint:OnDelete:CASCADE"`
}

func (MachineDrawing) TableName() string {
	return "machine_drawings"
}
