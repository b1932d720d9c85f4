package model

import (
	"time"

	"github.com/google/uuid"
)

type ComponentImage struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ComponentId uuid.UUID `gorm:"type:uuid;not null;index"`
	ImagePath   string    `gorm:"type:varchar(500);not null"`
	AltText     string    `gorm:"type:varchar(255)"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	SortOrder   int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Component Component `gorm:"foreignKey:ComponentId;constraint:OnDelete:CASCADE"`
}

func (ComponentImage) TableName() string {
	return "component_images"
}
