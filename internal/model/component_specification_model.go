package model

import (
	"time"

	"github.com/google/uuid"
)

type ComponentSpecification struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ComponentId uuid.UUID `gorm:"type:uuid;not null;index"`
	SpecKey     string    `gorm:"type:varchar(100);not null"`
	SpecValue   string    `gorm:"type:varchar(255);not null"`
	SpecUnit    string    `gorm:"type:varchar(50)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Component Component `gorm:"foreignKey:ComponentId;constraint:OnDelete:CASCADE"`
}

func (ComponentSpecification) TableName() string {
	return "component_specifications"
}
