package model

import (
	"time"

	"github.com/google/uuid"
)

type Component struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MachineId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryId    *uuid.UUID `gorm:"type:uuid;index"`
	PosNumber     string     `gorm:"type:varchar(50);index"`
	Quantity      int        `gorm:"not null;default:1"`
	Unit          string     `gorm:"type:varchar(50)"`
	NameDe        string     `gorm:"type:varchar(255)"`
	NameEn        string     `gorm:"type:varchar(255)"`
	SapNumber     string     `gorm:"type:varchar(100);uniqueIndex"`
	Description   string     `gorm:"type:text"`
	IsSparePart   bool       `gorm:"not null;default:false;index"`
	IsWearingPart bool       `gorm:"not null;default:false;index"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`

	Machine  Machine   `gorm:"foreignKey:MachineId;constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"foreignKey:CategoryId"`
}

func (Component) TableName() string {
	return "components"
}
