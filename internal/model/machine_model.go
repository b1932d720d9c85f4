package model

import (
	"time"

	"github.com/google/uuid"
)

type Machine struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Model       string    `gorm:"type:varchar(255)"`
	SapNumber   string    `gorm:"type:varchar(100);index"`
	Description string    `gorm:"type:text"`
	ImagePath   string    `gorm:"type:varchar(500)"`
	Company     string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Machine) TableName() string {
	return "machines"
}
