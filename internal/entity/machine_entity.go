package entity

import (
	"time"

	"github.com/google/uuid"
)

type Machine struct {
	Id          uuid.UUID
	Name        string
	Model       string
	SapNumber   string
	Description string
	ImagePath   string
	Company     string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
