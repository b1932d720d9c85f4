package entity

import (
	"time"

	"github.com/google/uuid"
)

type Component struct {
	Id            uuid.UUID
	MachineId     uuid.UUID
	CategoryId    *uuid.UUID
	PosNumber     string
	Quantity      int
	Unit          string
	NameDe        string
	NameEn        string
	SapNumber     string
	Description   string
	IsSparePart   bool
	IsWearingPart bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// DisplayName prefers the German name only when asked for and present.
func (c *Component) DisplayName(lang string) string {
	if lang == "de" && c.NameDe != "" {
		return c.NameDe
	}
	if c.NameEn != "" {
		return c.NameEn
	}
	return c.NameDe
}

type ComponentImage struct {
	Id          uuid.UUID
	ComponentId uuid.UUID
	ImagePath   string
	AltText     string
	IsPrimary   bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type ComponentSpecification struct {
	Id          uuid.UUID
	ComponentId uuid.UUID
	SpecKey     string
	SpecValue   string
	SpecUnit    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// FormattedValue renders the value with its unit when one is set.
func (s *ComponentSpecification) FormattedValue() string {
	if s.SpecUnit != "" {
		return s.SpecValue + " " + s.SpecUnit
	}
	return s.SpecValue
}
