package entity

import (
	"time"

	"parts-catalog-be/pkg/hotspot"

	"github.com/google/uuid"
)

type DrawingType string

const (
	DrawingExploded  DrawingType = "exploded"
	DrawingAssembly  DrawingType = "assembly"
	DrawingSchematic DrawingType = "schematic"
)

// ValidDrawingType reports whether s names a known drawing type.
func ValidDrawingType(s string) bool {
	switch DrawingType(s) {
	case DrawingExploded, DrawingAssembly, DrawingSchematic:
		return true
	}
	return false
}

type MachineDrawing struct {
	Id          uuid.UUID
	MachineId   uuid.UUID
	Title       string
	FilePath    string
	DrawingType DrawingType
	PageNumber  *int
	// Authoring order, preserved through storage: hit testing gives
	// earlier areas priority.
	ClickableAreas []hotspot.Area
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
