package dto

import (
	"time"

	"parts-catalog-be/pkg/hotspot"

	"github.com/google/uuid"
)

type DrawingResponse struct {
	Id             uuid.UUID           `json:"id"`
	MachineId      uuid.UUID           `json:"machine_id"`
	Title          string              `json:"title"`
	FilePath       string              `json:"file_path"`
	DrawingType    string              `json:"drawing_type"`
	PageNumber     *int                `json:"page_number"`
	ClickableAreas []hotspot.Area      `json:"clickable_areas"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      *time.Time          `json:"updated_at"`
	Machine        *MachineResponse    `json:"machine,omitempty"`
	Components     []ComponentResponse `json:"components,omitempty"`
}

// ClickableAreaInput is validated per element before any write: the
// referenced component must also exist, which the service checks.
type ClickableAreaInput struct {
	X           float64   `json:"x" validate:"gte=0"`
	Y           float64   `json:"y" validate:"gte=0"`
	Width       float64   `json:"width" validate:"gte=1"`
	Height      float64   `json:"height" validate:"gte=1"`
	ComponentId uuid.UUID `json:"component_id" validate:"required"`
}

type CreateDrawingRequest struct {
	MachineId      uuid.UUID            `json:"machine_id" validate:"required"`
	Title          string               `json:"title" validate:"required"`
	DrawingType    string               `json:"drawing_type" validate:"required,oneof=exploded assembly schematic"`
	PageNumber     *int                 `json:"page_number"`
	ClickableAreas []ClickableAreaInput `json:"clickable_areas" validate:"dive"`
	File           *FileUpload
}

type CreateDrawingResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateDrawingRequest struct {
	Id             uuid.UUID
	Title          string               `json:"title" validate:"required"`
	DrawingType    string               `json:"drawing_type" validate:"required,oneof=exploded assembly schematic"`
	PageNumber     *int                 `json:"page_number"`
	ClickableAreas []ClickableAreaInput `json:"clickable_areas" validate:"dive"`
	File           *FileUpload
}

type UpdateDrawingResponse struct {
	Id uuid.UUID `json:"id"`
}

type SetClickableAreasRequest struct {
	Id    uuid.UUID
	Areas []ClickableAreaInput `json:"areas" validate:"required,dive"`
}

type ClickableAreasResponse struct {
	Areas      []hotspot.Area      `json:"areas"`
	Components []ComponentResponse `json:"components"`
}

type FindComponentRequest struct {
	Id uuid.UUID
	X  float64 `json:"x" validate:"gte=0"`
	Y  float64 `json:"y" validate:"gte=0"`
}
