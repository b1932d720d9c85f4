package dto

import (
	"time"

	"github.com/google/uuid"
)

type MachineResponse struct {
	Id          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Model       string              `json:"model"`
	SapNumber   string              `json:"sap_number"`
	Description string              `json:"description"`
	ImagePath   string              `json:"image_path"`
	Company     string              `json:"company"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at"`
	Drawings    []DrawingResponse   `json:"drawings,omitempty"`
	Components  []ComponentResponse `json:"components,omitempty"`
}

type ListMachinesRequest struct {
	Search  string `json:"search"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type CreateMachineRequest struct {
	Name        string `json:"name" validate:"required"`
	Model       string `json:"model"`
	SapNumber   string `json:"sap_number"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Image       *FileUpload
}

type CreateMachineResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateMachineRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required"`
	Model       string `json:"model"`
	SapNumber   string `json:"sap_number"`
	Description string `json:"description"`
	Company     string `json:"company"`
	Image       *FileUpload
}

type UpdateMachineResponse struct {
	Id uuid.UUID `json:"id"`
}

type ListMachineComponentsRequest struct {
	MachineId     uuid.UUID
	CategoryId    *uuid.UUID `json:"category_id"`
	IsSparePart   *bool      `json:"is_spare_part"`
	IsWearingPart *bool      `json:"is_wearing_part"`
	Search        string     `json:"search"`
	Page          int        `json:"page"`
	PerPage       int        `json:"per_page"`
}
