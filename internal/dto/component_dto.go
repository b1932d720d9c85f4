package dto

import (
	"time"

	"github.com/google/uuid"
)

type ComponentResponse struct {
	Id             uuid.UUID                        `json:"id"`
	MachineId      uuid.UUID                        `json:"machine_id"`
	CategoryId     *uuid.UUID                       `json:"category_id"`
	PosNumber      string                           `json:"pos_number"`
	Quantity       int                              `json:"quantity"`
	Unit           string                           `json:"unit"`
	NameDe         string                           `json:"name_de"`
	NameEn         string                           `json:"name_en"`
	SapNumber      string                           `json:"sap_number"`
	Description    string                           `json:"description"`
	IsSparePart    bool                             `json:"is_spare_part"`
	IsWearingPart  bool                             `json:"is_wearing_part"`
	CreatedAt      time.Time                        `json:"created_at"`
	UpdatedAt      *time.Time                       `json:"updated_at"`
	Machine        *MachineResponse                 `json:"machine,omitempty"`
	Category       *CategoryResponse                `json:"category,omitempty"`
	Images         []ComponentImageResponse         `json:"images,omitempty"`
	Specifications []ComponentSpecificationResponse `json:"specifications,omitempty"`
}

type ComponentImageResponse struct {
	Id        uuid.UUID `json:"id"`
	ImagePath string    `json:"image_path"`
	AltText   string    `json:"alt_text"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
}

type ComponentSpecificationResponse struct {
	Id             uuid.UUID `json:"id"`
	SpecKey        string    `json:"spec_key"`
	SpecValue      string    `json:"spec_value"`
	SpecUnit       string    `json:"spec_unit"`
	FormattedValue string    `json:"formatted_value"`
}

type SpecificationInput struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
	Unit  string `json:"unit"`
}

type ListComponentsRequest struct {
	MachineId     *uuid.UUID `json:"machine_id"`
	CategoryId    *uuid.UUID `json:"category_id"`
	IsSparePart   *bool      `json:"is_spare_part"`
	IsWearingPart *bool      `json:"is_wearing_part"`
	Search        string     `json:"search"`
	Page          int        `json:"page"`
	PerPage       int        `json:"per_page"`
}

type SearchComponentsRequest struct {
	Query         string     `json:"query" validate:"required,min=2"`
	MachineId     *uuid.UUID `json:"machine_id"`
	CategoryId    *uuid.UUID `json:"category_id"`
	IsSparePart   *bool      `json:"is_spare_part"`
	IsWearingPart *bool      `json:"is_wearing_part"`
	Page          int        `json:"page"`
	PerPage       int        `json:"per_page"`
}

type FindByPositionRequest struct {
	MachineId uuid.UUID `json:"machine_id" validate:"required"`
	PosNumber string    `json:"pos_number" validate:"required"`
}

type CreateComponentRequest struct {
	MachineId      uuid.UUID            `json:"machine_id" validate:"required"`
	CategoryId     *uuid.UUID           `json:"category_id"`
	PosNumber      string               `json:"pos_number"`
	Quantity       int                  `json:"quantity"`
	Unit           string               `json:"unit"`
	NameDe         string               `json:"name_de"`
	NameEn         string               `json:"name_en" validate:"required"`
	SapNumber      string               `json:"sap_number"`
	Description    string               `json:"description"`
	IsSparePart    bool                 `json:"is_spare_part"`
	IsWearingPart  bool                 `json:"is_wearing_part"`
	Specifications []SpecificationInput `json:"specifications" validate:"dive"`
	Images         []FileUpload
}

type CreateComponentResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateComponentRequest struct {
	Id             uuid.UUID
	CategoryId     *uuid.UUID           `json:"category_id"`
	PosNumber      string               `json:"pos_number"`
	Quantity       int                  `json:"quantity"`
	Unit           string               `json:"unit"`
	NameDe         string               `json:"name_de"`
	NameEn         string               `json:"name_en" validate:"required"`
	SapNumber      string               `json:"sap_number"`
	Description    string               `json:"description"`
	IsSparePart    bool                 `json:"is_spare_part"`
	IsWearingPart  bool                 `json:"is_wearing_part"`
	Specifications []SpecificationInput `json:"specifications" validate:"dive"`
	Images         []FileUpload
}

type UpdateComponentResponse struct {
	Id uuid.UUID `json:"id"`
}
