package dto

import (
	"time"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	Id               uuid.UUID           `json:"id"`
	Name             string              `json:"name"`
	Description      string              `json:"description"`
	ImagePath        string              `json:"image_path"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        *time.Time          `json:"updated_at"`
	ComponentsCount  *int64              `json:"components_count,omitempty"`
	RecentComponents []ComponentResponse `json:"recent_components,omitempty"`
}

type ListCategoriesRequest struct {
	Search     string `json:"search"`
	WithCounts bool   `json:"with_counts"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       *FileUpload
}

type CreateCategoryResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCategoryRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Image       *FileUpload
}

type UpdateCategoryResponse struct {
	Id uuid.UUID `json:"id"`
}

type ListCategoryComponentsRequest struct {
	CategoryId uuid.UUID
	Search     string `json:"search"`
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
}
