package dto

import (
	"time"

	"github.com/google/uuid"
)

type GlobalSearchRequest struct {
	Query   string `json:"query" validate:"required,min=2"`
	Type    string `json:"type" validate:"omitempty,oneof=component machine all"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
}

type GlobalSearchResponse struct {
	Machines   Paginated[MachineResponse]   `json:"machines"`
	Components Paginated[ComponentResponse] `json:"components"`
}

type AdvancedSearchRequest struct {
	Query             string     `json:"query"`
	MachineId         *uuid.UUID `json:"machine_id"`
	CategoryId        *uuid.UUID `json:"category_id"`
	IsSparePart       *bool      `json:"is_spare_part"`
	IsWearingPart     *bool      `json:"is_wearing_part"`
	HasSpecifications *bool      `json:"has_specifications"`
	HasImages         *bool      `json:"has_images"`
	Page              int        `json:"page"`
	PerPage           int        `json:"per_page"`
}

type SuggestionsRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Limit int    `json:"limit"`
}

type Suggestion struct {
	Type string     `json:"type"`
	Text string     `json:"text"`
	Id   *uuid.UUID `json:"id,omitempty"`
}

type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type SearchHistoryResponse struct {
	Id           uuid.UUID `json:"id"`
	Query        string    `json:"query"`
	Type         string    `json:"type"`
	ResultsCount int       `json:"results_count"`
	SearchedAt   time.Time `json:"searched_at"`
}
