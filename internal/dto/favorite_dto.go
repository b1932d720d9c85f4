package dto

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteRequest struct {
	Type string    `json:"favorite_type" validate:"required,oneof=machine component"`
	Id   uuid.UUID `json:"id" validate:"required"`
}

type FavoriteResponse struct {
	Id        uuid.UUID          `json:"id"`
	Type      string             `json:"favorite_type"`
	RefId     uuid.UUID          `json:"ref_id"`
	CreatedAt time.Time          `json:"created_at"`
	Machine   *MachineResponse   `json:"machine,omitempty"`
	Component *ComponentResponse `json:"component,omitempty"`
}

type ToggleFavoriteResponse struct {
	IsFavorite bool              `json:"is_favorite"`
	Favorite   *FavoriteResponse `json:"favorite,omitempty"`
}

type AddFavoriteResponse struct {
	Favorite FavoriteResponse `json:"favorite"`
	Created  bool             `json:"created"`
}

type RemoveFavoriteResponse struct {
	Removed int `json:"removed"`
}

type CheckFavoriteResponse struct {
	IsFavorite bool `json:"is_favorite"`
}

type ListFavoritesResponse struct {
	Machines   []FavoriteResponse `json:"machines"`
	Components []FavoriteResponse `json:"components"`
}

type MachineWithComponentsResponse struct {
	Machine    MachineResponse     `json:"machine"`
	Components []ComponentResponse `json:"components"`
}
