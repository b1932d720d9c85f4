package dto

type AnalyticsRequest struct {
	Period string `json:"period" validate:"omitempty,oneof=today week month year"`
	Type   string `json:"type" validate:"omitempty,oneof=component machine advanced all"`
	Limit  int    `json:"limit"`
}

type PopularQueryResponse struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

type SearchTrendResponse struct {
	Query string `json:"query"`
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type PopularMachineResponse struct {
	Machine        MachineResponse `json:"machine"`
	FavoritesCount int             `json:"favorites_count"`
	SearchCount    int             `json:"search_count"`
}

type PopularComponentResponse struct {
	Component      ComponentResponse `json:"component"`
	FavoritesCount int               `json:"favorites_count"`
	SearchCount    int               `json:"search_count"`
}

type UserFavoritesAnalyticsResponse struct {
	TotalFavorites     int `json:"total_favorites"`
	MachineFavorites   int `json:"machine_favorites"`
	ComponentFavorites int `json:"component_favorites"`
}
