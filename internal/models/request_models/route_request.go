package request_models

type CreateRouteRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Difficulty  *string  `json:"difficulty"`
	RewardXP    *float64 `json:"reward_xp"`
	IsPremium   *bool    `json:"is_premium"`
	POIIDs      []int    `json:"poi_ids"`
}

// UpdateRouteRequest patches scalar fields; a non-nil POIIDs fully replaces
// the route's point set.
type UpdateRouteRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Difficulty  *string  `json:"difficulty"`
	RewardXP    *float64 `json:"reward_xp"`
	IsPremium   *bool    `json:"is_premium"`
	POIIDs      *[]int   `json:"poi_ids"`
}
