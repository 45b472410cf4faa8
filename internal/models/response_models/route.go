package response_models

type Route struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Difficulty  string  `json:"difficulty"`
	RewardXP    float64 `json:"reward_xp"`
	IsPremium   bool    `json:"is_premium"`
	Points      []POI   `json:"points"`

	// Sum of geodesic leg lengths over the ordered points.
	TotalDistanceMeters float64 `json:"total_distance_meters"`
}
