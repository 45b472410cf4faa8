package response_models

type UserProgress struct {
	ID                   int    `json:"id"`
	UserID               int    `json:"user_id"`
	RouteID              int    `json:"route_id"`
	Status               string `json:"status"`
	CompletedPointsCount int    `json:"completed_points_count"`
}
