package request_models

type CreateProgressRequest struct {
	RouteID              int    `json:"route_id" binding:"required"`
	Status               string `json:"status"`
	CompletedPointsCount int    `json:"completed_points_count"`
}

type UpdateProgressRequest struct {
	Status               *string `json:"status"`
	CompletedPointsCount *int    `json:"completed_points_count"`
}
