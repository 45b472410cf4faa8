package db_models

// UserProgress tracks one user's advancement through one route. The unique
// index is the authoritative guard against duplicate (user, route) records;
// the service-level existence check only provides the friendlier error.
type UserProgress struct {
	ID                   int    `gorm:"primaryKey"`
	UserID               int    `gorm:"not null;uniqueIndex:idx_user_route"`
	RouteID              int    `gorm:"not null;uniqueIndex:idx_user_route"`
	Status               string `gorm:"default:in_progress"`
	CompletedPointsCount int    `gorm:"not null;default:0"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
