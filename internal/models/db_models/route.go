package db_models

type Route struct {
	ID          int    `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string
	Difficulty  string  `gorm:"default:easy"`
	RewardXP    float64 `gorm:"column:reward_xp;default:0"`
	IsPremium   bool    `gorm:"default:false"`

	// Populated by the repository from route_points, ordered by position.
	Points []PointOfInterest `gorm:"-"`
}

// RoutePoint is the route<->POI join row. Position keeps the caller-supplied
// ordering of the association.
type RoutePoint struct {
	RouteID  int `gorm:"primaryKey"`
	POIID    int `gorm:"primaryKey;column:poi_id"`
	Position int `gorm:"not null"`
}

func (RoutePoint) TableName() string {
	return "route_points"
}
