package db_models

import "chronowalker/pkg/geo"

type PointOfInterest struct {
	ID          int    `gorm:"primaryKey"`
	Title       string `gorm:"not null;index"`
	Description string

	// Stored as Point(lon, lat), SRID 4326
	Location geo.DBPoint `gorm:"not null"`

	HistoricImageURL string
	ModernImageURL   string
}

func (PointOfInterest) TableName() string {
	return "point_of_interest"
}
