package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chronowalker/internal/models/db_models"
	"chronowalker/pkg/geo"
)

type POIRepository interface {
	Create(ctx context.Context, poi *db_models.PointOfInterest) (int, error)
	Update(ctx context.Context, poi *db_models.PointOfInterest) error
	Delete(ctx context.Context, id int) error

	GetByID(ctx context.Context, id int) (*db_models.PointOfInterest, error)
	FindNear(ctx context.Context, center *geo.Coordinate, radiusMeters float64, offset, limit int) ([]db_models.PointOfInterest, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) Create(ctx context.Context, poi *db_models.PointOfInterest) (int, error) {
	if err := r.db.WithContext(ctx).Create(poi).Error; err != nil {
		return 0, err
	}
	return poi.ID, nil
}

func (r *poiRepository) Update(ctx context.Context, poi *db_models.PointOfInterest) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(poi)
		if result.Error != nil {
			return fmt.Errorf("failed to update POI: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})
}

// Delete removes the POI together with its route associations.
func (r *poiRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poi_id = ?", id).
			Delete(&db_models.RoutePoint{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.PointOfInterest{}, "id = ?", id).Error
	})
}

func (r *poiRepository) GetByID(ctx context.Context, id int) (*db_models.PointOfInterest, error) {
	var poi db_models.PointOfInterest
	err := r.db.WithContext(ctx).First(&poi, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // default model
		}
		return nil, err
	}
	return &poi, nil
}

// FindNear lists POIs around center within radiusMeters, nearest first.
// A nil center degrades to a plain paginated listing in insertion order.
// The distance predicate runs on geography, so radii are real meters and
// not planar degree differences.
func (r *poiRepository) FindNear(ctx context.Context, center *geo.Coordinate, radiusMeters float64, offset, limit int) ([]db_models.PointOfInterest, error) {
	var pois []db_models.PointOfInterest

	query := r.db.WithContext(ctx).Model(&db_models.PointOfInterest{})

	if center != nil {
		query = query.
			Where(
				"ST_DWithin(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)",
				center.Longitude, center.Latitude, radiusMeters,
			).
			Clauses(clause.OrderBy{
				Expression: clause.Expr{
					SQL:  "ST_Distance(location::geography, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography)",
					Vars: []interface{}{center.Longitude, center.Latitude},
				},
			})
	} else {
		query = query.Order("id")
	}

	err := query.
		Offset(offset).
		Limit(limit).
		Find(&pois).Error

	if err != nil {
		return nil, err
	}
	return pois, nil
}
