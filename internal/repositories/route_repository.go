package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"chronowalker/internal/models/db_models"
)

type RouteRepository interface {
	CreateWithPoints(ctx context.Context, route *db_models.Route, poiIDs []int) error
	Update(ctx context.Context, route *db_models.Route) error
	ReplacePoints(ctx context.Context, routeID int, poiIDs []int) ([]db_models.PointOfInterest, error)
	Delete(ctx context.Context, id int) error

	GetByID(ctx context.Context, id int) (*db_models.Route, error)
	List(ctx context.Context, offset, limit int) ([]db_models.Route, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

// CreateWithPoints persists the route and its initial association in one
// transaction: either both land or neither does.
func (r *routeRepository) CreateWithPoints(ctx context.Context, route *db_models.Route, poiIDs []int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(route).Error; err != nil {
			return err
		}

		points, err := replacePointsTx(tx, route.ID, poiIDs)
		if err != nil {
			return err
		}
		route.Points = points
		return nil
	})
}

func (r *routeRepository) Update(ctx context.Context, route *db_models.Route) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Route{}).
		Where("id = ?", route.ID).
		Updates(map[string]interface{}{
			"title":       route.Title,
			"description": route.Description,
			"difficulty":  route.Difficulty,
			"reward_xp":   route.RewardXP,
			"is_premium":  route.IsPremium,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplacePoints swaps the route's whole point set for the resolved subset of
// poiIDs. Unknown ids are dropped, caller order is kept via the position
// column, and an empty list clears the association.
func (r *routeRepository) ReplacePoints(ctx context.Context, routeID int, poiIDs []int) ([]db_models.PointOfInterest, error) {
	var points []db_models.PointOfInterest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		points, err = replacePointsTx(tx, routeID, poiIDs)
		return err
	})

	if err != nil {
		return nil, err
	}
	return points, nil
}

func replacePointsTx(tx *gorm.DB, routeID int, poiIDs []int) ([]db_models.PointOfInterest, error) {
	// Wipe the previous association before writing the new one
	if err := tx.Where("route_id = ?", routeID).
		Delete(&db_models.RoutePoint{}).Error; err != nil {
		return nil, err
	}

	if len(poiIDs) == 0 {
		return []db_models.PointOfInterest{}, nil
	}

	var resolved []db_models.PointOfInterest
	if err := tx.Where("id IN ?", poiIDs).Find(&resolved).Error; err != nil {
		return nil, err
	}

	byID := make(map[int]db_models.PointOfInterest, len(resolved))
	for _, poi := range resolved {
		byID[poi.ID] = poi
	}

	// Re-sort to the caller-supplied order; the IN query itself does not
	// guarantee one. Duplicates collapse onto their first occurrence.
	points := make([]db_models.PointOfInterest, 0, len(resolved))
	rows := make([]db_models.RoutePoint, 0, len(resolved))
	seen := make(map[int]bool, len(poiIDs))
	for _, id := range poiIDs {
		poi, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, db_models.RoutePoint{
			RouteID:  routeID,
			POIID:    id,
			Position: len(points),
		})
		points = append(points, poi)
	}

	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return nil, err
		}
	}
	return points, nil
}

func (r *routeRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Associations go with the route; the POIs themselves stay.
		if err := tx.Where("route_id = ?", id).
			Delete(&db_models.RoutePoint{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Route{}, "id = ?", id).Error
	})
}

func (r *routeRepository) GetByID(ctx context.Context, id int) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // default model
		}
		return nil, err
	}

	points, err := r.loadPoints(ctx, route.ID)
	if err != nil {
		return nil, err
	}
	route.Points = points
	return &route, nil
}

func (r *routeRepository) List(ctx context.Context, offset, limit int) ([]db_models.Route, error) {
	var routes []db_models.Route

	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&routes).Error

	if err != nil {
		return nil, err
	}

	for i := range routes {
		points, err := r.loadPoints(ctx, routes[i].ID)
		if err != nil {
			return nil, err
		}
		routes[i].Points = points
	}
	return routes, nil
}

func (r *routeRepository) loadPoints(ctx context.Context, routeID int) ([]db_models.PointOfInterest, error) {
	var points []db_models.PointOfInterest

	err := r.db.WithContext(ctx).
		Joins("JOIN route_points ON route_points.poi_id = point_of_interest.id").
		Where("route_points.route_id = ?", routeID).
		Order("route_points.position").
		Find(&points).Error

	if err != nil {
		return nil, err
	}
	return points, nil
}
