package services

import (
	"context"
	"sort"

	"chronowalker/internal/models/db_models"
	"chronowalker/pkg/geo"
	"chronowalker/pkg/utils"
)

func ptr[T any](v T) *T { return &v }

// fakePOIRepository keeps POIs in memory in insertion order and answers
// proximity queries with the same geodesic metric the store would use.
type fakePOIRepository struct {
	seq        int
	pois       map[int]db_models.PointOfInterest
	order      []int
	lastRadius float64
}

func newFakePOIRepository() *fakePOIRepository {
	return &fakePOIRepository{pois: map[int]db_models.PointOfInterest{}}
}

func (f *fakePOIRepository) Create(_ context.Context, poi *db_models.PointOfInterest) (int, error) {
	f.seq++
	poi.ID = f.seq
	f.pois[poi.ID] = *poi
	f.order = append(f.order, poi.ID)
	return poi.ID, nil
}

func (f *fakePOIRepository) Update(_ context.Context, poi *db_models.PointOfInterest) error {
	f.pois[poi.ID] = *poi
	return nil
}

func (f *fakePOIRepository) Delete(_ context.Context, id int) error {
	delete(f.pois, id)
	for i, known := range f.order {
		if known == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePOIRepository) GetByID(_ context.Context, id int) (*db_models.PointOfInterest, error) {
	poi, ok := f.pois[id]
	if !ok {
		return nil, nil
	}
	return &poi, nil
}

func (f *fakePOIRepository) FindNear(_ context.Context, center *geo.Coordinate, radiusMeters float64, offset, limit int) ([]db_models.PointOfInterest, error) {
	f.lastRadius = radiusMeters

	matched := make([]db_models.PointOfInterest, 0, len(f.order))
	for _, id := range f.order {
		poi := f.pois[id]
		if center == nil || geo.DistanceMeters(*center, poi.Location.Coordinate()) <= radiusMeters {
			matched = append(matched, poi)
		}
	}
	if center != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			return geo.DistanceMeters(*center, matched[i].Location.Coordinate()) <
				geo.DistanceMeters(*center, matched[j].Location.Coordinate())
		})
	}

	if offset >= len(matched) {
		return []db_models.PointOfInterest{}, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// fakeRouteRepository resolves poi ids against a seeded POI set, mirroring
// the replace semantics of the real join table.
type fakeRouteRepository struct {
	seq    int
	routes map[int]db_models.Route
	points map[int][]db_models.PointOfInterest
	pois   map[int]db_models.PointOfInterest
}

func newFakeRouteRepository(pois ...db_models.PointOfInterest) *fakeRouteRepository {
	byID := map[int]db_models.PointOfInterest{}
	for _, poi := range pois {
		byID[poi.ID] = poi
	}
	return &fakeRouteRepository{
		routes: map[int]db_models.Route{},
		points: map[int][]db_models.PointOfInterest{},
		pois:   byID,
	}
}

func (f *fakeRouteRepository) resolve(poiIDs []int) []db_models.PointOfInterest {
	resolved := make([]db_models.PointOfInterest, 0, len(poiIDs))
	seen := map[int]bool{}
	for _, id := range poiIDs {
		poi, ok := f.pois[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		resolved = append(resolved, poi)
	}
	return resolved
}

func (f *fakeRouteRepository) CreateWithPoints(_ context.Context, route *db_models.Route, poiIDs []int) error {
	f.seq++
	route.ID = f.seq
	route.Points = f.resolve(poiIDs)
	f.routes[route.ID] = *route
	f.points[route.ID] = route.Points
	return nil
}

func (f *fakeRouteRepository) Update(_ context.Context, route *db_models.Route) error {
	stored := *route
	stored.Points = f.points[route.ID]
	f.routes[route.ID] = stored
	return nil
}

func (f *fakeRouteRepository) ReplacePoints(_ context.Context, routeID int, poiIDs []int) ([]db_models.PointOfInterest, error) {
	resolved := f.resolve(poiIDs)
	f.points[routeID] = resolved
	return resolved, nil
}

func (f *fakeRouteRepository) Delete(_ context.Context, id int) error {
	delete(f.routes, id)
	delete(f.points, id)
	return nil
}

func (f *fakeRouteRepository) GetByID(_ context.Context, id int) (*db_models.Route, error) {
	route, ok := f.routes[id]
	if !ok {
		return nil, nil
	}
	route.Points = f.points[id]
	return &route, nil
}

func (f *fakeRouteRepository) List(_ context.Context, offset, limit int) ([]db_models.Route, error) {
	ids := make([]int, 0, len(f.routes))
	for id := range f.routes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	routes := make([]db_models.Route, 0, len(ids))
	for _, id := range ids {
		route := f.routes[id]
		route.Points = f.points[id]
		routes = append(routes, route)
	}

	if offset >= len(routes) {
		return []db_models.Route{}, nil
	}
	routes = routes[offset:]
	if limit < len(routes) {
		routes = routes[:limit]
	}
	return routes, nil
}

// fakeProgressRepository enforces the (user, route) uniqueness the way the
// store's unique index would.
type fakeProgressRepository struct {
	seq     int
	records map[int]db_models.UserProgress
}

func newFakeProgressRepository() *fakeProgressRepository {
	return &fakeProgressRepository{records: map[int]db_models.UserProgress{}}
}

func (f *fakeProgressRepository) Create(_ context.Context, progress *db_models.UserProgress) error {
	for _, existing := range f.records {
		if existing.UserID == progress.UserID && existing.RouteID == progress.RouteID {
			return utils.ErrProgressExists
		}
	}
	f.seq++
	progress.ID = f.seq
	f.records[progress.ID] = *progress
	return nil
}

func (f *fakeProgressRepository) Update(_ context.Context, progress *db_models.UserProgress) error {
	f.records[progress.ID] = *progress
	return nil
}

func (f *fakeProgressRepository) Delete(_ context.Context, id int) error {
	delete(f.records, id)
	return nil
}

func (f *fakeProgressRepository) GetByID(_ context.Context, id int) (*db_models.UserProgress, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (f *fakeProgressRepository) GetByUserAndRoute(_ context.Context, userID, routeID int) (*db_models.UserProgress, error) {
	for _, record := range f.records {
		if record.UserID == userID && record.RouteID == routeID {
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakeProgressRepository) ListByUser(_ context.Context, userID, offset, limit int) ([]db_models.UserProgress, error) {
	ids := make([]int, 0, len(f.records))
	for id, record := range f.records {
		if record.UserID == userID {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	records := make([]db_models.UserProgress, 0, len(ids))
	for _, id := range ids {
		records = append(records, f.records[id])
	}

	if offset >= len(records) {
		return []db_models.UserProgress{}, nil
	}
	records = records[offset:]
	if limit < len(records) {
		records = records[:limit]
	}
	return records, nil
}
