package services

import (
	"context"
	"log"

	"chronowalker/internal/models/db_models"
	"chronowalker/internal/models/request_models"
	"chronowalker/internal/models/response_models"
	"chronowalker/internal/repositories"
	"chronowalker/pkg/geo"
	"chronowalker/pkg/utils"
)

type RouteServiceInterface interface {
	CreateRoute(ctx context.Context, req request_models.CreateRouteRequest) (response_models.Route, error)
	GetRouteByID(ctx context.Context, id int) (response_models.Route, error)
	ListRoutes(ctx context.Context, skip, limit int) ([]response_models.Route, error)
	UpdateRoute(ctx context.Context, id int, req request_models.UpdateRouteRequest) (response_models.Route, error)
	DeleteRoute(ctx context.Context, id int) (response_models.Route, error)
}

type RouteService struct {
	routeRepository repositories.RouteRepository
}

func NewRouteService(routeRepository repositories.RouteRepository) RouteServiceInterface {
	return &RouteService{
		routeRepository: routeRepository,
	}
}

func (s *RouteService) CreateRoute(ctx context.Context, req request_models.CreateRouteRequest) (response_models.Route, error) {
	if req.Title == "" {
		return response_models.Route{}, utils.ErrTitleRequired
	}

	newRoute := &db_models.Route{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  "easy",
	}
	if req.Difficulty != nil {
		newRoute.Difficulty = *req.Difficulty
	}
	if req.RewardXP != nil {
		newRoute.RewardXP = *req.RewardXP
	}
	if req.IsPremium != nil {
		newRoute.IsPremium = *req.IsPremium
	}

	if err := s.routeRepository.CreateWithPoints(ctx, newRoute, req.POIIDs); err != nil {
		log.Printf("Error creating route: %v", err)
		return response_models.Route{}, utils.ErrDatabaseError
	}

	return RouteToResponse(*newRoute), nil
}

func (s *RouteService) GetRouteByID(ctx context.Context, id int) (response_models.Route, error) {
	route, err := s.routeRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching route: %v", err)
		return response_models.Route{}, utils.ErrDatabaseError
	}
	if route == nil {
		return response_models.Route{}, utils.ErrRouteNotFound
	}

	return RouteToResponse(*route), nil
}

func (s *RouteService) ListRoutes(ctx context.Context, skip, limit int) ([]response_models.Route, error) {
	if skip < 0 {
		return nil, utils.ErrInvalidSkip
	}
	if limit < 1 || limit > 100 {
		return nil, utils.ErrInvalidLimit
	}

	routes, err := s.routeRepository.List(ctx, skip, limit)
	if err != nil {
		log.Printf("Error listing routes: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.Route, 0, len(routes))
	for _, route := range routes {
		responses = append(responses, RouteToResponse(route))
	}
	return responses, nil
}

func (s *RouteService) UpdateRoute(ctx context.Context, id int, req request_models.UpdateRouteRequest) (response_models.Route, error) {
	existing, err := s.routeRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching route: %v", err)
		return response_models.Route{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.Route{}, utils.ErrRouteNotFound
	}

	if req.Title != nil {
		if *req.Title == "" {
			return response_models.Route{}, utils.ErrTitleRequired
		}
		existing.Title = *req.Title
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.Difficulty != nil {
		existing.Difficulty = *req.Difficulty
	}
	if req.RewardXP != nil {
		existing.RewardXP = *req.RewardXP
	}
	if req.IsPremium != nil {
		existing.IsPremium = *req.IsPremium
	}

	if err := s.routeRepository.Update(ctx, existing); err != nil {
		log.Printf("Error updating route: %v", err)
		return response_models.Route{}, utils.ErrDatabaseError
	}

	// A present poi_ids list replaces the whole association, never merges
	if req.POIIDs != nil {
		points, err := s.routeRepository.ReplacePoints(ctx, id, *req.POIIDs)
		if err != nil {
			log.Printf("Error replacing route points: %v", err)
			return response_models.Route{}, utils.ErrDatabaseError
		}
		existing.Points = points
	}

	return RouteToResponse(*existing), nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, id int) (response_models.Route, error) {
	existing, err := s.routeRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching route: %v", err)
		return response_models.Route{}, utils.ErrDatabaseError
	}
	if existing == nil {
		return response_models.Route{}, utils.ErrRouteNotFound
	}

	if err := s.routeRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting route: %v", err)
		return response_models.Route{}, utils.ErrDatabaseError
	}

	return RouteToResponse(*existing), nil
}

func RouteToResponse(route db_models.Route) response_models.Route {
	points := make([]response_models.POI, 0, len(route.Points))
	for _, poi := range route.Points {
		points = append(points, PoiToResponse(poi))
	}

	var total float64
	for i := 1; i < len(route.Points); i++ {
		total += geo.DistanceMeters(
			route.Points[i-1].Location.Coordinate(),
			route.Points[i].Location.Coordinate(),
		)
	}

	return response_models.Route{
		ID:                  route.ID,
		Title:               route.Title,
		Description:         route.Description,
		Difficulty:          route.Difficulty,
		RewardXP:            route.RewardXP,
		IsPremium:           route.IsPremium,
		Points:              points,
		TotalDistanceMeters: total,
	}
}
