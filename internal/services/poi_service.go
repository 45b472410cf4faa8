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

// DefaultSearchRadiusMeters applies when a proximity search supplies a center
// without a radius.
const DefaultSearchRadiusMeters = 500

type POIServiceInterface interface {
	CreatePOI(ctx context.Context, req request_models.CreatePOIRequest) (response_models.POI, error)
	GetPOIByID(ctx context.Context, id int) (response_models.POI, error)
	ListPOIs(ctx context.Context, query request_models.ListPOIQuery) ([]response_models.POI, error)
	UpdatePOI(ctx context.Context, id int, req request_models.UpdatePOIRequest) (response_models.POI, error)
	DeletePOI(ctx context.Context, id int) (response_models.POI, error)
}

type PoiService struct {
	poiRepository repositories.POIRepository
}

func NewPOIService(poiRepository repositories.POIRepository) POIServiceInterface {
	return &PoiService{
		poiRepository: poiRepository,
	}
}

func (p *PoiService) CreatePOI(ctx context.Context, req request_models.CreatePOIRequest) (response_models.POI, error) {
	if req.Title == "" {
		return response_models.POI{}, utils.ErrTitleRequired
	}
	if req.Latitude == nil || req.Longitude == nil {
		return response_models.POI{}, utils.ErrCoordinatePair
	}

	location, err := geo.ToGeometry(*req.Latitude, *req.Longitude)
	if err != nil {
		return response_models.POI{}, err
	}

	newPOI := &db_models.PointOfInterest{
		Title:            req.Title,
		Description:      req.Description,
		HistoricImageURL: req.HistoricImageURL,
		ModernImageURL:   req.ModernImageURL,
		Location:         location,
	}

	if _, err := p.poiRepository.Create(ctx, newPOI); err != nil {
		log.Printf("Error creating POI: %v", err)
		return response_models.POI{}, utils.ErrDatabaseError
	}

	return PoiToResponse(*newPOI), nil
}

func (p *PoiService) GetPOIByID(ctx context.Context, id int) (response_models.POI, error) {
	poi, err := p.poiRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching POI: %v", err)
		return response_models.POI{}, utils.ErrDatabaseError
	}
	if poi == nil {
		return response_models.POI{}, utils.ErrPOINotFound
	}

	return PoiToResponse(*poi), nil
}

func (p *PoiService) ListPOIs(ctx context.Context, query request_models.ListPOIQuery) ([]response_models.POI, error) {
	if query.Skip < 0 {
		return nil, utils.ErrInvalidSkip
	}
	if query.Limit < 1 || query.Limit > 100 {
		return nil, utils.ErrInvalidLimit
	}

	var center *geo.Coordinate
	radius := float64(DefaultSearchRadiusMeters)

	switch {
	case query.Latitude != nil && query.Longitude != nil:
		c, err := geo.NewCoordinate(*query.Latitude, *query.Longitude)
		if err != nil {
			return nil, err
		}
		center = &c
		if query.Radius != nil {
			radius = *query.Radius
		}
	case query.Latitude != nil || query.Longitude != nil:
		return nil, utils.ErrCoordinatePair
	}

	pois, err := p.poiRepository.FindNear(ctx, center, radius, query.Skip, query.Limit)
	if err != nil {
		log.Printf("Error listing POIs: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.POI, 0, len(pois))
	for _, poi := range pois {
		responses = append(responses, PoiToResponse(poi))
	}
	return responses, nil
}

func (p *PoiService) UpdatePOI(ctx context.Context, id int, req request_models.UpdatePOIRequest) (response_models.POI, error) {
	existingPOI, err := p.poiRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching POI: %v", err)
		return response_models.POI{}, utils.ErrDatabaseError
	}
	if existingPOI == nil {
		return response_models.POI{}, utils.ErrPOINotFound
	}

	// Only fields present in the request overwrite the stored entity
	if req.Title != nil {
		if *req.Title == "" {
			return response_models.POI{}, utils.ErrTitleRequired
		}
		existingPOI.Title = *req.Title
	}
	if req.Description != nil {
		existingPOI.Description = *req.Description
	}
	if req.HistoricImageURL != nil {
		existingPOI.HistoricImageURL = *req.HistoricImageURL
	}
	if req.ModernImageURL != nil {
		existingPOI.ModernImageURL = *req.ModernImageURL
	}

	switch {
	case req.Latitude != nil && req.Longitude != nil:
		location, err := geo.ToGeometry(*req.Latitude, *req.Longitude)
		if err != nil {
			return response_models.POI{}, err
		}
		existingPOI.Location = location
	case req.Latitude != nil || req.Longitude != nil:
		return response_models.POI{}, utils.ErrCoordinatePair
	}

	if err := p.poiRepository.Update(ctx, existingPOI); err != nil {
		log.Printf("Error updating POI: %v", err)
		return response_models.POI{}, utils.ErrDatabaseError
	}

	return PoiToResponse(*existingPOI), nil
}

func (p *PoiService) DeletePOI(ctx context.Context, id int) (response_models.POI, error) {
	existingPOI, err := p.poiRepository.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching POI: %v", err)
		return response_models.POI{}, utils.ErrDatabaseError
	}
	if existingPOI == nil {
		return response_models.POI{}, utils.ErrPOINotFound
	}

	if err := p.poiRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting POI: %v", err)
		return response_models.POI{}, utils.ErrDatabaseError
	}

	return PoiToResponse(*existingPOI), nil
}

// PoiToResponse decodes the stored geometry into the lat/lon contract. Every
// POI that leaves the service passes through here exactly once.
func PoiToResponse(poi db_models.PointOfInterest) response_models.POI {
	coord := poi.Location.Coordinate()
	return response_models.POI{
		ID:               poi.ID,
		Title:            poi.Title,
		Description:      poi.Description,
		HistoricImageURL: poi.HistoricImageURL,
		ModernImageURL:   poi.ModernImageURL,
		Latitude:         coord.Latitude,
		Longitude:        coord.Longitude,
	}
}
