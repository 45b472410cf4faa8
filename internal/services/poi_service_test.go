package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronowalker/internal/models/request_models"
	"chronowalker/internal/models/response_models"
	"chronowalker/pkg/utils"
)

func createTestPOI(t *testing.T, service POIServiceInterface, title string, lat, lon float64) response_models.POI {
	t.Helper()
	poi, err := service.CreatePOI(context.Background(), request_models.CreatePOIRequest{
		Title:     title,
		Latitude:  ptr(lat),
		Longitude: ptr(lon),
	})
	require.NoError(t, err)
	return poi
}

func TestCreatePOI(t *testing.T) {
	service := NewPOIService(newFakePOIRepository())
	ctx := context.Background()

	poi := createTestPOI(t, service, "Red Square", 55.7539, 37.6208)
	assert.Equal(t, 1, poi.ID)
	assert.Equal(t, 55.7539, poi.Latitude)
	assert.Equal(t, 37.6208, poi.Longitude)

	_, err := service.CreatePOI(ctx, request_models.CreatePOIRequest{
		Latitude: ptr(1.0), Longitude: ptr(2.0),
	})
	assert.ErrorIs(t, err, utils.ErrTitleRequired)

	_, err = service.CreatePOI(ctx, request_models.CreatePOIRequest{
		Title: "half a pair", Latitude: ptr(1.0),
	})
	assert.ErrorIs(t, err, utils.ErrCoordinatePair)

	_, err = service.CreatePOI(ctx, request_models.CreatePOIRequest{
		Title: "off the map", Latitude: ptr(95.0), Longitude: ptr(0.0),
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
}

func TestGetPOIByIDNotFound(t *testing.T) {
	service := NewPOIService(newFakePOIRepository())

	_, err := service.GetPOIByID(context.Background(), 42)
	assert.ErrorIs(t, err, utils.ErrPOINotFound)
}

func TestListPOIsProximity(t *testing.T) {
	repo := newFakePOIRepository()
	service := NewPOIService(repo)
	ctx := context.Background()

	redSquare := createTestPOI(t, service, "Red Square", 55.7539, 37.6208)
	createTestPOI(t, service, "Null Island Buoy", 0, 0)

	near, err := service.ListPOIs(ctx, request_models.ListPOIQuery{
		Latitude:  ptr(55.7539),
		Longitude: ptr(37.6208),
		Radius:    ptr(1000.0),
		Limit:     100,
	})
	require.NoError(t, err)
	require.Len(t, near, 1)
	assert.Equal(t, redSquare.ID, near[0].ID)

	farAway, err := service.ListPOIs(ctx, request_models.ListPOIQuery{
		Latitude:  ptr(10.0),
		Longitude: ptr(10.0),
		Radius:    ptr(1000.0),
		Limit:     100,
	})
	require.NoError(t, err)
	assert.Empty(t, farAway)
}

func TestListPOIsDefaultRadius(t *testing.T) {
	repo := newFakePOIRepository()
	service := NewPOIService(repo)

	_, err := service.ListPOIs(context.Background(), request_models.ListPOIQuery{
		Latitude:  ptr(55.7539),
		Longitude: ptr(37.6208),
		Limit:     100,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultSearchRadiusMeters), repo.lastRadius)
}

func TestListPOIsRejectsPartialCenter(t *testing.T) {
	service := NewPOIService(newFakePOIRepository())
	ctx := context.Background()

	_, err := service.ListPOIs(ctx, request_models.ListPOIQuery{Latitude: ptr(55.0), Limit: 100})
	assert.ErrorIs(t, err, utils.ErrCoordinatePair)

	_, err = service.ListPOIs(ctx, request_models.ListPOIQuery{
		Latitude: ptr(200.0), Longitude: ptr(0.0), Limit: 100,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCoordinate)
}

func TestListPOIsPaginationComposes(t *testing.T) {
	service := NewPOIService(newFakePOIRepository())
	ctx := context.Background()

	// three POIs at increasing distance from the center
	createTestPOI(t, service, "center", 55.7539, 37.6208)
	createTestPOI(t, service, "close", 55.7549, 37.6208)
	createTestPOI(t, service, "closer still", 55.7544, 37.6208)

	query := func(skip, limit int) []response_models.POI {
		result, err := service.ListPOIs(ctx, request_models.ListPOIQuery{
			Latitude:  ptr(55.7539),
			Longitude: ptr(37.6208),
			Radius:    ptr(2000.0),
			Skip:      skip,
			Limit:     limit,
		})
		require.NoError(t, err)
		return result
	}

	first := query(0, 1)
	second := query(1, 1)
	firstTwo := query(0, 2)

	require.Len(t, firstTwo, 2)
	assert.Equal(t, firstTwo[0], first[0])
	assert.Equal(t, firstTwo[1], second[0])
}

func TestUpdatePOIPartialFields(t *testing.T) {
	service := NewPOIService(newFakePOIRepository())
	ctx := context.Background()

	poi := createTestPOI(t, service, "Red Square", 55.7539, 37.6208)

	updated, err := service.UpdatePOI(ctx, poi.ID, request_models.UpdatePOIRequest{
		Description: ptr("The central square of Moscow"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Red Square", updated.Title)
	assert.Equal(t, "The central square of Moscow", updated.Description)
	assert.Equal(t, 55.7539, updated.Latitude)

	_, err = service.UpdatePOI(ctx, poi.ID, request_models.UpdatePOIRequest{
		Latitude: ptr(55.76),
	})
	assert.ErrorIs(t, err, utils.ErrCoordinatePair)

	moved, err := service.UpdatePOI(ctx, poi.ID, request_models.UpdatePOIRequest{
		Latitude:  ptr(55.76),
		Longitude: ptr(37.62),
	})
	require.NoError(t, err)
	assert.Equal(t, 55.76, moved.Latitude)
	assert.Equal(t, 37.62, moved.Longitude)
}

func TestDeletePOIReturnsEntity(t *testing.T) {
	service := NewPOIService(newFakePOIRepository())
	ctx := context.Background()

	poi := createTestPOI(t, service, "Red Square", 55.7539, 37.6208)

	deleted, err := service.DeletePOI(ctx, poi.ID)
	require.NoError(t, err)
	assert.Equal(t, poi, deleted)

	_, err = service.GetPOIByID(ctx, poi.ID)
	assert.ErrorIs(t, err, utils.ErrPOINotFound)
}
