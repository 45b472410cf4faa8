package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chronowalker/internal/models/request_models"
	"chronowalker/internal/services"
	"chronowalker/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

// ListPOIs godoc
// @Summary List points of interest
// @Description Paginated listing; latitude/longitude/radius turn it into a proximity search
// @Tags POIs
// @Produce json
// @Param latitude query number false "Search center latitude"
// @Param longitude query number false "Search center longitude"
// @Param radius query number false "Search radius in meters" default(500)
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} utils.APIResponse
// @Router /pois [get]
func (p *POIsController) ListPOIs(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	query := request_models.ListPOIQuery{Skip: skip, Limit: limit}

	if raw := c.Query("latitude"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
			return
		}
		query.Latitude = &lat
	}
	if raw := c.Query("longitude"); raw != "" {
		lon, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
			return
		}
		query.Longitude = &lon
	}
	if raw := c.Query("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
			return
		}
		query.Radius = &radius
	}

	pois, err := p.poiService.ListPOIs(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

// GetPOIByID godoc
// @Summary Get a POI by id
// @Tags POIs
// @Produce json
// @Param id path int true "POI ID"
// @Success 200 {object} utils.APIResponse
// @Router /pois/{id} [get]
func (p *POIsController) GetPOIByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	poi, err := p.poiService.GetPOIByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI fetched successfully")
}

// CreatePOI godoc
// @Summary Create a POI
// @Description Superusers only
// @Tags POIs
// @Accept json
// @Produce json
// @Param request body request_models.CreatePOIRequest true "POI payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pois [post]
func (p *POIsController) CreatePOI(c *gin.Context) {
	var req request_models.CreatePOIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	poi, err := p.poiService.CreatePOI(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI created successfully")
}

// UpdatePOI godoc
// @Summary Partially update a POI
// @Description Superusers only; latitude/longitude must be updated as a pair
// @Tags POIs
// @Accept json
// @Produce json
// @Param id path int true "POI ID"
// @Param request body request_models.UpdatePOIRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pois/{id} [put]
func (p *POIsController) UpdatePOI(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request_models.UpdatePOIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	poi, err := p.poiService.UpdatePOI(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI updated successfully")
}

// DeletePOI godoc
// @Summary Delete a POI
// @Description Superusers only; returns the deleted POI
// @Tags POIs
// @Produce json
// @Param id path int true "POI ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /pois/{id} [delete]
func (p *POIsController) DeletePOI(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	poi, err := p.poiService.DeletePOI(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "POI deleted successfully")
}

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (skip, limit int, ok bool) {
	skipStr := c.DefaultQuery("skip", "0")
	limitStr := c.DefaultQuery("limit", "100")

	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid skip")
		return 0, 0, false
	}

	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return 0, 0, false
	}

	return skip, limit, true
}
