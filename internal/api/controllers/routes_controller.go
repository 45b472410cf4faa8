package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chronowalker/internal/models/request_models"
	"chronowalker/internal/services"
	"chronowalker/pkg/utils"
)

type RoutesController struct {
	routeService services.RouteServiceInterface
}

func NewRoutesController(routeService services.RouteServiceInterface) *RoutesController {
	return &RoutesController{
		routeService: routeService,
	}
}

// ListRoutes godoc
// @Summary List routes with their points
// @Tags Routes
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} utils.APIResponse
// @Router /routes [get]
func (r *RoutesController) ListRoutes(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	routes, err := r.routeService.ListRoutes(c.Request.Context(), skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, routes, "Routes fetched successfully")
}

// GetRouteByID godoc
// @Summary Get a route by id
// @Tags Routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Router /routes/{id} [get]
func (r *RoutesController) GetRouteByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	route, err := r.routeService.GetRouteByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route fetched successfully")
}

// CreateRoute godoc
// @Summary Create a route
// @Description Superusers only; unknown poi_ids are dropped
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.CreateRouteRequest true "Route payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes [post]
func (r *RoutesController) CreateRoute(c *gin.Context) {
	var req request_models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	route, err := r.routeService.CreateRoute(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route created successfully")
}

// UpdateRoute godoc
// @Summary Partially update a route
// @Description Superusers only; a poi_ids list replaces the whole point set
// @Tags Routes
// @Accept json
// @Produce json
// @Param id path int true "Route ID"
// @Param request body request_models.UpdateRouteRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id} [put]
func (r *RoutesController) UpdateRoute(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	route, err := r.routeService.UpdateRoute(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route updated successfully")
}

// DeleteRoute godoc
// @Summary Delete a route
// @Description Superusers only; its POIs are kept
// @Tags Routes
// @Produce json
// @Param id path int true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /routes/{id} [delete]
func (r *RoutesController) DeleteRoute(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	route, err := r.routeService.DeleteRoute(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route deleted successfully")
}
