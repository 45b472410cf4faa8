package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chronowalker/internal/models/request_models"
	"chronowalker/internal/services"
	"chronowalker/pkg/utils"
)

type ProgressController struct {
	progressService services.ProgressServiceInterface
}

func NewProgressController(progressService services.ProgressServiceInterface) *ProgressController {
	return &ProgressController{
		progressService: progressService,
	}
}

// ListProgress godoc
// @Summary List the caller's route progress
// @Tags Progress
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress [get]
func (p *ProgressController) ListProgress(c *gin.Context) {
	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	userID := c.GetInt("user_id")

	records, err := p.progressService.ListProgress(c.Request.Context(), userID, skip, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, records, "Progress fetched successfully")
}

// CreateProgress godoc
// @Summary Start a route
// @Description One progress record per (user, route)
// @Tags Progress
// @Accept json
// @Produce json
// @Param request body request_models.CreateProgressRequest true "Progress payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress [post]
func (p *ProgressController) CreateProgress(c *gin.Context) {
	var req request_models.CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetInt("user_id")

	progress, err := p.progressService.CreateProgress(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Progress created successfully")
}

// UpdateProgress godoc
// @Summary Update own progress
// @Tags Progress
// @Accept json
// @Produce json
// @Param id path int true "Progress ID"
// @Param request body request_models.UpdateProgressRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress/{id} [put]
func (p *ProgressController) UpdateProgress(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req request_models.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID := c.GetInt("user_id")

	progress, err := p.progressService.UpdateProgress(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Progress updated successfully")
}

// DeleteProgress godoc
// @Summary Delete own progress
// @Tags Progress
// @Produce json
// @Param id path int true "Progress ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /progress/{id} [delete]
func (p *ProgressController) DeleteProgress(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID := c.GetInt("user_id")

	progress, err := p.progressService.DeleteProgress(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progress, "Progress deleted successfully")
}
