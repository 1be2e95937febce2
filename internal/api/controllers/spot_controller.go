package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourline/internal/models/request_models"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

type SpotController struct {
	spotService services.SpotServiceInterface
}

func NewSpotController(spotService services.SpotServiceInterface) *SpotController {
	return &SpotController{
		spotService: spotService,
	}
}

// List godoc
// @Summary List spots, optionally filtered by keyword
// @Tags Spot
// @Produce json
// @Param keyword query string false "Name or address keyword"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /spots [get]
func (s *SpotController) List(c *gin.Context) {
	spots, err := s.spotService.ListSpots(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, spots, "Spots fetched successfully")
}

// Upsert godoc
// @Summary Create or update a spot
// @Tags Spot
// @Accept json
// @Produce json
// @Param request body request_models.UpsertSpotRequest true "Spot fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /spots [post]
func (s *SpotController) Upsert(c *gin.Context) {
	var req request_models.UpsertSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Spot name is required")
		return
	}

	spot, err := s.spotService.UpsertSpot(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, spot, "Spot saved successfully")
}

// Delete godoc
// @Summary Delete a spot
// @Tags Spot
// @Param id path string true "Spot ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /spots/{id} [delete]
func (s *SpotController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid spot ID")
		return
	}

	if err := s.spotService.DeleteSpot(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Spot deleted successfully")
}
