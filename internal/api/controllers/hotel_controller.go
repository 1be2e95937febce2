package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourline/internal/models/request_models"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

type HotelController struct {
	hotelService services.HotelServiceInterface
}

func NewHotelController(hotelService services.HotelServiceInterface) *HotelController {
	return &HotelController{
		hotelService: hotelService,
	}
}

// List godoc
// @Summary List hotels, optionally filtered by keyword
// @Tags Hotel
// @Produce json
// @Param keyword query string false "Name or address keyword"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /hotels [get]
func (h *HotelController) List(c *gin.Context) {
	hotels, err := h.hotelService.ListHotels(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}

// Upsert godoc
// @Summary Create or update a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body request_models.UpsertHotelRequest true "Hotel fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /hotels [post]
func (h *HotelController) Upsert(c *gin.Context) {
	var req request_models.UpsertHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Hotel name is required")
		return
	}

	hotel, err := h.hotelService.UpsertHotel(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, hotel, "Hotel saved successfully")
}

// Delete godoc
// @Summary Delete a hotel
// @Tags Hotel
// @Param id path string true "Hotel ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /hotels/{id} [delete]
func (h *HotelController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	if err := h.hotelService.DeleteHotel(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Hotel deleted successfully")
}
