package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourline/internal/models/request_models"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Create godoc
// @Summary Create an itinerary with empty days
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.CreateItineraryRequest true "Group, title, start date, day count"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) Create(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "group_id, title, start_date and days are required")
		return
	}

	id, err := i.itineraryService.CreateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Itinerary created successfully")
}

// Get godoc
// @Summary Get an itinerary with its days and activities
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/{id} [get]
func (i *ItineraryController) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryDetails(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// ListByGroup godoc
// @Summary List a group's itineraries
// @Tags Itinerary
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/group/{groupId} [get]
func (i *ItineraryController) ListByGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// AddDay godoc
// @Summary Append a day to an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.AddDayRequest true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/days [post]
func (i *ItineraryController) AddDay(c *gin.Context) {
	var req request_models.AddDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "itinerary_id is required")
		return
	}

	itineraryID, err := uuid.Parse(req.ItineraryID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid itinerary ID")
		return
	}

	dayID, err := i.itineraryService.AddDay(c.Request.Context(), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"day_id": dayID.String()}, "Day added successfully")
}

// AddActivity godoc
// @Summary Add an activity to a day
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.AddActivityRequest true "Activity fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "day_id, time and title are required")
		return
	}

	if err := i.itineraryService.AddActivity(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity added successfully")
}

// UpdateActivity godoc
// @Summary Update an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.UpdateActivityRequest true "Activity fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/activities [put]
func (i *ItineraryController) UpdateActivity(c *gin.Context) {
	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "activity_id, time and title are required")
		return
	}

	if err := i.itineraryService.UpdateActivity(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity updated successfully")
}

// RemoveActivity godoc
// @Summary Remove an activity
// @Tags Itinerary
// @Param id path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/activities/{id} [delete]
func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity ID")
		return
	}

	if err := i.itineraryService.RemoveActivity(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}
