package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourline/internal/models/request_models"
	"tourline/internal/models/response_models"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

type CheckinController struct {
	checkinService services.CheckinServiceInterface
}

func NewCheckinController(checkinService services.CheckinServiceInterface) *CheckinController {
	return &CheckinController{
		checkinService: checkinService,
	}
}

// Toggle godoc
// @Summary Toggle a traveler's check-in state
// @Description Check in when absent, check out when present. The response
// carries the authoritative new state.
// @Tags CheckIn
// @Accept json
// @Produce json
// @Param request body request_models.ToggleCheckInRequest true "Traveler and optional location"
// @Success 200 {object} response_models.ToggleCheckInResponse
// @Security BearerAuth
// @Router /checkins/toggle [post]
func (ch *CheckinController) Toggle(c *gin.Context) {
	var req request_models.ToggleCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "traveler_id is required")
		return
	}

	travelerID, err := uuid.Parse(req.TravelerID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid traveler ID")
		return
	}

	checkedIn, err := ch.checkinService.ToggleCheckIn(c.Request.Context(), travelerID, req.LocationName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ToggleCheckInResponse{
		TravelerID: travelerID.String(),
		CheckedIn:  checkedIn,
	}, "Check-in toggled")
}

// ListByGroup godoc
// @Summary List active check-ins for a group
// @Description The authoritative resync read after realtime events
// @Tags CheckIn
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {array} response_models.CheckInResponse
// @Security BearerAuth
// @Router /checkins/group/{groupId} [get]
func (ch *CheckinController) ListByGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	records, err := ch.checkinService.ListCheckedIn(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.CheckInResponse, 0, len(records))
	for _, record := range records {
		out = append(out, response_models.CheckInResponse{
			TravelerID:   record.TravelerID.String(),
			LocationName: record.LocationName,
			CheckedInAt:  utils.FormatRFC3339TW(utils.FromUnixSecondsTW(record.CreatedAt)),
		})
	}
	utils.RespondSuccess(c, out, "Check-ins fetched successfully")
}
