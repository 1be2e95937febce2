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

type TravelerController struct {
	rosterService  services.RosterServiceInterface
	checkinService services.CheckinServiceInterface
}

func NewTravelerController(
	rosterService services.RosterServiceInterface,
	checkinService services.CheckinServiceInterface,
) *TravelerController {
	return &TravelerController{
		rosterService:  rosterService,
		checkinService: checkinService,
	}
}

// ListByGroup godoc
// @Summary List a group's roster
// @Description Travelers in room order, with their current check-in state
// @Tags Traveler
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {array} response_models.TravelerResponse
// @Security BearerAuth
// @Router /travelers/group/{groupId} [get]
func (t *TravelerController) ListByGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	travelers, err := t.rosterService.ListTravelers(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	set, err := t.checkinService.LoadSet(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.TravelerResponse, 0, len(travelers))
	for _, traveler := range travelers {
		resp := response_models.TravelerResponse{
			ID:           traveler.ID.String(),
			FullName:     traveler.FullName,
			RoomNumber:   traveler.RoomNumber,
			Gender:       traveler.Gender,
			DietaryNeeds: traveler.DietaryNeeds,
			CheckedIn:    set.Contains(traveler.ID),
		}
		if traveler.GroupID != nil {
			resp.GroupID = traveler.GroupID.String()
		}
		if traveler.MessagingIdentity != nil {
			resp.MessagingIdentity = *traveler.MessagingIdentity
		}
		out = append(out, resp)
	}

	utils.RespondSuccess(c, out, "Roster fetched successfully")
}

// Upsert godoc
// @Summary Create or update a traveler
// @Description A write that hits a missing optional column is replayed with
// core fields only and reported as a degraded success, not a failure.
// @Tags Traveler
// @Accept json
// @Produce json
// @Param request body request_models.UpsertTravelerRequest true "Traveler fields"
// @Success 200 {object} response_models.SaveTravelerResponse
// @Security BearerAuth
// @Router /travelers [post]
func (t *TravelerController) Upsert(c *gin.Context) {
	var req request_models.UpsertTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "full_name and room_number are required")
		return
	}

	result, err := t.rosterService.UpsertTraveler(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.SaveTravelerResponse{
		ID:       result.ID.String(),
		Degraded: result.Degraded,
	}
	if result.Degraded {
		utils.RespondSuccessDegraded(c, resp, "Saved with core fields only; optional fields were not stored")
		return
	}
	utils.RespondSuccess(c, resp, "Traveler saved successfully")
}

// Import godoc
// @Summary Bulk import travelers from spreadsheet rows
// @Tags Traveler
// @Accept json
// @Produce json
// @Param request body request_models.BulkImportRequest true "Raw header->value rows"
// @Success 200 {object} response_models.BulkImportResponse
// @Security BearerAuth
// @Router /travelers/import [post]
func (t *TravelerController) Import(c *gin.Context) {
	var req request_models.BulkImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "group_id and rows are required")
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	inserted, skipped, err := t.rosterService.BulkImport(c.Request.Context(), groupID, req.Rows)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BulkImportResponse{
		Inserted: inserted,
		Skipped:  skipped,
	}, "Import completed")
}

// Delete godoc
// @Summary Delete a traveler
// @Description Also removes the traveler's active check-in row
// @Tags Traveler
// @Param id path string true "Traveler ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /travelers/{id} [delete]
func (t *TravelerController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid traveler ID")
		return
	}

	if err := t.rosterService.DeleteTraveler(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Traveler deleted successfully")
}
