package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourline/internal/models/request_models"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

type AlertController struct {
	alertService services.AlertServiceInterface
}

func NewAlertController(alertService services.AlertServiceInterface) *AlertController {
	return &AlertController{
		alertService: alertService,
	}
}

// Trigger godoc
// @Summary Raise an SOS alert for a traveler
// @Description Persists the alert, pushes an SOS event to realtime viewers,
// and notifies the group's LINE recipient when one is configured.
// @Tags Alert
// @Accept json
// @Produce json
// @Param request body request_models.SOSAlertRequest true "Group, traveler and message"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/sos [post]
func (a *AlertController) Trigger(c *gin.Context) {
	var req request_models.SOSAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "group_id and traveler_id are required")
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}
	travelerID, err := uuid.Parse(req.TravelerID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid traveler ID")
		return
	}

	if err := a.alertService.TriggerSOS(c.Request.Context(), groupID, travelerID, req.Message); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "SOS alert raised")
}

// ListOpen godoc
// @Summary List unresolved alerts for a group
// @Tags Alert
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/group/{groupId} [get]
func (a *AlertController) ListOpen(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	alerts, err := a.alertService.ListOpenAlerts(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, alerts, "Alerts fetched successfully")
}

// Resolve godoc
// @Summary Mark an alert as resolved
// @Tags Alert
// @Param id path string true "Alert ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /alerts/{id}/resolve [put]
func (a *AlertController) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	if err := a.alertService.ResolveAlert(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Alert resolved")
}
