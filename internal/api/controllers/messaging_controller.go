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

type MessagingController struct {
	messagingService services.MessagingServiceInterface
}

func NewMessagingController(messagingService services.MessagingServiceInterface) *MessagingController {
	return &MessagingController{
		messagingService: messagingService,
	}
}

// Push godoc
// @Summary Send a text message to one LINE user
// @Description The channel token stays server-side; clients never talk to the
// provider directly.
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body request_models.PushMessageRequest true "Recipient and text"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /messaging/push [post]
func (m *MessagingController) Push(c *gin.Context) {
	var req request_models.PushMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "to and text are required")
		return
	}

	if err := m.messagingService.PushToOne(c.Request.Context(), req.To, req.Text); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Message sent")
}

// Multicast godoc
// @Summary Send messages to a list of LINE users
// @Description Recipients are deduplicated; an empty list is a successful
// no-op with a zero count.
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body request_models.MulticastRequest true "Recipients and message blocks"
// @Success 200 {object} response_models.MulticastResponse
// @Security BearerAuth
// @Router /messaging/multicast [post]
func (m *MessagingController) Multicast(c *gin.Context) {
	var req request_models.MulticastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "to and messages are required")
		return
	}

	sent, err := m.messagingService.Multicast(c.Request.Context(), req.To, req.Messages)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.MulticastResponse{Sent: sent}, "Multicast sent")
}

// Broadcast godoc
// @Summary Send a text message to every bound traveler in a group
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body request_models.BroadcastRequest true "Group and text"
// @Success 200 {object} response_models.MulticastResponse
// @Security BearerAuth
// @Router /messaging/broadcast [post]
func (m *MessagingController) Broadcast(c *gin.Context) {
	var req request_models.BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "group_id and text are required")
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	sent, err := m.messagingService.Broadcast(c.Request.Context(), groupID, req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.MulticastResponse{Sent: sent}, "Broadcast sent")
}

// Bind godoc
// @Summary Bind a LINE user to a traveler
// @Description Called from the LIFF flow: the traveler supplies their display
// name and the group's join code. Public endpoint.
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body request_models.BindIdentityRequest true "Display name, join code, LINE user id"
// @Success 200 {object} utils.APIResponse
// @Router /messaging/bind [post]
func (m *MessagingController) Bind(c *gin.Context) {
	var req request_models.BindIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "display_name, join_code and line_user_id are required")
		return
	}

	if err := m.messagingService.BindIdentity(c.Request.Context(), req.DisplayName, req.JoinCode, req.LineUserID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Identity bound successfully")
}
