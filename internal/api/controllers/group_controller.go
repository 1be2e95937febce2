package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dbm "tourline/internal/models/db_models"
	"tourline/internal/models/request_models"
	"tourline/internal/models/response_models"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

type GroupController struct {
	groupService services.GroupServiceInterface
}

func NewGroupController(groupService services.GroupServiceInterface) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// CreateGroup godoc
// @Summary Create a tour group
// @Tags Group
// @Accept json
// @Produce json
// @Param request body request_models.CreateGroupRequest true "Group details"
// @Success 200 {object} response_models.GroupResponse
// @Security BearerAuth
// @Router /groups [post]
func (g *GroupController) CreateGroup(c *gin.Context) {
	var req request_models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Group name is required")
		return
	}

	leaderID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	group, err := g.groupService.CreateGroup(c.Request.Context(), leaderID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, buildGroupResponse(group), "Group created successfully")
}

// UpdateGroup godoc
// @Summary Update a tour group
// @Tags Group
// @Accept json
// @Produce json
// @Param groupId path string true "Group ID"
// @Param request body request_models.UpdateGroupRequest true "Fields to update"
// @Success 200 {object} response_models.GroupResponse
// @Security BearerAuth
// @Router /groups/{groupId} [put]
func (g *GroupController) UpdateGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	var req request_models.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	group, err := g.groupService.UpdateGroup(c.Request.Context(), groupID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, buildGroupResponse(group), "Group updated successfully")
}

// GetGroup godoc
// @Summary Get one group
// @Tags Group
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} response_models.GroupResponse
// @Security BearerAuth
// @Router /groups/{groupId} [get]
func (g *GroupController) GetGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	group, err := g.groupService.GetGroup(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, buildGroupResponse(group), "Group fetched successfully")
}

// ListGroups godoc
// @Summary List the caller's groups
// @Tags Group
// @Produce json
// @Success 200 {array} response_models.GroupResponse
// @Security BearerAuth
// @Router /groups [get]
func (g *GroupController) ListGroups(c *gin.Context) {
	leaderID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return
	}

	groups, err := g.groupService.ListGroups(c.Request.Context(), leaderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out := make([]response_models.GroupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, *buildGroupResponse(&groups[i]))
	}
	utils.RespondSuccess(c, out, "Groups fetched successfully")
}

// DeleteGroup godoc
// @Summary Delete a group
// @Tags Group
// @Param groupId path string true "Group ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups/{groupId} [delete]
func (g *GroupController) DeleteGroup(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	if err := g.groupService.DeleteGroup(c.Request.Context(), groupID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Group deleted successfully")
}

func buildGroupResponse(group *dbm.Group) *response_models.GroupResponse {
	return &response_models.GroupResponse{
		ID:        group.ID.String(),
		Name:      group.Name,
		JoinCode:  group.JoinCode,
		StartDate: utils.FormatRFC3339TW(utils.FromUnixSecondsTW(group.StartDate)),
		EndDate:   utils.FormatRFC3339TW(utils.FromUnixSecondsTW(group.EndDate)),
		Notes:     group.Notes,
	}
}
