package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tourline/internal/models/request_models"
	"tourline/internal/services"
	"tourline/pkg/utils"
)

type LedgerController struct {
	ledgerService services.LedgerServiceInterface
}

func NewLedgerController(ledgerService services.LedgerServiceInterface) *LedgerController {
	return &LedgerController{
		ledgerService: ledgerService,
	}
}

// AddEntry godoc
// @Summary Record an expense
// @Description Amounts are integer minor units to avoid float drift
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body request_models.CreateLedgerEntryRequest true "Expense fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ledger [post]
func (l *LedgerController) AddEntry(c *gin.Context) {
	var req request_models.CreateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "group_id, amount_minor, currency and category are required")
		return
	}

	id, err := l.ledgerService.AddEntry(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Expense recorded")
}

// Summary godoc
// @Summary Get a group's expense entries and per-category totals
// @Tags Ledger
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} response_models.LedgerSummaryResponse
// @Security BearerAuth
// @Router /ledger/group/{groupId} [get]
func (l *LedgerController) Summary(c *gin.Context) {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid group ID")
		return
	}

	summary, err := l.ledgerService.GetSummary(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Ledger fetched successfully")
}

// Delete godoc
// @Summary Delete an expense entry
// @Tags Ledger
// @Param id path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ledger/{id} [delete]
func (l *LedgerController) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	if err := l.ledgerService.DeleteEntry(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entry deleted successfully")
}
