package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourline/internal/services"
	"tourline/pkg/utils"
)

type FlightController struct {
	flightService services.FlightServiceInterface
}

func NewFlightController(flightService services.FlightServiceInterface) *FlightController {
	return &FlightController{
		flightService: flightService,
	}
}

// Status godoc
// @Summary Look up a flight's status
// @Description Returns provider data when configured, otherwise a
// deterministic mock. The mock flag in the payload tells the client which.
// @Tags Flight
// @Produce json
// @Param flightNo path string true "Flight number, e.g. BR198"
// @Param date query string false "Departure date YYYY-MM-DD, defaults to today"
// @Success 200 {object} response_models.FlightStatusResponse
// @Router /flights/{flightNo} [get]
func (f *FlightController) Status(c *gin.Context) {
	flightNo := c.Param("flightNo")
	if flightNo == "" {
		utils.RespondError(c, http.StatusBadRequest, "Flight number is required")
		return
	}

	status, err := f.flightService.GetStatus(c.Request.Context(), flightNo, c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondSuccess(c, status, "Flight status fetched successfully")
}
