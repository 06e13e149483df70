package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acadexa/testcenter-api/internal/service"
	"github.com/acadexa/testcenter-api/pkg/response"
)

// DashboardHandler manages the day-at-a-glance view.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// DaySchedule godoc
// @Summary Batches scheduled on a weekday
// @Tags Dashboard
// @Produce json
// @Param day query string false "Weekday name, defaults to today"
// @Success 200 {object} response.Envelope
// @Router /dashboard/schedule [get]
func (h *DashboardHandler) DaySchedule(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		day = time.Now().Weekday().String()
	}
	rows, err := h.service.DaySchedule(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil, map[string]interface{}{"day": day})
}
