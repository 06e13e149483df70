package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acadexa/testcenter-api/internal/service"
	"github.com/acadexa/testcenter-api/pkg/response"
)

// ExportHandler serves downloadable exports.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// RegistrationsCSV godoc
// @Summary Download the registration ledger as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {file} file
// @Router /exports/registrations.csv [get]
func (h *ExportHandler) RegistrationsCSV(c *gin.Context) {
	payload, err := h.service.RegistrationsCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="registrations.csv"`)
	c.Data(http.StatusOK, "text/csv", payload)
}

// SchedulePDF godoc
// @Summary Download a weekday schedule as PDF
// @Tags Exports
// @Produce application/pdf
// @Param day query string false "Weekday name, defaults to today"
// @Success 200 {file} file
// @Router /exports/schedule.pdf [get]
func (h *ExportHandler) SchedulePDF(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		day = time.Now().Weekday().String()
	}
	payload, err := h.service.DaySchedulePDF(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="schedule.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
