package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadexa/testcenter-api/internal/service"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/response"
)

// ResultHandler manages score entry endpoints.
type ResultHandler struct {
	service *service.ResultService
}

// NewResultHandler constructs handler.
func NewResultHandler(svc *service.ResultService) *ResultHandler {
	return &ResultHandler{service: svc}
}

// Record godoc
// @Summary Record a test result
// @Tags Results
// @Accept json
// @Produce json
// @Param payload body service.RecordResultRequest true "Result payload"
// @Success 200 {object} response.Envelope
// @Router /results [post]
func (h *ResultHandler) Record(c *gin.Context) {
	var req service.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.RecordResult(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"saved": true}, nil)
}

// List godoc
// @Summary List performance records
// @Tags Results
// @Produce json
// @Param student_id query string false "Filter by student"
// @Success 200 {object} response.Envelope
// @Router /results [get]
func (h *ResultHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context(), c.Query("student_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Delete godoc
// @Summary Delete a performance record
// @Tags Results
// @Produce json
// @Param id path string true "Record ID"
// @Success 204
// @Router /results/{id} [delete]
func (h *ResultHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteRecord(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
