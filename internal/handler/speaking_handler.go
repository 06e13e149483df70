package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadexa/testcenter-api/internal/service"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/response"
)

// SpeakingHandler manages speaking batch endpoints.
type SpeakingHandler struct {
	service *service.SpeakingService
	slots   *service.TestSlotService
}

// NewSpeakingHandler constructs handler.
func NewSpeakingHandler(svc *service.SpeakingService, slots *service.TestSlotService) *SpeakingHandler {
	return &SpeakingHandler{service: svc, slots: slots}
}

// List godoc
// @Summary List speaking batches
// @Tags Speaking
// @Produce json
// @Param purpose query string false "Filter: mock returns only mock-eligible batches"
// @Success 200 {object} response.Envelope
// @Router /speaking-batches [get]
func (h *SpeakingHandler) List(c *gin.Context) {
	if c.Query("purpose") == "mock" {
		summaries, err := h.service.ListMockEligible(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		response.JSON(c, http.StatusOK, summaries, nil)
		return
	}
	summaries, err := h.service.ListBatches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summaries, nil)
}

// AvailableSlots godoc
// @Summary List open slots of a speaking batch
// @Tags Speaking
// @Produce json
// @Param id path string true "Speaking batch ID"
// @Success 200 {object} response.Envelope
// @Router /speaking-batches/{id}/slots [get]
func (h *SpeakingHandler) AvailableSlots(c *gin.Context) {
	slots, err := h.service.ListAvailableSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil)
}

// OpenSlots godoc
// @Summary List every open speaking slot across all batches
// @Tags Speaking
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /speaking-slots [get]
func (h *SpeakingHandler) OpenSlots(c *gin.Context) {
	slots, err := h.service.ListAvailableSlots(c.Request.Context(), "")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil)
}

// SetPurpose godoc
// @Summary Set a speaking batch purpose
// @Tags Speaking
// @Accept json
// @Produce json
// @Param id path string true "Speaking batch ID"
// @Param payload body service.SetPurposeRequest true "Purpose payload"
// @Success 200 {object} response.Envelope
// @Router /speaking-batches/{id}/purpose [put]
func (h *SpeakingHandler) SetPurpose(c *gin.Context) {
	var req service.SetPurposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	summary, err := h.service.SetPurpose(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// Delete godoc
// @Summary Delete a speaking batch and all its slots
// @Tags Speaking
// @Produce json
// @Param id path string true "Speaking batch ID"
// @Success 200 {object} response.Envelope
// @Router /speaking-batches/{id} [delete]
func (h *SpeakingHandler) Delete(c *gin.Context) {
	removed, err := h.slots.DeleteSpeakingBatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"removed": removed}, nil)
}
