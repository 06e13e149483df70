package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadexa/testcenter-api/internal/service"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/response"
)

// TestSlotHandler manages test slot endpoints.
type TestSlotHandler struct {
	service *service.TestSlotService
}

// NewTestSlotHandler constructs handler.
func NewTestSlotHandler(svc *service.TestSlotService) *TestSlotHandler {
	return &TestSlotHandler{service: svc}
}

// List godoc
// @Summary List test slots
// @Tags TestSlots
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /test-slots [get]
func (h *TestSlotHandler) List(c *gin.Context) {
	slots, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots, nil)
}

// Overview godoc
// @Summary Test slots grouped into mock tests, speaking batches and partial slots
// @Tags TestSlots
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /test-slots/overview [get]
func (h *TestSlotHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// Get godoc
// @Summary Get test slot
// @Tags TestSlots
// @Produce json
// @Param id path string true "Test slot ID"
// @Success 200 {object} response.Envelope
// @Router /test-slots/{id} [get]
func (h *TestSlotHandler) Get(c *gin.Context) {
	slot, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// SpeakingTimeOptions godoc
// @Summary Valid single speaking slot times
// @Tags TestSlots
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /test-slots/speaking-times [get]
func (h *TestSlotHandler) SpeakingTimeOptions(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.SpeakingTimeOptions(), nil)
}

// CreatePartial godoc
// @Summary Open a single-module test slot
// @Tags TestSlots
// @Accept json
// @Produce json
// @Param payload body service.CreatePartialSlotRequest true "Slot payload"
// @Success 201 {object} response.Envelope
// @Router /test-slots/partial [post]
func (h *TestSlotHandler) CreatePartial(c *gin.Context) {
	var req service.CreatePartialSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slot, err := h.service.CreatePartialSlot(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, slot)
}

// CreateSpeakingBatch godoc
// @Summary Open a full-day speaking batch
// @Tags TestSlots
// @Accept json
// @Produce json
// @Param payload body service.CreateSpeakingBatchRequest true "Batch payload"
// @Success 201 {object} response.Envelope
// @Router /test-slots/speaking-batches [post]
func (h *TestSlotHandler) CreateSpeakingBatch(c *gin.Context) {
	var req service.CreateSpeakingBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slots, err := h.service.CreateSpeakingBatch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, slots)
}

// CreateMock godoc
// @Summary Open a mock test
// @Tags TestSlots
// @Accept json
// @Produce json
// @Param payload body service.CreateMockTestRequest true "Mock test payload"
// @Success 201 {object} response.Envelope
// @Router /test-slots/mock [post]
func (h *TestSlotHandler) CreateMock(c *gin.Context) {
	var req service.CreateMockTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slot, err := h.service.CreateMockTest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, slot)
}

// Update godoc
// @Summary Update test slot
// @Tags TestSlots
// @Accept json
// @Produce json
// @Param id path string true "Test slot ID"
// @Param payload body service.UpdateTestSlotRequest true "Slot payload"
// @Success 200 {object} response.Envelope
// @Router /test-slots/{id} [put]
func (h *TestSlotHandler) Update(c *gin.Context) {
	var req service.UpdateTestSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	slot, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// Delete godoc
// @Summary Delete test slot
// @Tags TestSlots
// @Param id path string true "Test slot ID"
// @Success 204
// @Router /test-slots/{id} [delete]
func (h *TestSlotHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
