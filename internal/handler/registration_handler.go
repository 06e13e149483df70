package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadexa/testcenter-api/internal/service"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/response"
)

// RegistrationHandler manages registration ledger endpoints.
type RegistrationHandler struct {
	service *service.RegistrationService
}

// NewRegistrationHandler constructs handler.
func NewRegistrationHandler(svc *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: svc}
}

// List godoc
// @Summary List registrations
// @Tags Registrations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /registrations [get]
func (h *RegistrationHandler) List(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// Register godoc
// @Summary Register a student into a test slot
// @Tags Registrations
// @Accept json
// @Produce json
// @Param payload body service.RegisterStudentRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /registrations [post]
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req service.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	reg, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reg)
}

// Unregister godoc
// @Summary Cancel a registration
// @Tags Registrations
// @Param id path string true "Registration ID"
// @Success 204
// @Router /registrations/{id} [delete]
func (h *RegistrationHandler) Unregister(c *gin.Context) {
	if err := h.service.Unregister(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
