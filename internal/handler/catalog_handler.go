package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadexa/testcenter-api/internal/service"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/response"
)

// CatalogHandler manages teacher, course, timeframe and room endpoints.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListTeachers godoc
// @Summary List teachers
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /teachers [get]
func (h *CatalogHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.service.ListTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers, nil)
}

// CreateTeacher godoc
// @Summary Create teacher
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.SaveTeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Router /teachers [post]
func (h *CatalogHandler) CreateTeacher(c *gin.Context) {
	var req service.SaveTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, err := h.service.CreateTeacher(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher)
}

// UpdateTeacher godoc
// @Summary Update teacher
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Param payload body service.SaveTeacherRequest true "Teacher payload"
// @Success 200 {object} response.Envelope
// @Router /teachers/{id} [put]
func (h *CatalogHandler) UpdateTeacher(c *gin.Context) {
	var req service.SaveTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, err := h.service.UpdateTeacher(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher, nil)
}

// DeleteTeacher godoc
// @Summary Delete teacher
// @Tags Catalog
// @Param id path string true "Teacher ID"
// @Success 204
// @Router /teachers/{id} [delete]
func (h *CatalogHandler) DeleteTeacher(c *gin.Context) {
	if err := h.service.DeleteTeacher(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListCourses godoc
// @Summary List courses
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	courses, err := h.service.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// CreateCourse godoc
// @Summary Create course
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.SaveCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /courses [post]
func (h *CatalogHandler) CreateCourse(c *gin.Context) {
	var req service.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.service.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// UpdateCourse godoc
// @Summary Update course
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body service.SaveCourseRequest true "Course payload"
// @Success 200 {object} response.Envelope
// @Router /courses/{id} [put]
func (h *CatalogHandler) UpdateCourse(c *gin.Context) {
	var req service.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.service.UpdateCourse(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}

// DeleteCourse godoc
// @Summary Delete course
// @Tags Catalog
// @Param id path string true "Course ID"
// @Success 204
// @Router /courses/{id} [delete]
func (h *CatalogHandler) DeleteCourse(c *gin.Context) {
	if err := h.service.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListTimeframes godoc
// @Summary List timeframes
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timeframes [get]
func (h *CatalogHandler) ListTimeframes(c *gin.Context) {
	timeframes, err := h.service.ListTimeframes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, timeframes, nil)
}

// CreateTimeframe godoc
// @Summary Create timeframe
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CreateTimeframeRequest true "Timeframe payload"
// @Success 201 {object} response.Envelope
// @Router /timeframes [post]
func (h *CatalogHandler) CreateTimeframe(c *gin.Context) {
	var req service.CreateTimeframeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	tf, err := h.service.CreateTimeframe(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tf)
}

// DeleteTimeframe godoc
// @Summary Delete timeframe
// @Tags Catalog
// @Param id path string true "Timeframe ID"
// @Success 204
// @Router /timeframes/{id} [delete]
func (h *CatalogHandler) DeleteTimeframe(c *gin.Context) {
	if err := h.service.DeleteTimeframe(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListRooms godoc
// @Summary List rooms
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// CreateRoom godoc
// @Summary Create room
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CreateRoomRequest true "Room payload"
// @Success 201 {object} response.Envelope
// @Router /rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room)
}

// DeleteRoom godoc
// @Summary Delete room
// @Tags Catalog
// @Param id path string true "Room ID"
// @Success 204
// @Router /rooms/{id} [delete]
func (h *CatalogHandler) DeleteRoom(c *gin.Context) {
	if err := h.service.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
