package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/timegrid"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	Insert(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
}

type courseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Insert(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type timeframeRepository interface {
	List(ctx context.Context) ([]models.Timeframe, error)
	Insert(ctx context.Context, tf *models.Timeframe) error
	Delete(ctx context.Context, id string) error
}

type roomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
	Insert(ctx context.Context, room *models.Room) error
	Delete(ctx context.Context, id string) error
}

// SaveTeacherRequest creates or updates a teacher profile.
type SaveTeacherRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// SaveCourseRequest creates or updates a course.
type SaveCourseRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CreateTimeframeRequest adds a reusable class timeframe.
type CreateTimeframeRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// CreateRoomRequest adds a room.
type CreateRoomRequest struct {
	Name string `json:"name" validate:"required"`
}

// CatalogService manages the reference entities batches are built
// from: teachers, courses, timeframes and rooms. Deletes never
// cascade; batches referencing a removed entity keep the dangling id.
type CatalogService struct {
	teachers   teacherRepository
	courses    courseRepository
	timeframes timeframeRepository
	rooms      roomRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewCatalogService instantiates CatalogService.
func NewCatalogService(teachers teacherRepository, courses courseRepository, timeframes timeframeRepository, rooms roomRepository, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{teachers: teachers, courses: courses, timeframes: timeframes, rooms: rooms, validator: validate, logger: logger}
}

func (s *CatalogService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

func (s *CatalogService) CreateTeacher(ctx context.Context, req SaveTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher := models.Teacher{Name: req.Name, Phone: req.Phone}
	if err := s.teachers.Insert(ctx, &teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create teacher")
	}
	return &teacher, nil
}

func (s *CatalogService) UpdateTeacher(ctx context.Context, id string, req SaveTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}
	teacher := models.Teacher{ID: id, Name: req.Name, Phone: req.Phone}
	if err := s.teachers.Update(ctx, &teacher); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update teacher")
	}
	return &teacher, nil
}

func (s *CatalogService) DeleteTeacher(ctx context.Context, id string) error {
	if err := s.teachers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete teacher")
	}
	return nil
}

func (s *CatalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

func (s *CatalogService) CreateCourse(ctx context.Context, req SaveCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course := models.Course{Name: req.Name, Description: req.Description}
	if err := s.courses.Insert(ctx, &course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return &course, nil
}

func (s *CatalogService) UpdateCourse(ctx context.Context, id string, req SaveCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course := models.Course{ID: id, Name: req.Name, Description: req.Description}
	if err := s.courses.Update(ctx, &course); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	return &course, nil
}

func (s *CatalogService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

func (s *CatalogService) ListTimeframes(ctx context.Context) ([]models.Timeframe, error) {
	timeframes, err := s.timeframes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timeframes")
	}
	return timeframes, nil
}

func (s *CatalogService) CreateTimeframe(ctx context.Context, req CreateTimeframeRequest) (*models.Timeframe, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timeframe payload")
	}
	start, err := timegrid.ToMinutes(req.Start)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "start time must be HH:MM")
	}
	end, err := timegrid.ToMinutes(req.End)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end time must be HH:MM")
	}
	if end <= start {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end time must be after start time")
	}
	tf := models.Timeframe{Start: req.Start, End: req.End}
	if err := s.timeframes.Insert(ctx, &tf); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create timeframe")
	}
	return &tf, nil
}

func (s *CatalogService) DeleteTimeframe(ctx context.Context, id string) error {
	if err := s.timeframes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "timeframe not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete timeframe")
	}
	return nil
}

func (s *CatalogService) ListRooms(ctx context.Context) ([]models.Room, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	return rooms, nil
}

func (s *CatalogService) CreateRoom(ctx context.Context, req CreateRoomRequest) (*models.Room, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid room payload")
	}
	room := models.Room{Name: req.Name}
	if err := s.rooms.Insert(ctx, &room); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create room")
	}
	return &room, nil
}

func (s *CatalogService) DeleteRoom(ctx context.Context, id string) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "room not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete room")
	}
	return nil
}
