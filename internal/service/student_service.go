package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
}

type studentRegistrationRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.TestRegistration, error)
}

// UpdateStudentRequest edits a student profile.
type UpdateStudentRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

// StudentService reads student profiles and their history.
type StudentService struct {
	students      studentRepository
	registrations studentRegistrationRepository
	performance   performanceRepository
	slots         testSlotRepository
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewStudentService instantiates StudentService.
func NewStudentService(students studentRepository, registrations studentRegistrationRepository, performance performanceRepository, slots testSlotRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, registrations: registrations, performance: performance, slots: slots, validator: validate, logger: logger}
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Update edits a student profile.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}
	student := models.Student{ID: id, Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := s.students.Update(ctx, &student); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update student")
	}
	return &student, nil
}

// Detail aggregates a student's profile with their registrations and
// scores. Speaking results stored inline on slot rosters are merged
// with the performance collection.
func (s *StudentService) Detail(ctx context.Context, id string) (*models.StudentDetail, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	regs, err := s.registrations.ListByStudent(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	records, err := s.performance.ListByStudent(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list performance")
	}
	slots, err := s.slots.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}

	slotByID := make(map[string]models.TestSlot, len(slots))
	for _, slot := range slots {
		slotByID[slot.ID] = slot
	}

	detail := models.StudentDetail{
		Student:       *student,
		Registrations: []models.RegistrationView{},
		Performance:   []models.PerformanceView{},
	}

	for _, reg := range regs {
		view := models.RegistrationView{
			ID:               reg.ID,
			StudentName:      student.Name,
			StudentPhone:     student.Phone,
			TestType:         "N/A",
			Date:             "N/A",
			Time:             "N/A",
			RoomName:         "N/A",
			RegistrationDate: reg.RegistrationDate,
		}
		if slot, ok := slotByID[reg.TestSlotID]; ok {
			view.TestType = slot.Type
			view.Module = slot.Module
			view.Date = slot.Date
			view.Time = slot.Time
		}
		detail.Registrations = append(detail.Registrations, view)
	}

	for _, rec := range records {
		view := models.PerformanceView{ID: rec.ID, Date: "N/A", TestType: "N/A", Score: rec.Score}
		if slot, ok := slotByID[rec.TestSlotID]; ok {
			view.Date = slot.Date
			view.TestType = slot.Type
			view.Module = slot.Module
		}
		detail.Performance = append(detail.Performance, view)
	}

	// speaking scores live on the slot roster
	for _, slot := range slots {
		if !slot.IsSpeaking() {
			continue
		}
		idx := slot.RosterIndex(id)
		if idx < 0 || slot.RegisteredStudents[idx].Result == "" {
			continue
		}
		detail.Performance = append(detail.Performance, models.PerformanceView{
			Date:     slot.Date,
			TestType: slot.Type,
			Module:   slot.Module,
			Score:    slot.RegisteredStudents[idx].Result,
		})
	}

	return &detail, nil
}
