package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
)

type registrationRepository interface {
	List(ctx context.Context) ([]models.TestRegistration, error)
	FindByID(ctx context.Context, id string) (*models.TestRegistration, error)
	Exists(ctx context.Context, studentID, slotID string) (bool, error)
	Insert(ctx context.Context, reg *models.TestRegistration) error
	Delete(ctx context.Context, id string) error
}

type registrationStudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByPhoneOrEmail(ctx context.Context, phone, email string) (*models.Student, error)
	Insert(ctx context.Context, student *models.Student) error
}

type registrationRoomRepository interface {
	List(ctx context.Context) ([]models.Room, error)
}

// RegisterStudentRequest books a student into a test slot, creating
// the student record on first contact.
type RegisterStudentRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	TestSlotID string `json:"test_slot_id" validate:"required"`
}

// RegistrationService owns the registration ledger and seat
// accounting.
type RegistrationService struct {
	registrations registrationRepository
	students      registrationStudentRepository
	slots         testSlotRepository
	rooms         registrationRoomRepository
	metrics       *MetricsService
	validator     *validator.Validate
	logger        *zap.Logger
	now           func() time.Time
}

// NewRegistrationService instantiates RegistrationService.
func NewRegistrationService(registrations registrationRepository, students registrationStudentRepository, slots testSlotRepository, rooms registrationRoomRepository, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{
		registrations: registrations,
		students:      students,
		slots:         slots,
		rooms:         rooms,
		metrics:       metrics,
		validator:     validate,
		logger:        logger,
		now:           time.Now,
	}
}

// Register books a seat. The student is matched by phone or email and
// created when unknown. A full slot or an existing registration for
// the same (student, slot) pair rejects the booking; the slot roster
// and seat count move together with the ledger entry.
func (s *RegistrationService) Register(ctx context.Context, req RegisterStudentRequest) (*models.TestRegistration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	slot, err := s.slots.FindByID(ctx, req.TestSlotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "test slot not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test slot")
	}
	if slot.AvailableSeats <= 0 {
		return nil, appErrors.Clone(appErrors.ErrSlotFull, "")
	}

	student, err := s.students.FindByPhoneOrEmail(ctx, req.Phone, req.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to look up student")
		}
		student = &models.Student{Name: req.Name, Phone: req.Phone, Email: req.Email}
		if err := s.students.Insert(ctx, student); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create student")
		}
	}

	exists, err := s.registrations.Exists(ctx, student.ID, slot.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check registration")
	}
	if exists || slot.RosterIndex(student.ID) >= 0 {
		return nil, appErrors.Clone(appErrors.ErrDuplicateRegistration, "")
	}

	slot.AvailableSeats--
	slot.RegisteredStudents = append(slot.RegisteredStudents, models.RegisteredStudent{StudentID: student.ID})
	if err := s.slots.Update(ctx, slot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to book seat")
	}

	reg := models.TestRegistration{
		StudentID:        student.ID,
		TestSlotID:       slot.ID,
		RegistrationDate: s.now().Format("2006-01-02"),
	}
	if err := s.registrations.Insert(ctx, &reg); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record registration")
	}
	if s.metrics != nil {
		s.metrics.RecordRegistration()
	}
	s.logger.Info("student registered",
		zap.String("student_id", student.ID),
		zap.String("test_slot_id", slot.ID))
	return &reg, nil
}

// Unregister removes a ledger entry and releases the seat. A slot that
// was deleted in the meantime is tolerated; the ledger entry still
// goes away.
func (s *RegistrationService) Unregister(ctx context.Context, registrationID string) error {
	reg, err := s.registrations.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "registration not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load registration")
	}

	slot, err := s.slots.FindByID(ctx, reg.TestSlotID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test slot")
	}
	if slot != nil {
		if idx := slot.RosterIndex(reg.StudentID); idx >= 0 {
			slot.RegisteredStudents = append(slot.RegisteredStudents[:idx], slot.RegisteredStudents[idx+1:]...)
		}
		if slot.AvailableSeats < slot.TotalSeats {
			slot.AvailableSeats++
		}
		if err := s.slots.Update(ctx, slot); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to release seat")
		}
	}

	if err := s.registrations.Delete(ctx, registrationID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete registration")
	}
	return nil
}

// List resolves the ledger into display rows. Registrations pointing
// at deleted students or slots degrade to "N/A" fields rather than
// disappearing.
func (s *RegistrationService) List(ctx context.Context) ([]models.RegistrationView, error) {
	regs, err := s.registrations.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list registrations")
	}
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	slots, err := s.slots.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	roomName := make(map[string]string, len(rooms))
	for _, room := range rooms {
		roomName[room.ID] = room.Name
	}

	studentByID := make(map[string]models.Student, len(students))
	for _, st := range students {
		studentByID[st.ID] = st
	}
	slotByID := make(map[string]models.TestSlot, len(slots))
	for _, slot := range slots {
		slotByID[slot.ID] = slot
	}

	views := make([]models.RegistrationView, 0, len(regs))
	for _, reg := range regs {
		view := models.RegistrationView{
			ID:               reg.ID,
			StudentName:      "N/A",
			StudentPhone:     "N/A",
			TestType:         "N/A",
			Date:             "N/A",
			Time:             "N/A",
			RoomName:         "N/A",
			RegistrationDate: reg.RegistrationDate,
		}
		if st, ok := studentByID[reg.StudentID]; ok {
			view.StudentName = st.Name
			view.StudentPhone = st.Phone
		}
		if slot, ok := slotByID[reg.TestSlotID]; ok {
			view.TestType = slot.Type
			view.Module = slot.Module
			view.Date = slot.Date
			view.Time = slot.Time
			if name, ok := roomName[slot.RoomID]; ok {
				view.RoomName = name
			}
		}
		views = append(views, view)
	}
	return views, nil
}
