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

type attendanceRepository interface {
	ListByBatchAndDate(ctx context.Context, batchID, date string) ([]models.AttendanceRecord, error)
	Upsert(ctx context.Context, record *models.AttendanceRecord) error
}

// MarkAttendanceRequest records one student's status for a batch day.
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	BatchID   string `json:"batch_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent"`
}

// AttendanceService manages per-batch daily attendance sheets.
type AttendanceService struct {
	attendance attendanceRepository
	students   registrationStudentRepository
	batches    batchRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewAttendanceService instantiates AttendanceService.
func NewAttendanceService(attendance attendanceRepository, students registrationStudentRepository, batches batchRepository, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{attendance: attendance, students: students, batches: batches, validator: validate, logger: logger}
}

// Sheet builds the attendance sheet for a batch and date: one row per
// known student, status left empty until marked.
func (s *AttendanceService) Sheet(ctx context.Context, batchID, date string) ([]models.AttendanceEntry, error) {
	if _, err := s.batches.FindByID(ctx, batchID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch")
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	records, err := s.attendance.ListByBatchAndDate(ctx, batchID, date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}

	statusByStudent := make(map[string]string, len(records))
	for _, rec := range records {
		statusByStudent[rec.StudentID] = rec.Status
	}

	entries := make([]models.AttendanceEntry, 0, len(students))
	for _, st := range students {
		entries = append(entries, models.AttendanceEntry{
			StudentID:   st.ID,
			StudentName: st.Name,
			Status:      statusByStudent[st.ID],
		})
	}
	return entries, nil
}

// Mark writes one attendance status, replacing any earlier mark for
// the same (student, batch, date) triple.
func (s *AttendanceService) Mark(ctx context.Context, req MarkAttendanceRequest) (*models.AttendanceRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}

	if _, err := s.batches.FindByID(ctx, req.BatchID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch")
	}

	record := models.AttendanceRecord{
		StudentID: req.StudentID,
		BatchID:   req.BatchID,
		Date:      req.Date,
		Status:    req.Status,
	}
	if err := s.attendance.Upsert(ctx, &record); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save attendance")
	}
	return &record, nil
}
