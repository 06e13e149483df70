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

type performanceRepository interface {
	List(ctx context.Context) ([]models.PerformanceRecord, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.PerformanceRecord, error)
	Upsert(ctx context.Context, record *models.PerformanceRecord) error
	Delete(ctx context.Context, id string) error
}

// RecordResultRequest enters a score for a registered student.
type RecordResultRequest struct {
	StudentID  string `json:"student_id" validate:"required"`
	TestSlotID string `json:"test_slot_id" validate:"required"`
	Score      string `json:"score" validate:"required"`
}

// ResultService is the single entry point for score entry. Speaking
// slots keep the score inline on the roster; every other slot writes
// to the performance collection.
type ResultService struct {
	slots       testSlotRepository
	performance performanceRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewResultService instantiates ResultService.
func NewResultService(slots testSlotRepository, performance performanceRepository, validate *validator.Validate, logger *zap.Logger) *ResultService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{slots: slots, performance: performance, validator: validate, logger: logger}
}

// RecordResult stores a score. Re-entering a score for the same
// (student, slot) pair overwrites the previous value on either path.
func (s *ResultService) RecordResult(ctx context.Context, req RecordResultRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid result payload")
	}

	slot, err := s.slots.FindByID(ctx, req.TestSlotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "test slot not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test slot")
	}

	if slot.IsSpeaking() {
		idx := slot.RosterIndex(req.StudentID)
		if idx < 0 {
			return appErrors.Clone(appErrors.ErrNotFound, "student is not registered for this slot")
		}
		slot.RegisteredStudents[idx].Result = req.Score
		if err := s.slots.Update(ctx, slot); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save speaking result")
		}
		return nil
	}

	record := models.PerformanceRecord{
		StudentID:  req.StudentID,
		TestSlotID: req.TestSlotID,
		Score:      req.Score,
	}
	if err := s.performance.Upsert(ctx, &record); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save result")
	}
	return nil
}

// List returns performance records, optionally filtered by student.
// Inline speaking results are not included here; the student detail
// view merges both paths.
func (s *ResultService) List(ctx context.Context, studentID string) ([]models.PerformanceRecord, error) {
	var (
		records []models.PerformanceRecord
		err     error
	)
	if studentID != "" {
		records, err = s.performance.ListByStudent(ctx, studentID)
	} else {
		records, err = s.performance.List(ctx)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load results")
	}
	if records == nil {
		records = []models.PerformanceRecord{}
	}
	return records, nil
}

// DeleteRecord removes a performance record by id.
func (s *ResultService) DeleteRecord(ctx context.Context, id string) error {
	if err := s.performance.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "performance record not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete result")
	}
	return nil
}
