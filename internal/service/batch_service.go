package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/timegrid"
)

type batchRepository interface {
	List(ctx context.Context) ([]models.Batch, error)
	FindByID(ctx context.Context, id string) (*models.Batch, error)
	Insert(ctx context.Context, batch *models.Batch) error
	Update(ctx context.Context, batch *models.Batch) error
	Delete(ctx context.Context, id string) error
}

type batchTimeframeRepository interface {
	FindByID(ctx context.Context, id string) (*models.Timeframe, error)
}

type batchRoomRepository interface {
	FindByID(ctx context.Context, id string) (*models.Room, error)
}

type batchTeacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
}

// CreateBatchRequest describes payload for creating a batch.
type CreateBatchRequest struct {
	CourseID    string   `json:"course_id" validate:"required"`
	TimeframeID string   `json:"timeframe_id" validate:"required"`
	RoomID      string   `json:"room_id" validate:"required"`
	BatchNumber string   `json:"batch_number" validate:"required"`
	Days        []string `json:"days" validate:"required,min=1,dive,required"`
	TeacherIDs  []string `json:"teacher_ids" validate:"required,min=1,dive,required"`
}

// UpdateBatchRequest updates an existing batch.
type UpdateBatchRequest struct {
	CourseID    string   `json:"course_id" validate:"required"`
	TimeframeID string   `json:"timeframe_id" validate:"required"`
	RoomID      string   `json:"room_id" validate:"required"`
	BatchNumber string   `json:"batch_number" validate:"required"`
	Days        []string `json:"days" validate:"required,min=1,dive,required"`
	TeacherIDs  []string `json:"teacher_ids" validate:"required,min=1,dive,required"`
	IsActive    bool     `json:"is_active"`
}

// CheckBatchConflictsRequest is the dry-run detector payload. The
// exclude id lets an edit form re-check without colliding with itself.
type CheckBatchConflictsRequest struct {
	TimeframeID    string   `json:"timeframe_id" validate:"required"`
	RoomID         string   `json:"room_id" validate:"required"`
	Days           []string `json:"days" validate:"required,min=1,dive,required"`
	TeacherIDs     []string `json:"teacher_ids" validate:"required,min=1,dive,required"`
	ExcludeBatchID string   `json:"exclude_batch_id"`
}

// BatchService coordinates batch scheduling and conflict detection.
type BatchService struct {
	repo       batchRepository
	timeframes batchTimeframeRepository
	rooms      batchRoomRepository
	teachers   batchTeacherRepository
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewBatchService instantiates BatchService.
func NewBatchService(repo batchRepository, timeframes batchTimeframeRepository, rooms batchRoomRepository, teachers batchTeacherRepository, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *BatchService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchService{repo: repo, timeframes: timeframes, rooms: rooms, teachers: teachers, metrics: metrics, validator: validate, logger: logger}
}

// List returns all batches.
func (s *BatchService) List(ctx context.Context) ([]models.Batch, error) {
	batches, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batches")
	}
	return batches, nil
}

// Get returns a single batch by id.
func (s *BatchService) Get(ctx context.Context, id string) (*models.Batch, error) {
	batch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch")
	}
	return batch, nil
}

// Create inserts a new batch after conflict detection. Any conflict is
// a hard stop; nothing is written.
func (s *BatchService) Create(ctx context.Context, req CreateBatchRequest) (*models.Batch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch payload")
	}

	batch := models.Batch{
		CourseID:    req.CourseID,
		TimeframeID: req.TimeframeID,
		RoomID:      req.RoomID,
		BatchNumber: req.BatchNumber,
		Days:        req.Days,
		TeacherIDs:  req.TeacherIDs,
		IsActive:    true,
	}

	if err := s.ensureNoConflict(ctx, batch, ""); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, &batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create batch")
	}
	return &batch, nil
}

// Update modifies an existing batch, re-running conflict detection
// against every other batch.
func (s *BatchService) Update(ctx context.Context, id string, req UpdateBatchRequest) (*models.Batch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid batch payload")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load batch")
	}

	updated := models.Batch{
		ID:          existing.ID,
		CourseID:    req.CourseID,
		TimeframeID: req.TimeframeID,
		RoomID:      req.RoomID,
		BatchNumber: req.BatchNumber,
		Days:        req.Days,
		TeacherIDs:  req.TeacherIDs,
		IsActive:    req.IsActive,
	}

	if err := s.ensureNoConflict(ctx, updated, existing.ID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &updated); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update batch")
	}
	return &updated, nil
}

// Delete removes a batch.
func (s *BatchService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "batch not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete batch")
	}
	return nil
}

// Check runs the conflict detector without writing anything.
func (s *BatchService) Check(ctx context.Context, req CheckBatchConflictsRequest) (*models.ConflictCheckResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid conflict check payload")
	}

	candidate := models.Batch{
		TimeframeID: req.TimeframeID,
		RoomID:      req.RoomID,
		Days:        req.Days,
		TeacherIDs:  req.TeacherIDs,
	}
	conflicts, err := s.detectConflicts(ctx, candidate, req.ExcludeBatchID)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordConflictCheck(len(conflicts) > 0)
	}
	return &models.ConflictCheckResult{Conflicts: conflicts, HasConflicts: len(conflicts) > 0}, nil
}

func (s *BatchService) ensureNoConflict(ctx context.Context, batch models.Batch, ignoreID string) error {
	conflicts, err := s.detectConflicts(ctx, batch, ignoreID)
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.RecordConflictCheck(len(conflicts) > 0)
	}
	if len(conflicts) > 0 {
		s.logger.Info("batch conflicts detected", zap.Int("count", len(conflicts)))
		domainErr := &models.BatchConflictError{Conflicts: conflicts}
		return appErrors.Wrap(domainErr, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "batch schedule conflicts detected")
	}
	return nil
}

// detectConflicts compares the candidate against every other batch on
// shared weekdays. A candidate whose timeframe cannot be resolved or
// parsed is treated as conflict-free; same for existing batches with
// broken timeframe references.
func (s *BatchService) detectConflicts(ctx context.Context, candidate models.Batch, ignoreID string) ([]string, error) {
	tf, err := s.timeframes.FindByID(ctx, candidate.TimeframeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timeframe")
	}
	start, errStart := timegrid.ToMinutes(tf.Start)
	end, errEnd := timegrid.ToMinutes(tf.End)
	if errStart != nil || errEnd != nil {
		return nil, nil
	}

	batches, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check batch conflicts")
	}

	teacherNames, err := s.teacherNameIndex(ctx)
	if err != nil {
		return nil, err
	}

	var conflicts []string
	for _, other := range batches {
		if other.ID == ignoreID {
			continue
		}
		sharedDays := other.SharesDay(candidate.Days)
		if len(sharedDays) == 0 {
			continue
		}

		otherTf, err := s.timeframes.FindByID(ctx, other.TimeframeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timeframe")
		}
		otherStart, errStart := timegrid.ToMinutes(otherTf.Start)
		otherEnd, errEnd := timegrid.ToMinutes(otherTf.End)
		if errStart != nil || errEnd != nil {
			continue
		}
		if !timegrid.Overlaps(start, end, otherStart, otherEnd) {
			continue
		}

		dayList := strings.Join(sharedDays, ", ")
		fromDisplay := timegrid.ToDisplay(otherTf.Start)
		toDisplay := timegrid.ToDisplay(otherTf.End)

		if other.RoomID == candidate.RoomID {
			conflicts = append(conflicts, fmt.Sprintf(
				"Conflict: Room %s is occupied by Batch %s on %s from %s to %s.",
				s.roomName(ctx, other.RoomID), other.BatchNumber, dayList, fromDisplay, toDisplay))
		}

		var shared []string
		for _, teacherID := range candidate.TeacherIDs {
			if other.HasTeacher(teacherID) {
				name := teacherNames[teacherID]
				if name == "" {
					name = teacherID
				}
				shared = append(shared, name)
			}
		}
		if len(shared) > 0 {
			conflicts = append(conflicts, fmt.Sprintf(
				"Conflict: Teacher(s) %s are assigned to Batch %s on %s from %s to %s.",
				strings.Join(shared, ", "), other.BatchNumber, dayList, fromDisplay, toDisplay))
		}
	}
	return conflicts, nil
}

func (s *BatchService) teacherNameIndex(ctx context.Context) (map[string]string, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	names := make(map[string]string, len(teachers))
	for _, t := range teachers {
		names[t.ID] = t.Name
	}
	return names, nil
}

func (s *BatchService) roomName(ctx context.Context, id string) string {
	room, err := s.rooms.FindByID(ctx, id)
	if err != nil {
		return id
	}
	return room.Name
}
