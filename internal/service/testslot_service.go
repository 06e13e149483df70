package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/timegrid"
)

type testSlotRepository interface {
	List(ctx context.Context) ([]models.TestSlot, error)
	FindByID(ctx context.Context, id string) (*models.TestSlot, error)
	Insert(ctx context.Context, slot *models.TestSlot) error
	InsertMany(ctx context.Context, slots []models.TestSlot) error
	Update(ctx context.Context, slot *models.TestSlot) error
	SaveAll(ctx context.Context, slots []models.TestSlot) error
	Delete(ctx context.Context, id string) error
	DeleteBatch(ctx context.Context, batchID string) (int, error)
}

// CreatePartialSlotRequest opens a single-module test slot.
type CreatePartialSlotRequest struct {
	Module     string `json:"module" validate:"required,oneof=listening reading writing speaking"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required"`
	RoomID     string `json:"room_id" validate:"required"`
	TeacherID  string `json:"teacher_id" validate:"required"`
	TotalSeats int    `json:"total_seats" validate:"required,min=1"`
}

// CreateSpeakingBatchRequest bulk-opens a full day of speaking slots.
type CreateSpeakingBatchRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// CreateMockTestRequest opens the written (LRW) portion of a mock test
// linked to a speaking batch reserved for mock use. Room and teacher
// stay optional; the speaking portion happens in its own slots.
type CreateMockTestRequest struct {
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string `json:"time" validate:"required"`
	RoomID          string `json:"room_id"`
	TeacherID       string `json:"teacher_id"`
	TotalSeats      int    `json:"total_seats" validate:"required,min=1"`
	SpeakingBatchID string `json:"speaking_batch_id" validate:"required"`
}

// UpdateTestSlotRequest edits slot logistics. Type and module are
// fixed at creation.
type UpdateTestSlotRequest struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required"`
	RoomID     string `json:"room_id"`
	TeacherID  string `json:"teacher_id"`
	TotalSeats int    `json:"total_seats" validate:"required,min=1"`
}

// TestSlotService opens, edits and closes test slots.
type TestSlotService struct {
	repo      testSlotRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTestSlotService instantiates TestSlotService.
func NewTestSlotService(repo testSlotRepository, validate *validator.Validate, logger *zap.Logger) *TestSlotService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TestSlotService{repo: repo, validator: validate, logger: logger}
}

// List returns all test slots.
func (s *TestSlotService) List(ctx context.Context) ([]models.TestSlot, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}
	return slots, nil
}

// Overview groups the slot collection for the management view. Grouped
// speaking slots collapse into one summary per batch; speaking slots
// opened individually stay in the partial list.
func (s *TestSlotService) Overview(ctx context.Context) (*models.TestSlotOverview, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}

	overview := &models.TestSlotOverview{
		MockTests:       []models.TestSlot{},
		SpeakingBatches: []models.SpeakingBatchSummary{},
		PartialSlots:    []models.TestSlot{},
	}
	groups := make(map[string]int)
	for _, slot := range slots {
		switch {
		case slot.Type == models.SlotTypeMock:
			overview.MockTests = append(overview.MockTests, slot)
		case slot.IsSpeaking() && slot.BatchID != "":
			if idx, ok := groups[slot.BatchID]; ok {
				overview.SpeakingBatches[idx].SlotCount++
				continue
			}
			groups[slot.BatchID] = len(overview.SpeakingBatches)
			overview.SpeakingBatches = append(overview.SpeakingBatches, models.SpeakingBatchSummary{
				BatchID:   slot.BatchID,
				Date:      slot.Date,
				SlotCount: 1,
				Purpose:   slot.Purpose,
			})
		default:
			overview.PartialSlots = append(overview.PartialSlots, slot)
		}
	}
	sort.Slice(overview.SpeakingBatches, func(i, j int) bool {
		return overview.SpeakingBatches[i].Date < overview.SpeakingBatches[j].Date
	})

	return overview, nil
}

// Get returns a single test slot by id.
func (s *TestSlotService) Get(ctx context.Context, id string) (*models.TestSlot, error) {
	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "test slot not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test slot")
	}
	return slot, nil
}

// SpeakingTimeOptions returns the valid start ranges for a single
// speaking slot.
func (s *TestSlotService) SpeakingTimeOptions() []string {
	return timegrid.PartialSpeakingTimes()
}

// CreatePartialSlot opens one slot for a single module with the
// requested capacity. Speaking slots must sit on the speaking grid.
func (s *TestSlotService) CreatePartialSlot(ctx context.Context, req CreatePartialSlotRequest) (*models.TestSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid test slot payload")
	}

	if req.Module == models.ModuleSpeaking && !onSpeakingGrid(req.Time) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("time %s is not a valid speaking slot", req.Time))
	}

	slot := models.TestSlot{
		Type:               models.SlotTypePartial,
		Module:             req.Module,
		Date:               req.Date,
		Time:               req.Time,
		RoomID:             req.RoomID,
		TeacherID:          req.TeacherID,
		TotalSeats:         req.TotalSeats,
		AvailableSeats:     req.TotalSeats,
		RegisteredStudents: []models.RegisteredStudent{},
	}
	if err := s.repo.Insert(ctx, &slot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create test slot")
	}
	return &slot, nil
}

// CreateSpeakingBatch bulk-opens the full-day speaking grid for a
// date: one single-seat slot per 20-minute range from 09:00 to 19:00,
// all sharing a fresh batch id with purpose individual. The batch is
// written in one collection update.
func (s *TestSlotService) CreateSpeakingBatch(ctx context.Context, req CreateSpeakingBatchRequest) ([]models.TestSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid speaking batch payload")
	}

	batchID := uuid.NewString()
	ranges := timegrid.DaySlots()
	slots := make([]models.TestSlot, 0, len(ranges))
	for _, timeRange := range ranges {
		slots = append(slots, models.TestSlot{
			Type:               models.SlotTypePartial,
			Module:             models.ModuleSpeaking,
			Date:               req.Date,
			Time:               timeRange,
			BatchID:            batchID,
			Purpose:            models.PurposeIndividual,
			TotalSeats:         1,
			AvailableSeats:     1,
			RegisteredStudents: []models.RegisteredStudent{},
		})
	}
	if err := s.repo.InsertMany(ctx, slots); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create speaking batch")
	}
	s.logger.Info("speaking batch created",
		zap.String("batch_id", batchID),
		zap.String("date", req.Date),
		zap.Int("slots", len(slots)))
	return slots, nil
}

// CreateMockTest opens the written portion of a mock test. The linked
// speaking batch must exist and be reserved for mock use.
func (s *TestSlotService) CreateMockTest(ctx context.Context, req CreateMockTestRequest) (*models.TestSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid mock test payload")
	}

	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}
	eligible := false
	for _, slot := range slots {
		if slot.BatchID == req.SpeakingBatchID && slot.Purpose == models.PurposeMock {
			eligible = true
			break
		}
	}
	if !eligible {
		return nil, appErrors.Clone(appErrors.ErrValidation, "speaking batch not found or not reserved for mock tests")
	}

	slot := models.TestSlot{
		Type:               models.SlotTypeMock,
		Module:             models.ModuleLRW,
		Date:               req.Date,
		Time:               req.Time,
		RoomID:             req.RoomID,
		TeacherID:          req.TeacherID,
		SpeakingBatchID:    req.SpeakingBatchID,
		TotalSeats:         req.TotalSeats,
		AvailableSeats:     req.TotalSeats,
		RegisteredStudents: []models.RegisteredStudent{},
	}
	if err := s.repo.Insert(ctx, &slot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create mock test")
	}
	return &slot, nil
}

// Update edits slot logistics and recomputes availability from the
// current roster. Shrinking capacity below the registered count is
// rejected.
func (s *TestSlotService) Update(ctx context.Context, id string, req UpdateTestSlotRequest) (*models.TestSlot, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid test slot payload")
	}

	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "test slot not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test slot")
	}

	registered := len(slot.RegisteredStudents)
	if req.TotalSeats < registered {
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("cannot reduce seats below %d registered students", registered))
	}

	slot.Date = req.Date
	slot.Time = req.Time
	slot.RoomID = req.RoomID
	slot.TeacherID = req.TeacherID
	slot.TotalSeats = req.TotalSeats
	slot.AvailableSeats = req.TotalSeats - registered

	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update test slot")
	}
	return slot, nil
}

// Delete removes one slot. Registrations pointing at it are left in
// place and tolerated by the unregister path.
func (s *TestSlotService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "test slot not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete test slot")
	}
	return nil
}

// DeleteSpeakingBatch removes every slot of a speaking batch and
// returns how many were dropped.
func (s *TestSlotService) DeleteSpeakingBatch(ctx context.Context, batchID string) (int, error) {
	removed, err := s.repo.DeleteBatch(ctx, batchID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "speaking batch not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete speaking batch")
	}
	return removed, nil
}

func onSpeakingGrid(timeRange string) bool {
	for _, option := range timegrid.PartialSpeakingTimes() {
		if option == timeRange {
			return true
		}
	}
	return false
}
