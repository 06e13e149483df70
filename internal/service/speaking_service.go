package service

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/timegrid"
)

// SetPurposeRequest flips every slot of a speaking batch between
// individual bookings and mock test use.
type SetPurposeRequest struct {
	Purpose string `json:"purpose" validate:"required,oneof=individual mock"`
}

// SpeakingService groups speaking slots into batches and manages
// their purpose.
type SpeakingService struct {
	repo      testSlotRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSpeakingService instantiates SpeakingService.
func NewSpeakingService(repo testSlotRepository, validate *validator.Validate, logger *zap.Logger) *SpeakingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeakingService{repo: repo, validator: validate, logger: logger}
}

// ListBatches derives batch summaries from the stored slots. A batch
// carries the date and purpose of its slots; counts include booked
// slots.
func (s *SpeakingService) ListBatches(ctx context.Context) ([]models.SpeakingBatchSummary, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}

	byBatch := make(map[string]*models.SpeakingBatchSummary)
	var order []string
	for _, slot := range slots {
		if slot.BatchID == "" || !slot.IsSpeaking() {
			continue
		}
		summary, ok := byBatch[slot.BatchID]
		if !ok {
			summary = &models.SpeakingBatchSummary{BatchID: slot.BatchID, Date: slot.Date, Purpose: slot.Purpose}
			byBatch[slot.BatchID] = summary
			order = append(order, slot.BatchID)
		}
		summary.SlotCount++
	}

	summaries := make([]models.SpeakingBatchSummary, 0, len(order))
	for _, id := range order {
		summaries = append(summaries, *byBatch[id])
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].Date < summaries[j].Date })
	return summaries, nil
}

// ListMockEligible returns the batches reserved for mock tests.
func (s *SpeakingService) ListMockEligible(ctx context.Context) ([]models.SpeakingBatchSummary, error) {
	summaries, err := s.ListBatches(ctx)
	if err != nil {
		return nil, err
	}
	eligible := summaries[:0]
	for _, summary := range summaries {
		if summary.Purpose == models.PurposeMock {
			eligible = append(eligible, summary)
		}
	}
	return eligible, nil
}

// ListAvailableSlots returns open speaking slots sorted by date and
// start time. Scoped to one batch when batchID is set, failing if the
// batch is unknown. With an empty batchID it spans every speaking
// slot, including ones opened singly that carry no batch id.
func (s *SpeakingService) ListAvailableSlots(ctx context.Context, batchID string) ([]models.TestSlot, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}

	found := batchID == ""
	var open []models.TestSlot
	for _, slot := range slots {
		if batchID != "" {
			if slot.BatchID != batchID {
				continue
			}
			found = true
		} else if !slot.IsSpeaking() {
			continue
		}
		if slot.AvailableSeats > 0 {
			open = append(open, slot)
		}
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "speaking batch not found")
	}

	sort.SliceStable(open, func(i, j int) bool {
		if open[i].Date != open[j].Date {
			return open[i].Date < open[j].Date
		}
		a, errA := timegrid.StartMinutes(open[i].Time)
		b, errB := timegrid.StartMinutes(open[j].Time)
		if errA != nil || errB != nil {
			return open[i].Time < open[j].Time
		}
		return a < b
	})
	return open, nil
}

// SetPurpose rewrites the purpose of every slot in the batch in a
// single collection update, so a reader never sees a half-flipped
// batch. Flipping back to individual leaves any linked mock tests in
// place.
func (s *SpeakingService) SetPurpose(ctx context.Context, batchID string, req SetPurposeRequest) (*models.SpeakingBatchSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid purpose payload")
	}

	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list test slots")
	}

	summary := models.SpeakingBatchSummary{BatchID: batchID, Purpose: req.Purpose}
	for i := range slots {
		if slots[i].BatchID != batchID {
			continue
		}
		slots[i].Purpose = req.Purpose
		summary.Date = slots[i].Date
		summary.SlotCount++
	}
	if summary.SlotCount == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "speaking batch not found")
	}

	if err := s.repo.SaveAll(ctx, slots); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update speaking batch")
	}
	s.logger.Info("speaking batch purpose updated",
		zap.String("batch_id", batchID),
		zap.String("purpose", req.Purpose))
	return &summary, nil
}
