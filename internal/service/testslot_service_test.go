package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/store"
)

func newTestSlotService(t *testing.T) (*TestSlotService, *repository.TestSlotRepository) {
	t.Helper()
	repo := repository.NewTestSlotRepository(store.NewMemory())
	return NewTestSlotService(repo, nil, nil), repo
}

func TestCreateSpeakingBatchGeneratesFullDay(t *testing.T) {
	svc, _ := newTestSlotService(t)

	slots, err := svc.CreateSpeakingBatch(context.Background(), CreateSpeakingBatchRequest{Date: "2026-09-07"})
	require.NoError(t, err)
	require.Len(t, slots, 30)

	batchID := slots[0].BatchID
	assert.NotEmpty(t, batchID)
	assert.Equal(t, "09:00-09:20", slots[0].Time)
	assert.Equal(t, "18:40-19:00", slots[len(slots)-1].Time)
	for _, slot := range slots {
		assert.Equal(t, batchID, slot.BatchID)
		assert.Equal(t, models.PurposeIndividual, slot.Purpose)
		assert.Equal(t, models.ModuleSpeaking, slot.Module)
		assert.Equal(t, 1, slot.TotalSeats)
		assert.Equal(t, 1, slot.AvailableSeats)
		assert.NotEmpty(t, slot.ID)
	}
}

func TestCreatePartialSpeakingSlotMustSitOnGrid(t *testing.T) {
	svc, _ := newTestSlotService(t)
	ctx := context.Background()

	_, err := svc.CreatePartialSlot(ctx, CreatePartialSlotRequest{
		Module:     models.ModuleSpeaking,
		Date:       "2026-09-07",
		Time:       "13:40-14:00", // inside the break window
		RoomID:     "room-1",
		TeacherID:  "teacher-1",
		TotalSeats: 5,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	// the requested capacity is honored as entered
	slot, err := svc.CreatePartialSlot(ctx, CreatePartialSlotRequest{
		Module:     models.ModuleSpeaking,
		Date:       "2026-09-07",
		Time:       "09:00-09:20",
		RoomID:     "room-1",
		TeacherID:  "teacher-1",
		TotalSeats: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, slot.TotalSeats)
	assert.Equal(t, 5, slot.AvailableSeats)
}

func TestCreatePartialSlotNonSpeakingKeepsSeats(t *testing.T) {
	svc, _ := newTestSlotService(t)

	slot, err := svc.CreatePartialSlot(context.Background(), CreatePartialSlotRequest{
		Module:     models.ModuleListening,
		Date:       "2026-09-07",
		Time:       "10:00",
		RoomID:     "room-1",
		TeacherID:  "teacher-1",
		TotalSeats: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SlotTypePartial, slot.Type)
	assert.Equal(t, 25, slot.TotalSeats)
	assert.Equal(t, 25, slot.AvailableSeats)
}

func TestCreatePartialSlotRequiresRoomAndTeacher(t *testing.T) {
	svc, _ := newTestSlotService(t)
	ctx := context.Background()

	_, err := svc.CreatePartialSlot(ctx, CreatePartialSlotRequest{
		Module:     models.ModuleListening,
		Date:       "2026-09-07",
		Time:       "10:00",
		TeacherID:  "teacher-1",
		TotalSeats: 10,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.CreatePartialSlot(ctx, CreatePartialSlotRequest{
		Module:     models.ModuleListening,
		Date:       "2026-09-07",
		Time:       "10:00",
		RoomID:     "room-1",
		TotalSeats: 10,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCreateMockTestRequiresMockSpeakingBatch(t *testing.T) {
	svc, repo := newTestSlotService(t)
	ctx := context.Background()

	slots, err := svc.CreateSpeakingBatch(ctx, CreateSpeakingBatchRequest{Date: "2026-09-07"})
	require.NoError(t, err)
	batchID := slots[0].BatchID

	// batch still has purpose individual
	_, err = svc.CreateMockTest(ctx, CreateMockTestRequest{
		Date:            "2026-09-07",
		Time:            "10:00",
		RoomID:          "room-1",
		TotalSeats:      20,
		SpeakingBatchID: batchID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	speaking := NewSpeakingService(repo, nil, nil)
	_, err = speaking.SetPurpose(ctx, batchID, SetPurposeRequest{Purpose: models.PurposeMock})
	require.NoError(t, err)

	mock, err := svc.CreateMockTest(ctx, CreateMockTestRequest{
		Date:            "2026-09-07",
		Time:            "10:00",
		RoomID:          "room-1",
		TotalSeats:      20,
		SpeakingBatchID: batchID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.SlotTypeMock, mock.Type)
	assert.Equal(t, models.ModuleLRW, mock.Module)
	assert.Equal(t, batchID, mock.SpeakingBatchID)
}

func TestCreateMockTestWithoutRoom(t *testing.T) {
	svc, repo := newTestSlotService(t)
	ctx := context.Background()

	slots, err := svc.CreateSpeakingBatch(ctx, CreateSpeakingBatchRequest{Date: "2026-09-07"})
	require.NoError(t, err)
	batchID := slots[0].BatchID

	speaking := NewSpeakingService(repo, nil, nil)
	_, err = speaking.SetPurpose(ctx, batchID, SetPurposeRequest{Purpose: models.PurposeMock})
	require.NoError(t, err)

	// the written portion books no room of its own
	mock, err := svc.CreateMockTest(ctx, CreateMockTestRequest{
		Date:            "2026-09-07",
		Time:            "10:00",
		TotalSeats:      20,
		SpeakingBatchID: batchID,
	})
	require.NoError(t, err)
	assert.Empty(t, mock.RoomID)
	assert.Equal(t, 20, mock.AvailableSeats)
}

func TestUpdateSlotRecomputesAvailability(t *testing.T) {
	svc, repo := newTestSlotService(t)
	ctx := context.Background()

	slot := models.TestSlot{
		Type:           models.SlotTypePartial,
		Module:         models.ModuleReading,
		Date:           "2026-09-07",
		Time:           "10:00",
		TotalSeats:     10,
		AvailableSeats: 8,
		RegisteredStudents: []models.RegisteredStudent{
			{StudentID: "s1"}, {StudentID: "s2"},
		},
	}
	require.NoError(t, repo.Insert(ctx, &slot))

	updated, err := svc.Update(ctx, slot.ID, UpdateTestSlotRequest{
		Date:       "2026-09-08",
		Time:       "11:00",
		TotalSeats: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.TotalSeats)
	assert.Equal(t, 3, updated.AvailableSeats)
	assert.Equal(t, "2026-09-08", updated.Date)
}

func TestUpdateSlotRejectsShrinkBelowRegistered(t *testing.T) {
	svc, repo := newTestSlotService(t)
	ctx := context.Background()

	slot := models.TestSlot{
		Type:           models.SlotTypePartial,
		Module:         models.ModuleReading,
		Date:           "2026-09-07",
		Time:           "10:00",
		TotalSeats:     10,
		AvailableSeats: 7,
		RegisteredStudents: []models.RegisteredStudent{
			{StudentID: "s1"}, {StudentID: "s2"}, {StudentID: "s3"},
		},
	}
	require.NoError(t, repo.Insert(ctx, &slot))

	_, err := svc.Update(ctx, slot.ID, UpdateTestSlotRequest{
		Date:       "2026-09-07",
		Time:       "10:00",
		TotalSeats: 2,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestDeleteSpeakingBatchRemovesAllSlots(t *testing.T) {
	svc, repo := newTestSlotService(t)
	ctx := context.Background()

	slots, err := svc.CreateSpeakingBatch(ctx, CreateSpeakingBatchRequest{Date: "2026-09-07"})
	require.NoError(t, err)

	removed, err := svc.DeleteSpeakingBatch(ctx, slots[0].BatchID)
	require.NoError(t, err)
	assert.Equal(t, 30, removed)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestOverviewGroupsSlotKinds(t *testing.T) {
	svc, repo := newTestSlotService(t)
	ctx := context.Background()

	batch, err := svc.CreateSpeakingBatch(ctx, CreateSpeakingBatchRequest{Date: "2026-09-08"})
	require.NoError(t, err)

	_, err = svc.CreatePartialSlot(ctx, CreatePartialSlotRequest{
		Module:     models.ModuleReading,
		Date:       "2026-09-07",
		Time:       "10:00",
		RoomID:     "room-1",
		TeacherID:  "teacher-1",
		TotalSeats: 20,
	})
	require.NoError(t, err)

	// a speaking slot opened on its own stays in the partial list
	_, err = svc.CreatePartialSlot(ctx, CreatePartialSlotRequest{
		Module:     models.ModuleSpeaking,
		Date:       "2026-09-07",
		Time:       "09:00-09:20",
		RoomID:     "room-1",
		TeacherID:  "teacher-1",
		TotalSeats: 1,
	})
	require.NoError(t, err)

	mock := models.TestSlot{
		Type:            models.SlotTypeMock,
		Module:          models.ModuleLRW,
		Date:            "2026-09-09",
		Time:            "10:00",
		SpeakingBatchID: batch[0].BatchID,
		TotalSeats:      20,
		AvailableSeats:  20,
	}
	require.NoError(t, repo.Insert(ctx, &mock))

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)

	require.Len(t, overview.MockTests, 1)
	assert.Equal(t, mock.ID, overview.MockTests[0].ID)

	require.Len(t, overview.SpeakingBatches, 1)
	assert.Equal(t, batch[0].BatchID, overview.SpeakingBatches[0].BatchID)
	assert.Equal(t, 30, overview.SpeakingBatches[0].SlotCount)
	assert.Equal(t, models.PurposeIndividual, overview.SpeakingBatches[0].Purpose)

	assert.Len(t, overview.PartialSlots, 2)
}

func TestDeleteSlotNotFound(t *testing.T) {
	svc, _ := newTestSlotService(t)
	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
