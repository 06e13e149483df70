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

func newResultFixture(t *testing.T) (*ResultService, *repository.TestSlotRepository, *repository.PerformanceRepository) {
	t.Helper()
	mem := store.NewMemory()
	slots := repository.NewTestSlotRepository(mem)
	performance := repository.NewPerformanceRepository(mem)
	return NewResultService(slots, performance, nil, nil), slots, performance
}

func TestRecordResultSpeakingStoresInline(t *testing.T) {
	svc, slots, performance := newResultFixture(t)
	ctx := context.Background()

	slot := models.TestSlot{
		Type:               models.SlotTypePartial,
		Module:             models.ModuleSpeaking,
		Date:               "2026-09-07",
		Time:               "09:00-09:20",
		TotalSeats:         1,
		AvailableSeats:     0,
		RegisteredStudents: []models.RegisteredStudent{{StudentID: "s1"}},
	}
	require.NoError(t, slots.Insert(ctx, &slot))

	require.NoError(t, svc.RecordResult(ctx, RecordResultRequest{
		StudentID:  "s1",
		TestSlotID: slot.ID,
		Score:      "7.5",
	}))

	updated, err := slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, "7.5", updated.RegisteredStudents[0].Result)

	records, err := performance.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordResultNonSpeakingUsesLedger(t *testing.T) {
	svc, slots, performance := newResultFixture(t)
	ctx := context.Background()

	slot := models.TestSlot{
		Type:               models.SlotTypeMock,
		Module:             models.ModuleLRW,
		Date:               "2026-09-07",
		Time:               "10:00",
		TotalSeats:         20,
		AvailableSeats:     19,
		RegisteredStudents: []models.RegisteredStudent{{StudentID: "s1"}},
	}
	require.NoError(t, slots.Insert(ctx, &slot))

	require.NoError(t, svc.RecordResult(ctx, RecordResultRequest{
		StudentID:  "s1",
		TestSlotID: slot.ID,
		Score:      "6.0",
	}))

	records, err := performance.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "6.0", records[0].Score)

	// re-entering overwrites
	require.NoError(t, svc.RecordResult(ctx, RecordResultRequest{
		StudentID:  "s1",
		TestSlotID: slot.ID,
		Score:      "6.5",
	}))
	records, err = performance.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "6.5", records[0].Score)
}

func TestRecordResultSpeakingRequiresRosterEntry(t *testing.T) {
	svc, slots, _ := newResultFixture(t)
	ctx := context.Background()

	slot := models.TestSlot{
		Type:               models.SlotTypePartial,
		Module:             models.ModuleSpeaking,
		Date:               "2026-09-07",
		Time:               "09:00-09:20",
		TotalSeats:         1,
		AvailableSeats:     1,
		RegisteredStudents: []models.RegisteredStudent{},
	}
	require.NoError(t, slots.Insert(ctx, &slot))

	err := svc.RecordResult(ctx, RecordResultRequest{
		StudentID:  "s1",
		TestSlotID: slot.ID,
		Score:      "7.0",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestResultListFiltersByStudent(t *testing.T) {
	svc, slots, _ := newResultFixture(t)
	ctx := context.Background()

	slot := models.TestSlot{
		Type:           models.SlotTypeMock,
		Module:         models.ModuleLRW,
		Date:           "2026-09-07",
		Time:           "10:00",
		TotalSeats:     20,
		AvailableSeats: 18,
		RegisteredStudents: []models.RegisteredStudent{
			{StudentID: "s1"}, {StudentID: "s2"},
		},
	}
	require.NoError(t, slots.Insert(ctx, &slot))

	require.NoError(t, svc.RecordResult(ctx, RecordResultRequest{StudentID: "s1", TestSlotID: slot.ID, Score: "6.0"}))
	require.NoError(t, svc.RecordResult(ctx, RecordResultRequest{StudentID: "s2", TestSlotID: slot.ID, Score: "7.0"}))

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "7.0", mine[0].Score)
}

func TestDeleteRecord(t *testing.T) {
	svc, slots, performance := newResultFixture(t)
	ctx := context.Background()

	slot := models.TestSlot{
		Type:               models.SlotTypeMock,
		Module:             models.ModuleLRW,
		Date:               "2026-09-07",
		Time:               "10:00",
		TotalSeats:         20,
		AvailableSeats:     19,
		RegisteredStudents: []models.RegisteredStudent{{StudentID: "s1"}},
	}
	require.NoError(t, slots.Insert(ctx, &slot))
	require.NoError(t, svc.RecordResult(ctx, RecordResultRequest{StudentID: "s1", TestSlotID: slot.ID, Score: "6.0"}))

	records, err := performance.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	require.NoError(t, svc.DeleteRecord(ctx, records[0].ID))

	records, err = performance.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	err = svc.DeleteRecord(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
