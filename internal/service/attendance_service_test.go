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

func newAttendanceFixture(t *testing.T) (*AttendanceService, string) {
	t.Helper()
	mem := store.NewMemory()
	attendance := repository.NewAttendanceRepository(mem)
	students := repository.NewStudentRepository(mem)
	batches := repository.NewBatchRepository(mem)

	ctx := context.Background()
	batch := models.Batch{CourseID: "c1", TimeframeID: "tf1", RoomID: "r1", BatchNumber: "B-01", Days: []string{"Monday"}, TeacherIDs: []string{"t1"}, IsActive: true}
	require.NoError(t, batches.Insert(ctx, &batch))
	require.NoError(t, students.Insert(ctx, &models.Student{Name: "Alice", Phone: "111"}))
	require.NoError(t, students.Insert(ctx, &models.Student{Name: "Bob", Phone: "222"}))

	return NewAttendanceService(attendance, students, batches, nil, nil), batch.ID
}

func TestAttendanceSheetListsAllStudents(t *testing.T) {
	svc, batchID := newAttendanceFixture(t)
	ctx := context.Background()

	entries, err := svc.Sheet(ctx, batchID, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[0].Status)
	assert.Empty(t, entries[1].Status)
}

func TestAttendanceMarkAndRemark(t *testing.T) {
	svc, batchID := newAttendanceFixture(t)
	ctx := context.Background()

	entries, err := svc.Sheet(ctx, batchID, "2026-08-31")
	require.NoError(t, err)
	alice := entries[0].StudentID

	_, err = svc.Mark(ctx, MarkAttendanceRequest{
		StudentID: alice, BatchID: batchID, Date: "2026-08-31", Status: models.StatusPresent,
	})
	require.NoError(t, err)

	// re-marking flips the status in place
	_, err = svc.Mark(ctx, MarkAttendanceRequest{
		StudentID: alice, BatchID: batchID, Date: "2026-08-31", Status: models.StatusAbsent,
	})
	require.NoError(t, err)

	entries, err = svc.Sheet(ctx, batchID, "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAbsent, entries[0].Status)
	assert.Empty(t, entries[1].Status)

	// another day starts blank
	entries, err = svc.Sheet(ctx, batchID, "2026-09-01")
	require.NoError(t, err)
	assert.Empty(t, entries[0].Status)
}

func TestAttendanceMarkUnknownBatch(t *testing.T) {
	svc, _ := newAttendanceFixture(t)
	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		StudentID: "s1", BatchID: "missing", Date: "2026-08-31", Status: models.StatusPresent,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestAttendanceMarkRejectsBadStatus(t *testing.T) {
	svc, batchID := newAttendanceFixture(t)
	_, err := svc.Mark(context.Background(), MarkAttendanceRequest{
		StudentID: "s1", BatchID: batchID, Date: "2026-08-31", Status: "late",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
