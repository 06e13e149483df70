package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

func TestTeacherRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewTeacherRepository(store.NewMemory())

	teacher := &models.Teacher{Name: "John Doe", Phone: "123-456-7890"}
	require.NoError(t, repo.Insert(ctx, teacher))
	assert.NotEmpty(t, teacher.ID)

	found, err := repo.FindByID(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", found.Name)

	teacher.Phone = "987-654-3210"
	require.NoError(t, repo.Update(ctx, teacher))
	found, err = repo.FindByID(ctx, teacher.ID)
	require.NoError(t, err)
	assert.Equal(t, "987-654-3210", found.Phone)

	require.NoError(t, repo.Delete(ctx, teacher.ID))
	_, err = repo.FindByID(ctx, teacher.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTeacherRepositoryDeleteMissing(t *testing.T) {
	repo := NewTeacherRepository(store.NewMemory())
	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStudentRepositoryFindByPhoneOrEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewStudentRepository(store.NewMemory())

	first := &models.Student{Name: "Alice", Phone: "111", Email: "alice@example.com"}
	second := &models.Student{Name: "Bob", Phone: "222", Email: "bob@example.com"}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	found, err := repo.FindByPhoneOrEmail(ctx, "222", "")
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.Name)

	found, err = repo.FindByPhoneOrEmail(ctx, "", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	// first match in insertion order wins when both fields could hit
	found, err = repo.FindByPhoneOrEmail(ctx, "111", "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.Name)

	_, err = repo.FindByPhoneOrEmail(ctx, "333", "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryFindByUsernameAndRole(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(store.NewMemory())

	require.NoError(t, repo.Insert(ctx, &models.User{Username: "admin", Role: models.RoleAdmin}))

	found, err := repo.FindByUsernameAndRole(ctx, "admin", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin", found.Username)

	_, err = repo.FindByUsernameAndRole(ctx, "admin", models.RoleTeacher)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTestSlotRepositoryDeleteBatch(t *testing.T) {
	ctx := context.Background()
	repo := NewTestSlotRepository(store.NewMemory())

	slots := []models.TestSlot{
		{Type: models.SlotTypePartial, Module: models.ModuleSpeaking, BatchID: "sb-1", Date: "2026-09-01"},
		{Type: models.SlotTypePartial, Module: models.ModuleSpeaking, BatchID: "sb-1", Date: "2026-09-01"},
		{Type: models.SlotTypePartial, Module: models.ModuleReading, Date: "2026-09-01"},
	}
	require.NoError(t, repo.InsertMany(ctx, slots))

	removed, err := repo.DeleteBatch(ctx, "sb-1")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, models.ModuleReading, remaining[0].Module)

	_, err = repo.DeleteBatch(ctx, "sb-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttendanceRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(store.NewMemory())

	rec := &models.AttendanceRecord{StudentID: "s1", BatchID: "b1", Date: "2026-09-01", Status: models.StatusPresent}
	require.NoError(t, repo.Upsert(ctx, rec))
	firstID := rec.ID

	flip := &models.AttendanceRecord{StudentID: "s1", BatchID: "b1", Date: "2026-09-01", Status: models.StatusAbsent}
	require.NoError(t, repo.Upsert(ctx, flip))
	assert.Equal(t, firstID, flip.ID)

	records, err := repo.ListByBatchAndDate(ctx, "b1", "2026-09-01")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StatusAbsent, records[0].Status)
}

func TestPerformanceRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewPerformanceRepository(store.NewMemory())

	rec := &models.PerformanceRecord{StudentID: "s1", TestSlotID: "slot1", Score: "6.5"}
	require.NoError(t, repo.Upsert(ctx, rec))

	again := &models.PerformanceRecord{StudentID: "s1", TestSlotID: "slot1", Score: "7.0"}
	require.NoError(t, repo.Upsert(ctx, again))

	records, err := repo.ListByStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "7.0", records[0].Score)
}

func TestRegistrationRepositoryExists(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationRepository(store.NewMemory())

	require.NoError(t, repo.Insert(ctx, &models.TestRegistration{StudentID: "s1", TestSlotID: "slot1", RegistrationDate: "2026-08-31"}))

	ok, err := repo.Exists(ctx, "s1", "slot1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, "s1", "slot2")
	require.NoError(t, err)
	assert.False(t, ok)
}
