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

type registrationFixture struct {
	service       *RegistrationService
	registrations *repository.RegistrationRepository
	students      *repository.StudentRepository
	slots         *repository.TestSlotRepository
	rooms         *repository.RoomRepository
}

func newRegistrationFixture(t *testing.T) *registrationFixture {
	t.Helper()
	mem := store.NewMemory()
	f := &registrationFixture{
		registrations: repository.NewRegistrationRepository(mem),
		students:      repository.NewStudentRepository(mem),
		slots:         repository.NewTestSlotRepository(mem),
		rooms:         repository.NewRoomRepository(mem),
	}
	f.service = NewRegistrationService(f.registrations, f.students, f.slots, f.rooms, nil, nil, nil)
	return f
}

func (f *registrationFixture) seedSlot(t *testing.T, seats int) models.TestSlot {
	t.Helper()
	slot := models.TestSlot{
		Type:               models.SlotTypePartial,
		Module:             models.ModuleReading,
		Date:               "2026-09-07",
		Time:               "10:00",
		TotalSeats:         seats,
		AvailableSeats:     seats,
		RegisteredStudents: []models.RegisteredStudent{},
	}
	require.NoError(t, f.slots.Insert(context.Background(), &slot))
	return slot
}

func TestRegisterCreatesStudentAndBooksSeat(t *testing.T) {
	f := newRegistrationFixture(t)
	slot := f.seedSlot(t, 2)
	ctx := context.Background()

	reg, err := f.service.Register(ctx, RegisterStudentRequest{
		Name:       "Alice",
		Phone:      "111",
		Email:      "alice@example.com",
		TestSlotID: slot.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.NotEmpty(t, reg.RegistrationDate)

	updated, err := f.slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.AvailableSeats)
	require.Len(t, updated.RegisteredStudents, 1)
	assert.Equal(t, reg.StudentID, updated.RegisteredStudents[0].StudentID)

	students, err := f.students.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "Alice", students[0].Name)
}

func TestRegisterDeduplicatesStudentByPhone(t *testing.T) {
	f := newRegistrationFixture(t)
	first := f.seedSlot(t, 2)
	second := f.seedSlot(t, 2)
	ctx := context.Background()

	regA, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: first.ID,
	})
	require.NoError(t, err)

	// same phone, different name spelling and email, other slot: same student
	regB, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice B", Phone: "111", Email: "alice.b@example.com", TestSlotID: second.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, regA.StudentID, regB.StudentID)

	students, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestRegisterRejectsDuplicateForSameSlot(t *testing.T) {
	f := newRegistrationFixture(t)
	slot := f.seedSlot(t, 5)
	ctx := context.Background()

	_, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: slot.ID,
	})
	require.NoError(t, err)

	_, err = f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: slot.ID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicateRegistration.Code, appErrors.FromError(err).Code)

	updated, err := f.slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.AvailableSeats)
}

func TestRegisterRejectsFullSlot(t *testing.T) {
	f := newRegistrationFixture(t)
	slot := f.seedSlot(t, 1)
	ctx := context.Background()

	_, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: slot.ID,
	})
	require.NoError(t, err)

	_, err = f.service.Register(ctx, RegisterStudentRequest{
		Name: "Bob", Phone: "222", Email: "bob@example.com", TestSlotID: slot.ID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSlotFull.Code, appErrors.FromError(err).Code)
}

func TestRegisterUnknownSlot(t *testing.T) {
	f := newRegistrationFixture(t)
	_, err := f.service.Register(context.Background(), RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: "missing",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRegisterRequiresAllStudentFields(t *testing.T) {
	f := newRegistrationFixture(t)
	slot := f.seedSlot(t, 2)
	ctx := context.Background()

	_, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", TestSlotID: slot.ID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "not-an-address", TestSlotID: slot.ID,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	// nothing was booked or created
	updated, err := f.slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.AvailableSeats)
	students, err := f.students.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestUnregisterReleasesSeat(t *testing.T) {
	f := newRegistrationFixture(t)
	slot := f.seedSlot(t, 1)
	ctx := context.Background()

	reg, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: slot.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Unregister(ctx, reg.ID))

	updated, err := f.slots.FindByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.AvailableSeats)
	assert.Empty(t, updated.RegisteredStudents)

	regs, err := f.registrations.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestUnregisterToleratesDeletedSlot(t *testing.T) {
	f := newRegistrationFixture(t)
	slot := f.seedSlot(t, 1)
	ctx := context.Background()

	reg, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: slot.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.slots.Delete(ctx, slot.ID))
	require.NoError(t, f.service.Unregister(ctx, reg.ID))

	regs, err := f.registrations.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestRegistrationListResolvesViews(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	room := models.Room{Name: "Room 101"}
	require.NoError(t, f.rooms.Insert(ctx, &room))

	slot := models.TestSlot{
		Type:               models.SlotTypePartial,
		Module:             models.ModuleWriting,
		Date:               "2026-09-07",
		Time:               "10:00",
		RoomID:             room.ID,
		TotalSeats:         5,
		AvailableSeats:     5,
		RegisteredStudents: []models.RegisteredStudent{},
	}
	require.NoError(t, f.slots.Insert(ctx, &slot))

	_, err := f.service.Register(ctx, RegisterStudentRequest{
		Name: "Alice", Phone: "111", Email: "alice@example.com", TestSlotID: slot.ID,
	})
	require.NoError(t, err)

	views, err := f.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice", views[0].StudentName)
	assert.Equal(t, "Room 101", views[0].RoomName)
	assert.Equal(t, models.ModuleWriting, views[0].Module)
}

func TestRegistrationListDegradesToNA(t *testing.T) {
	f := newRegistrationFixture(t)
	ctx := context.Background()

	require.NoError(t, f.registrations.Insert(ctx, &models.TestRegistration{
		StudentID:        "ghost-student",
		TestSlotID:       "ghost-slot",
		RegistrationDate: "2026-08-31",
	}))

	views, err := f.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "N/A", views[0].StudentName)
	assert.Equal(t, "N/A", views[0].RoomName)
	assert.Equal(t, "N/A", views[0].Date)
}
