package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadexa/testcenter-api/internal/repository"
	"github.com/acadexa/testcenter-api/pkg/store"
)

func TestSeedEnsureDemoDataIsIdempotent(t *testing.T) {
	mem := store.NewMemory()
	users := repository.NewUserRepository(mem)
	teachers := repository.NewTeacherRepository(mem)
	courses := repository.NewCourseRepository(mem)
	timeframes := repository.NewTimeframeRepository(mem)
	rooms := repository.NewRoomRepository(mem)

	svc := NewSeedService(mem, users, teachers, courses, timeframes, rooms, nil)
	ctx := context.Background()

	require.NoError(t, svc.EnsureDemoData(ctx))
	require.NoError(t, svc.EnsureDemoData(ctx))

	seededUsers, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, seededUsers, 3)

	seededTeachers, err := teachers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, seededTeachers, 2)

	seededTimeframes, err := timeframes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, seededTimeframes, 3)

	seededRooms, err := rooms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, seededRooms, 2)
}

func TestSeededAdminCanLogIn(t *testing.T) {
	mem := store.NewMemory()
	users := repository.NewUserRepository(mem)
	seed := NewSeedService(mem, users,
		repository.NewTeacherRepository(mem),
		repository.NewCourseRepository(mem),
		repository.NewTimeframeRepository(mem),
		repository.NewRoomRepository(mem), nil)
	require.NoError(t, seed.EnsureDemoData(context.Background()))

	auth := NewAuthService(users, nil, nil, AuthConfig{Secret: "test-secret"})
	resp, err := auth.Login(context.Background(), LoginRequest{
		Username: "admin", Password: "admin123", Role: "admin",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}
