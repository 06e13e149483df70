package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/internal/repository"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/store"
)

type stubCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	hits    int
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string][]byte{}}
}

func (c *stubCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	payload, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(payload, dest)
}

func (c *stubCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = payload
	return nil
}

type dashboardFixture struct {
	service    *DashboardService
	batches    *repository.BatchRepository
	timeframes *repository.TimeframeRepository
	cache      *stubCache
}

func newDashboardFixture(t *testing.T, cache *stubCache) *dashboardFixture {
	t.Helper()
	mem := store.NewMemory()
	f := &dashboardFixture{
		batches:    repository.NewBatchRepository(mem),
		timeframes: repository.NewTimeframeRepository(mem),
		cache:      cache,
	}
	courses := repository.NewCourseRepository(mem)
	rooms := repository.NewRoomRepository(mem)
	teachers := repository.NewTeacherRepository(mem)

	ctx := context.Background()
	course := models.Course{Name: "IELTS Preparation"}
	require.NoError(t, courses.Insert(ctx, &course))
	room := models.Room{Name: "Room 101"}
	require.NoError(t, rooms.Insert(ctx, &room))
	teacher := models.Teacher{Name: "John Doe", Phone: "123"}
	require.NoError(t, teachers.Insert(ctx, &teacher))

	early := models.Timeframe{Start: "09:00", End: "10:30"}
	require.NoError(t, f.timeframes.Insert(ctx, &early))
	late := models.Timeframe{Start: "14:00", End: "15:30"}
	require.NoError(t, f.timeframes.Insert(ctx, &late))

	// inserted late-first to prove sorting by start time
	require.NoError(t, f.batches.Insert(ctx, &models.Batch{
		CourseID: course.ID, TimeframeID: late.ID, RoomID: room.ID,
		BatchNumber: "B-02", Days: []string{"Monday"}, TeacherIDs: []string{teacher.ID}, IsActive: true,
	}))
	require.NoError(t, f.batches.Insert(ctx, &models.Batch{
		CourseID: course.ID, TimeframeID: early.ID, RoomID: room.ID,
		BatchNumber: "B-01", Days: []string{"Monday", "Wednesday"}, TeacherIDs: []string{teacher.ID}, IsActive: true,
	}))

	var cacheIface dashboardCache
	if cache != nil {
		cacheIface = cache
	}
	f.service = NewDashboardService(f.batches, f.timeframes, courses, rooms, teachers, cacheIface, nil, time.Minute, nil)
	return f
}

func TestDashboardDayScheduleSortedByStart(t *testing.T) {
	f := newDashboardFixture(t, nil)

	rows, err := f.service.DaySchedule(context.Background(), "Monday")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "B-01", rows[0].BatchNumber)
	assert.Equal(t, "B-02", rows[1].BatchNumber)
	assert.Equal(t, "9:00 AM - 10:30 AM", rows[0].TimeDisplay)
	assert.Equal(t, "IELTS Preparation", rows[0].CourseName)
	assert.Equal(t, "Room 101", rows[0].RoomName)
	assert.Equal(t, "John Doe", rows[0].Teachers)
}

func TestDashboardDayScheduleFiltersByDay(t *testing.T) {
	f := newDashboardFixture(t, nil)

	rows, err := f.service.DaySchedule(context.Background(), "Wednesday")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B-01", rows[0].BatchNumber)

	rows, err = f.service.DaySchedule(context.Background(), "Sunday")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDashboardDayScheduleRejectsBadDay(t *testing.T) {
	f := newDashboardFixture(t, nil)
	_, err := f.service.DaySchedule(context.Background(), "2026-08-31")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDashboardDayScheduleUsesCache(t *testing.T) {
	cache := newStubCache()
	f := newDashboardFixture(t, cache)
	ctx := context.Background()

	first, err := f.service.DaySchedule(ctx, "Monday")
	require.NoError(t, err)
	second, err := f.service.DaySchedule(ctx, "monday")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.hits)
}

func TestDashboardDanglingReferencesDegradeToNA(t *testing.T) {
	mem := store.NewMemory()
	batches := repository.NewBatchRepository(mem)
	timeframes := repository.NewTimeframeRepository(mem)
	courses := repository.NewCourseRepository(mem)
	rooms := repository.NewRoomRepository(mem)
	teachers := repository.NewTeacherRepository(mem)

	ctx := context.Background()
	require.NoError(t, batches.Insert(ctx, &models.Batch{
		CourseID: "ghost", TimeframeID: "ghost", RoomID: "ghost",
		BatchNumber: "B-01", Days: []string{"Monday"}, TeacherIDs: []string{"ghost"}, IsActive: true,
	}))

	svc := NewDashboardService(batches, timeframes, courses, rooms, teachers, nil, nil, time.Minute, nil)
	rows, err := svc.DaySchedule(ctx, "Monday")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].TimeDisplay)
	assert.Equal(t, "N/A", rows[0].CourseName)
	assert.Equal(t, "N/A", rows[0].RoomName)
	assert.Equal(t, "N/A", rows[0].Teachers)
}
