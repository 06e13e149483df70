package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/timegrid"
)

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type dashboardTimeframeRepository interface {
	List(ctx context.Context) ([]models.Timeframe, error)
}

type dashboardCourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
}

// DashboardService renders the day-at-a-glance schedule. Reads go
// through an optional Redis cache with a short TTL; writers never
// invalidate, staleness is bounded by the TTL.
type DashboardService struct {
	batches    batchRepository
	timeframes dashboardTimeframeRepository
	courses    dashboardCourseRepository
	rooms      registrationRoomRepository
	teachers   batchTeacherRepository
	cache      dashboardCache
	metrics    *MetricsService
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewDashboardService instantiates DashboardService. A nil cache
// disables caching.
func NewDashboardService(batches batchRepository, timeframes dashboardTimeframeRepository, courses dashboardCourseRepository, rooms registrationRoomRepository, teachers batchTeacherRepository, cache dashboardCache, metrics *MetricsService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &DashboardService{
		batches:    batches,
		timeframes: timeframes,
		courses:    courses,
		rooms:      rooms,
		teachers:   teachers,
		cache:      cache,
		metrics:    metrics,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// DaySchedule lists the batches meeting on the given weekday, sorted
// by start time. Broken references render as "N/A".
func (s *DashboardService) DaySchedule(ctx context.Context, day string) ([]models.DashboardRow, error) {
	day = normalizeWeekday(day)
	if day == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "day must be a weekday name")
	}

	cacheKey := "dashboard:schedule:" + day
	if s.cache != nil {
		var cached []models.DashboardRow
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			if s.metrics != nil {
				s.metrics.RecordCacheLookup(true)
			}
			return cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.RecordCacheLookup(false)
		}
	}

	rows, err := s.buildDaySchedule(ctx, day)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, rows, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return rows, nil
}

func (s *DashboardService) buildDaySchedule(ctx context.Context, day string) ([]models.DashboardRow, error) {
	batches, err := s.batches.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batches")
	}
	timeframes, err := s.timeframes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timeframes")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}

	tfByID := make(map[string]models.Timeframe, len(timeframes))
	for _, tf := range timeframes {
		tfByID[tf.ID] = tf
	}
	courseName := make(map[string]string, len(courses))
	for _, c := range courses {
		courseName[c.ID] = c.Name
	}
	roomName := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomName[r.ID] = r.Name
	}
	teacherName := make(map[string]string, len(teachers))
	for _, t := range teachers {
		teacherName[t.ID] = t.Name
	}

	type sortableRow struct {
		row   models.DashboardRow
		start int
	}
	var sortable []sortableRow
	for _, batch := range batches {
		if len(batch.SharesDay([]string{day})) == 0 {
			continue
		}
		row := models.DashboardRow{
			BatchID:     batch.ID,
			BatchNumber: batch.BatchNumber,
			TimeDisplay: "N/A",
			CourseName:  "N/A",
			RoomName:    "N/A",
			IsActive:    batch.IsActive,
		}
		start := 24 * 60 // unresolved timeframes sort last
		if tf, ok := tfByID[batch.TimeframeID]; ok {
			row.TimeDisplay = timegrid.ToDisplay(tf.Start) + " - " + timegrid.ToDisplay(tf.End)
			if minutes, err := timegrid.ToMinutes(tf.Start); err == nil {
				start = minutes
			}
		}
		if name, ok := courseName[batch.CourseID]; ok {
			row.CourseName = name
		}
		if name, ok := roomName[batch.RoomID]; ok {
			row.RoomName = name
		}
		var names []string
		for _, id := range batch.TeacherIDs {
			if name, ok := teacherName[id]; ok {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			row.Teachers = "N/A"
		} else {
			row.Teachers = strings.Join(names, ", ")
		}
		sortable = append(sortable, sortableRow{row: row, start: start})
	}

	sort.SliceStable(sortable, func(i, j int) bool { return sortable[i].start < sortable[j].start })

	rows := make([]models.DashboardRow, 0, len(sortable))
	for _, item := range sortable {
		rows = append(rows, item.row)
	}
	return rows, nil
}

func normalizeWeekday(day string) string {
	for _, name := range models.Weekdays {
		if strings.EqualFold(name, day) {
			return name
		}
	}
	return ""
}
