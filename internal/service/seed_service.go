package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/acadexa/testcenter-api/internal/models"
	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/store"
)

type seedUserRepository interface {
	Insert(ctx context.Context, user *models.User) error
}

// SeedService populates a fresh store with demo data once, guarded by
// an init flag in the store itself so restarts are idempotent.
type SeedService struct {
	store      store.Store
	users      seedUserRepository
	teachers   teacherRepository
	courses    courseRepository
	timeframes timeframeRepository
	rooms      roomRepository
	logger     *zap.Logger
}

// NewSeedService instantiates SeedService.
func NewSeedService(s store.Store, users seedUserRepository, teachers teacherRepository, courses courseRepository, timeframes timeframeRepository, rooms roomRepository, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{store: s, users: users, teachers: teachers, courses: courses, timeframes: timeframes, rooms: rooms, logger: logger}
}

// EnsureDemoData seeds default accounts and catalog entries when the
// store has never been initialized.
func (s *SeedService) EnsureDemoData(ctx context.Context) error {
	flag, err := s.store.Get(ctx, store.InitFlag)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read init flag")
	}
	if len(flag) > 0 {
		return nil
	}

	accounts := []struct {
		username string
		password string
		role     models.UserRole
	}{
		{"admin", "admin123", models.RoleAdmin},
		{"teacher", "teacher123", models.RoleTeacher},
		{"student", "student123", models.RoleStudent},
	}
	for _, account := range accounts {
		hash, err := HashPassword(account.password)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash seed password")
		}
		user := models.User{Username: account.username, PasswordHash: hash, Role: account.role}
		if err := s.users.Insert(ctx, &user); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed user")
		}
	}

	for _, teacher := range []models.Teacher{
		{Name: "John Doe", Phone: "123-456-7890"},
		{Name: "Jane Smith", Phone: "098-765-4321"},
	} {
		t := teacher
		if err := s.teachers.Insert(ctx, &t); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed teacher")
		}
	}

	for _, course := range []models.Course{
		{Name: "IELTS Preparation", Description: "Comprehensive IELTS training"},
		{Name: "Spoken English", Description: "Fluency and conversation practice"},
	} {
		c := course
		if err := s.courses.Insert(ctx, &c); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed course")
		}
	}

	for _, tf := range []models.Timeframe{
		{Start: "09:00", End: "10:30"},
		{Start: "11:00", End: "12:30"},
		{Start: "14:00", End: "15:30"},
	} {
		timeframe := tf
		if err := s.timeframes.Insert(ctx, &timeframe); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed timeframe")
		}
	}

	for _, room := range []models.Room{{Name: "Room 101"}, {Name: "Room 102"}} {
		r := room
		if err := s.rooms.Insert(ctx, &r); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed room")
		}
	}

	if err := s.store.Put(ctx, store.InitFlag, []byte(`true`)); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to write init flag")
	}
	s.logger.Info("demo data seeded")
	return nil
}
