package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// TeacherRepository persists the teachers collection.
type TeacherRepository struct {
	store store.Store
}

func NewTeacherRepository(s store.Store) *TeacherRepository {
	return &TeacherRepository{store: s}
}

func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	return loadAll[models.Teacher](ctx, r.store, store.Teachers)
}

func (r *TeacherRepository) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	teachers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			return &teachers[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *TeacherRepository) Insert(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	teachers = append(teachers, *teacher)
	return saveAll(ctx, r.store, store.Teachers, teachers)
}

func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == teacher.ID {
			teachers[i] = *teacher
			return saveAll(ctx, r.store, store.Teachers, teachers)
		}
	}
	return ErrNotFound
}

func (r *TeacherRepository) Delete(ctx context.Context, id string) error {
	teachers, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := teachers[:0]
	for _, t := range teachers {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(teachers) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.Teachers, kept)
}

// CourseRepository persists the courses collection.
type CourseRepository struct {
	store store.Store
}

func NewCourseRepository(s store.Store) *CourseRepository {
	return &CourseRepository{store: s}
}

func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	return loadAll[models.Course](ctx, r.store, store.Courses)
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *CourseRepository) Insert(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	courses, err := r.List(ctx)
	if err != nil {
		return err
	}
	courses = append(courses, *course)
	return saveAll(ctx, r.store, store.Courses, courses)
}

func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	courses, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range courses {
		if courses[i].ID == course.ID {
			courses[i] = *course
			return saveAll(ctx, r.store, store.Courses, courses)
		}
	}
	return ErrNotFound
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	courses, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := courses[:0]
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(courses) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.Courses, kept)
}

// TimeframeRepository persists the timeframes collection.
type TimeframeRepository struct {
	store store.Store
}

func NewTimeframeRepository(s store.Store) *TimeframeRepository {
	return &TimeframeRepository{store: s}
}

func (r *TimeframeRepository) List(ctx context.Context) ([]models.Timeframe, error) {
	return loadAll[models.Timeframe](ctx, r.store, store.Timeframes)
}

func (r *TimeframeRepository) FindByID(ctx context.Context, id string) (*models.Timeframe, error) {
	timeframes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range timeframes {
		if timeframes[i].ID == id {
			return &timeframes[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *TimeframeRepository) Insert(ctx context.Context, tf *models.Timeframe) error {
	if tf.ID == "" {
		tf.ID = uuid.NewString()
	}
	timeframes, err := r.List(ctx)
	if err != nil {
		return err
	}
	timeframes = append(timeframes, *tf)
	return saveAll(ctx, r.store, store.Timeframes, timeframes)
}

func (r *TimeframeRepository) Delete(ctx context.Context, id string) error {
	timeframes, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := timeframes[:0]
	for _, tf := range timeframes {
		if tf.ID != id {
			kept = append(kept, tf)
		}
	}
	if len(kept) == len(timeframes) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.Timeframes, kept)
}

// RoomRepository persists the rooms collection.
type RoomRepository struct {
	store store.Store
}

func NewRoomRepository(s store.Store) *RoomRepository {
	return &RoomRepository{store: s}
}

func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	return loadAll[models.Room](ctx, r.store, store.Rooms)
}

func (r *RoomRepository) FindByID(ctx context.Context, id string) (*models.Room, error) {
	rooms, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rooms {
		if rooms[i].ID == id {
			return &rooms[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *RoomRepository) Insert(ctx context.Context, room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	rooms, err := r.List(ctx)
	if err != nil {
		return err
	}
	rooms = append(rooms, *room)
	return saveAll(ctx, r.store, store.Rooms, rooms)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	rooms, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := rooms[:0]
	for _, room := range rooms {
		if room.ID != id {
			kept = append(kept, room)
		}
	}
	if len(kept) == len(rooms) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.Rooms, kept)
}
