package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// StudentRepository persists the students collection.
type StudentRepository struct {
	store store.Store
}

func NewStudentRepository(s store.Store) *StudentRepository {
	return &StudentRepository{store: s}
}

func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	return loadAll[models.Student](ctx, r.store, store.Students)
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByPhoneOrEmail deduplicates registrants. First match in
// insertion order wins; either field matching is enough.
func (r *StudentRepository) FindByPhoneOrEmail(ctx context.Context, phone, email string) (*models.Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if (phone != "" && students[i].Phone == phone) || (email != "" && students[i].Email == email) {
			return &students[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *StudentRepository) Insert(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	students, err := r.List(ctx)
	if err != nil {
		return err
	}
	students = append(students, *student)
	return saveAll(ctx, r.store, store.Students, students)
}

func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	students, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range students {
		if students[i].ID == student.ID {
			students[i] = *student
			return saveAll(ctx, r.store, store.Students, students)
		}
	}
	return ErrNotFound
}
