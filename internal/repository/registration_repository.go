package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// RegistrationRepository persists the testRegistrations collection.
type RegistrationRepository struct {
	store store.Store
}

func NewRegistrationRepository(s store.Store) *RegistrationRepository {
	return &RegistrationRepository{store: s}
}

func (r *RegistrationRepository) List(ctx context.Context) ([]models.TestRegistration, error) {
	return loadAll[models.TestRegistration](ctx, r.store, store.TestRegistrations)
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (*models.TestRegistration, error) {
	regs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range regs {
		if regs[i].ID == id {
			return &regs[i], nil
		}
	}
	return nil, ErrNotFound
}

// Exists reports whether a student already holds a registration for
// the slot.
func (r *RegistrationRepository) Exists(ctx context.Context, studentID, slotID string) (bool, error) {
	regs, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, reg := range regs {
		if reg.StudentID == studentID && reg.TestSlotID == slotID {
			return true, nil
		}
	}
	return false, nil
}

func (r *RegistrationRepository) ListByStudent(ctx context.Context, studentID string) ([]models.TestRegistration, error) {
	regs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.TestRegistration
	for _, reg := range regs {
		if reg.StudentID == studentID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *RegistrationRepository) Insert(ctx context.Context, reg *models.TestRegistration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	regs, err := r.List(ctx)
	if err != nil {
		return err
	}
	regs = append(regs, *reg)
	return saveAll(ctx, r.store, store.TestRegistrations, regs)
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	regs, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := regs[:0]
	for _, reg := range regs {
		if reg.ID != id {
			kept = append(kept, reg)
		}
	}
	if len(kept) == len(regs) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.TestRegistrations, kept)
}
