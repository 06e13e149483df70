package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// TestSlotRepository persists the testSlots collection.
type TestSlotRepository struct {
	store store.Store
}

func NewTestSlotRepository(s store.Store) *TestSlotRepository {
	return &TestSlotRepository{store: s}
}

func (r *TestSlotRepository) List(ctx context.Context) ([]models.TestSlot, error) {
	return loadAll[models.TestSlot](ctx, r.store, store.TestSlots)
}

func (r *TestSlotRepository) FindByID(ctx context.Context, id string) (*models.TestSlot, error) {
	slots, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].ID == id {
			return &slots[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *TestSlotRepository) Insert(ctx context.Context, slot *models.TestSlot) error {
	if slot.ID == "" {
		slot.ID = uuid.NewString()
	}
	slots, err := r.List(ctx)
	if err != nil {
		return err
	}
	slots = append(slots, *slot)
	return saveAll(ctx, r.store, store.TestSlots, slots)
}

// InsertMany appends a batch of slots in one collection write so a
// speaking batch appears all at once or not at all.
func (r *TestSlotRepository) InsertMany(ctx context.Context, newSlots []models.TestSlot) error {
	for i := range newSlots {
		if newSlots[i].ID == "" {
			newSlots[i].ID = uuid.NewString()
		}
	}
	slots, err := r.List(ctx)
	if err != nil {
		return err
	}
	slots = append(slots, newSlots...)
	return saveAll(ctx, r.store, store.TestSlots, slots)
}

func (r *TestSlotRepository) Update(ctx context.Context, slot *models.TestSlot) error {
	slots, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range slots {
		if slots[i].ID == slot.ID {
			slots[i] = *slot
			return saveAll(ctx, r.store, store.TestSlots, slots)
		}
	}
	return ErrNotFound
}

// SaveAll replaces the whole collection. Used by purpose flips that
// touch every slot of a speaking batch atomically.
func (r *TestSlotRepository) SaveAll(ctx context.Context, slots []models.TestSlot) error {
	return saveAll(ctx, r.store, store.TestSlots, slots)
}

func (r *TestSlotRepository) Delete(ctx context.Context, id string) error {
	slots, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := slots[:0]
	for _, s := range slots {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(slots) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.TestSlots, kept)
}

// DeleteBatch removes every slot grouped under a speaking batch id.
func (r *TestSlotRepository) DeleteBatch(ctx context.Context, batchID string) (int, error) {
	slots, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	kept := slots[:0]
	for _, s := range slots {
		if s.BatchID != batchID {
			kept = append(kept, s)
		}
	}
	removed := len(slots) - len(kept)
	if removed == 0 {
		return 0, ErrNotFound
	}
	if err := saveAll(ctx, r.store, store.TestSlots, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
