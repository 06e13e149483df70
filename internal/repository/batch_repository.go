package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// BatchRepository persists the batches collection.
type BatchRepository struct {
	store store.Store
}

func NewBatchRepository(s store.Store) *BatchRepository {
	return &BatchRepository{store: s}
}

func (r *BatchRepository) List(ctx context.Context) ([]models.Batch, error) {
	return loadAll[models.Batch](ctx, r.store, store.Batches)
}

func (r *BatchRepository) FindByID(ctx context.Context, id string) (*models.Batch, error) {
	batches, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range batches {
		if batches[i].ID == id {
			return &batches[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *BatchRepository) Insert(ctx context.Context, batch *models.Batch) error {
	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	batches, err := r.List(ctx)
	if err != nil {
		return err
	}
	batches = append(batches, *batch)
	return saveAll(ctx, r.store, store.Batches, batches)
}

func (r *BatchRepository) Update(ctx context.Context, batch *models.Batch) error {
	batches, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range batches {
		if batches[i].ID == batch.ID {
			batches[i] = *batch
			return saveAll(ctx, r.store, store.Batches, batches)
		}
	}
	return ErrNotFound
}

// Delete removes a batch. No cascade: attendance and performance
// records keep their now-dangling batch references.
func (r *BatchRepository) Delete(ctx context.Context, id string) error {
	batches, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := batches[:0]
	for _, b := range batches {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(batches) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.Batches, kept)
}
