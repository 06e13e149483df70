package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// PerformanceRepository persists the performance collection.
type PerformanceRepository struct {
	store store.Store
}

func NewPerformanceRepository(s store.Store) *PerformanceRepository {
	return &PerformanceRepository{store: s}
}

func (r *PerformanceRepository) List(ctx context.Context) ([]models.PerformanceRecord, error) {
	return loadAll[models.PerformanceRecord](ctx, r.store, store.Performance)
}

func (r *PerformanceRepository) ListByStudent(ctx context.Context, studentID string) ([]models.PerformanceRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.PerformanceRecord
	for _, rec := range records {
		if rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Upsert writes a score keyed by the (student, slot) pair. Re-entering
// a score overwrites the previous value.
func (r *PerformanceRepository) Upsert(ctx context.Context, record *models.PerformanceRecord) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].StudentID == record.StudentID && records[i].TestSlotID == record.TestSlotID {
			record.ID = records[i].ID
			records[i] = *record
			return saveAll(ctx, r.store, store.Performance, records)
		}
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	records = append(records, *record)
	return saveAll(ctx, r.store, store.Performance, records)
}

func (r *PerformanceRepository) Delete(ctx context.Context, id string) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}
	return saveAll(ctx, r.store, store.Performance, kept)
}
