package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/acadexa/testcenter-api/internal/models"
	"github.com/acadexa/testcenter-api/pkg/store"
)

// AttendanceRepository persists the attendance collection.
type AttendanceRepository struct {
	store store.Store
}

func NewAttendanceRepository(s store.Store) *AttendanceRepository {
	return &AttendanceRepository{store: s}
}

func (r *AttendanceRepository) List(ctx context.Context) ([]models.AttendanceRecord, error) {
	return loadAll[models.AttendanceRecord](ctx, r.store, store.Attendance)
}

func (r *AttendanceRepository) ListByBatchAndDate(ctx context.Context, batchID, date string) ([]models.AttendanceRecord, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.AttendanceRecord
	for _, rec := range records {
		if rec.BatchID == batchID && rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Upsert writes a mark keyed by the (student, batch, date) triple.
// Re-marking replaces the prior status.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) error {
	records, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].StudentID == record.StudentID &&
			records[i].BatchID == record.BatchID &&
			records[i].Date == record.Date {
			record.ID = records[i].ID
			records[i] = *record
			return saveAll(ctx, r.store, store.Attendance, records)
		}
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	records = append(records, *record)
	return saveAll(ctx, r.store, store.Attendance, records)
}
