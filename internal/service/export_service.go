package service

import (
	"context"

	"go.uber.org/zap"

	appErrors "github.com/acadexa/testcenter-api/pkg/errors"
	"github.com/acadexa/testcenter-api/pkg/export"
)

// ExportService renders the registration ledger and day schedules as
// downloadable files.
type ExportService struct {
	registrations *RegistrationService
	dashboard     *DashboardService
	csv           *export.CSVExporter
	pdf           *export.PDFExporter
	logger        *zap.Logger
}

// NewExportService instantiates ExportService.
func NewExportService(registrations *RegistrationService, dashboard *DashboardService, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		registrations: registrations,
		dashboard:     dashboard,
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		logger:        logger,
	}
}

// RegistrationsCSV renders the full ledger as CSV.
func (s *ExportService) RegistrationsCSV(ctx context.Context) ([]byte, error) {
	views, err := s.registrations.List(ctx)
	if err != nil {
		return nil, err
	}
	table := export.Table{
		Headers: []string{"Student", "Phone", "Test Type", "Module", "Date", "Time", "Room", "Registered On"},
	}
	for _, view := range views {
		table.Rows = append(table.Rows, []string{
			view.StudentName, view.StudentPhone, view.TestType, view.Module,
			view.Date, view.Time, view.RoomName, view.RegistrationDate,
		})
	}
	payload, err := s.csv.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render registrations csv")
	}
	return payload, nil
}

// DaySchedulePDF renders a weekday's batch schedule as PDF.
func (s *ExportService) DaySchedulePDF(ctx context.Context, day string) ([]byte, error) {
	rows, err := s.dashboard.DaySchedule(ctx, day)
	if err != nil {
		return nil, err
	}
	table := export.Table{
		Headers: []string{"Batch", "Time", "Course", "Room", "Teachers"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.BatchNumber, row.TimeDisplay, row.CourseName, row.RoomName, row.Teachers,
		})
	}
	payload, err := s.pdf.Render(table, "Schedule for "+day)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render schedule pdf")
	}
	return payload, nil
}
