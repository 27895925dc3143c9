package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/yonatan-reicher/staymarket-backend/internal/app/repository"
)

// ReportService renders the aggregate reports as an xlsx workbook. This is
// an operator-facing export, infrastructure rather than contract, so unlike
// the engine operations it returns plain errors.
type ReportService struct {
	analyticsRepo *repository.AnalyticsRepository
}

func NewReportService(analyticsRepo *repository.AnalyticsRepository) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

const (
	profitSheet       = "Monthly Profit"
	reservationsSheet = "Reservations per Owner"
)

// BuildYearReport assembles a workbook with the monthly profit for the year
// and the reservations-per-owner counts. The caller owns the returned file
// and is responsible for closing it.
func (s *ReportService) BuildYearReport(year int) (*excelize.File, error) {
	profits, err := s.analyticsRepo.ProfitPerMonth(year)
	if err != nil {
		return nil, fmt.Errorf("profit per month for %d: %w", year, err)
	}
	counts, err := s.analyticsRepo.ReservationsPerOwner()
	if err != nil {
		return nil, fmt.Errorf("reservations per owner: %w", err)
	}

	f := excelize.NewFile()

	// excelize starts with a default sheet; rename it for the first report
	if err := f.SetSheetName("Sheet1", profitSheet); err != nil {
		f.Close()
		return nil, err
	}
	f.SetCellValue(profitSheet, "A1", "Month")
	f.SetCellValue(profitSheet, "B1", "Profit")
	for i, row := range profits {
		f.SetCellValue(profitSheet, fmt.Sprintf("A%d", i+2), row.Month)
		f.SetCellValue(profitSheet, fmt.Sprintf("B%d", i+2), row.Profit)
	}

	if _, err := f.NewSheet(reservationsSheet); err != nil {
		f.Close()
		return nil, err
	}
	f.SetCellValue(reservationsSheet, "A1", "Owner ID")
	f.SetCellValue(reservationsSheet, "B1", "Name")
	f.SetCellValue(reservationsSheet, "C1", "Reservations")
	for i, row := range counts {
		f.SetCellValue(reservationsSheet, fmt.Sprintf("A%d", i+2), row.OwnerID)
		f.SetCellValue(reservationsSheet, fmt.Sprintf("B%d", i+2), row.Name)
		f.SetCellValue(reservationsSheet, fmt.Sprintf("C%d", i+2), row.Reservations)
	}

	return f, nil
}

// ExportYearReport writes the year report to a file on disk.
func (s *ReportService) ExportYearReport(year int, path string) error {
	f, err := s.BuildYearReport(year)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving report to %s: %w", path, err)
	}
	return nil
}
