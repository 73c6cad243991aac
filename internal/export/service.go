package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lbeckmann/cardvault/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	contactsRepo repository.ContactRepository
	logger       *slog.Logger
}

func NewService(contactsRepo repository.ContactRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contactsRepo: contactsRepo, logger: logger}
}

// ExportContactsXLSX returns an XLSX workbook (as bytes) for the given profile and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all contacts for profile.
func (s *Service) ExportContactsXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	contacts, err := s.contactsRepo.ListContacts(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contacts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Name",
		"Job Title",
		"Company",
		"Email",
		"Phone",
		"Website",
		"Address",
		"Outcome",
		"Captured",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	row := 2
	for _, c := range contacts {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, str(c.Name))
		write(2, str(c.JobTitle))
		write(3, str(c.Company))
		write(4, str(c.Email))
		write(5, str(c.Phone))
		write(6, str(c.Website))
		write(7, str(c.Address))
		write(8, c.Outcome)
		write(9, c.CreatedAt.UTC().Format("2006-01-02"))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "C", 26) // title, company
	_ = f.SetColWidth(sheet, "D", "D", 30) // email
	_ = f.SetColWidth(sheet, "E", "E", 20) // phone
	_ = f.SetColWidth(sheet, "F", "F", 28) // website
	_ = f.SetColWidth(sheet, "G", "G", 44) // address
	_ = f.SetColWidth(sheet, "H", "I", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(contacts),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
