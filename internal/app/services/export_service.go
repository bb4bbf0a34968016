package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

// ExportService builds downloadable reports for the warden.
type ExportService interface {
	StudentRosterXLSX(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportServiceImpl struct {
	userRepo repositories.UserRepository
	roomRepo repositories.RoomRepository
	bedRepo  repositories.BedRepository
	now      func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService(
	userRepo repositories.UserRepository,
	roomRepo repositories.RoomRepository,
	bedRepo repositories.BedRepository,
) ExportService {
	return &exportServiceImpl{
		userRepo: userRepo,
		roomRepo: roomRepo,
		bedRepo:  bedRepo,
		now:      time.Now,
	}
}

var rosterHeaders = []string{
	"Roll No", "Full Name", "Email", "Phone", "Stream", "Branch",
	"Room", "Bed", "Guardian Name", "Guardian Phone",
}

// StudentRosterXLSX renders the full student roster with room assignments
// as an Excel workbook and returns the buffer plus a dated filename.
func (s *exportServiceImpl) StudentRosterXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Students"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", fmt.Errorf("error creating roster sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 28)
	f.SetColWidth(sheetName, "D", "J", 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, header := range rosterHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	row := 2
	for _, student := range students {
		roomNumber := "-"
		bedNumber := "-"

		bed, err := s.bedRepo.GetByStudentID(ctx, student.ID)
		if err == nil {
			bedNumber = fmt.Sprintf("%d", bed.BedNumber)
			if room, err := s.roomRepo.GetByID(ctx, bed.RoomID); err == nil {
				roomNumber = room.RoomNumber
			}
		}

		rollNo := ""
		if student.RollNo != nil {
			rollNo = *student.RollNo
		}

		values := []interface{}{
			rollNo, student.FullName, student.Email, student.Phone,
			student.Stream, student.Branch, roomNumber, bedNumber,
			student.GuardianName, student.GuardianPhone,
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cell, value)
		}
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		logger.Error().Err(err).Msg("Error writing roster workbook")
		return nil, "", fmt.Errorf("error writing roster workbook: %w", err)
	}

	filename := fmt.Sprintf("students_%s.xlsx", s.now().Format("2006-01-02"))

	return buf, filename, nil
}
