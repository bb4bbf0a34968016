package services

import (
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func newExportService(env *testEnv) *exportServiceImpl {
	svc := NewExportService(env.users, env.rooms, env.beds).(*exportServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestStudentRosterXLSX(t *testing.T) {
	env := newTestEnv()
	svc := newExportService(env)

	assigned := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	env.addStudent("CS102", "Anil Singh", "9876543211")
	room := env.addRoom("R101", 2)

	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), room.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, assigned.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	buf, filename, err := svc.StudentRosterXLSX(context.Background())
	if err != nil {
		t.Fatalf("StudentRosterXLSX: %v", err)
	}
	if filename != "students_2026-03-01.xlsx" {
		t.Errorf("filename = %q, want students_2026-03-01.xlsx", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Students")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus two students", len(rows))
	}
	if rows[0][0] != "Roll No" || rows[0][1] != "Full Name" {
		t.Errorf("header = %v, want the roster headers", rows[0])
	}

	// Students come out sorted by roll number.
	if rows[1][0] != "CS101" || rows[1][6] != "R101" || rows[1][7] != "1" {
		t.Errorf("CS101 row = %v, want room R101 bed 1", rows[1])
	}
	if rows[2][0] != "CS102" || rows[2][6] != "-" || rows[2][7] != "-" {
		t.Errorf("CS102 row = %v, want dashes for no assignment", rows[2])
	}
}

func TestStudentRosterXLSXEmptyRoster(t *testing.T) {
	env := newTestEnv()
	svc := newExportService(env)

	buf, _, err := svc.StudentRosterXLSX(context.Background())
	if err != nil {
		t.Fatalf("StudentRosterXLSX: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Students")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want just the header", len(rows))
	}
}
