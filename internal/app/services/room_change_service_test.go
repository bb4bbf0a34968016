package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
)

func newRoomChangeService(env *testEnv) *roomChangeServiceImpl {
	svc := NewRoomChangeService(env.tx, env.roomChanges, env.users, env.rooms, env.beds).(*roomChangeServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestSubmitRoomChangeRequest(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	current := env.addRoom("R101", 2)
	target := env.addRoom("R102", 2)

	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), current.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, student.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	request, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 2,
		Reason:             "quieter floor",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if request.Status != models.RequestPending {
		t.Errorf("status = %q, want pending", request.Status)
	}
	if request.CurrentRoomID == nil || *request.CurrentRoomID != current.ID {
		t.Error("expected the current room to be snapshotted on the request")
	}
}

func TestSubmitRoomChangeUnassignedStudent(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	target := env.addRoom("R102", 2)

	request, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 1,
		Reason:             "want a room",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if request.CurrentRoomID != nil {
		t.Error("expected nil current room for an unassigned student")
	}
}

func TestSubmitRoomChangeOwnBed(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	room := env.addRoom("R101", 2)

	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), room.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, student.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	_, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    room.ID,
		RequestedBedNumber: 1,
		Reason:             "no-op move",
	})
	if !errors.Is(err, apperrors.ErrAlreadyAssigned) {
		t.Fatalf("err = %v, want ErrAlreadyAssigned", err)
	}
}

func TestSubmitRoomChangeBedTaken(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	ravi := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	anil := env.addStudent("CS102", "Anil Singh", "9876543211")
	room := env.addRoom("R101", 2)

	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), room.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, anil.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	_, err := svc.Submit(context.Background(), ravi.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    room.ID,
		RequestedBedNumber: 1,
		Reason:             "window side",
	})
	if !errors.Is(err, apperrors.ErrBedUnavailable) {
		t.Fatalf("err = %v, want ErrBedUnavailable", err)
	}
}

func TestApproveRoomChangeMovesStudent(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	current := env.addRoom("R101", 2)
	target := env.addRoom("R102", 2)

	oldBed, _ := env.beds.GetByRoomAndNumber(context.Background(), current.ID, 1)
	if err := env.beds.Claim(context.Background(), oldBed.ID, student.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}
	_ = env.rooms.RecountOccupancy(context.Background(), current.ID)

	request, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 2,
		Reason:             "quieter floor",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Approve(context.Background(), request.ID, "warden"); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	newBed, err := env.beds.GetByStudentID(context.Background(), student.ID)
	if err != nil {
		t.Fatalf("GetByStudentID: %v", err)
	}
	if newBed.RoomID != target.ID || newBed.BedNumber != 2 {
		t.Errorf("student in room %d bed %d, want room %d bed 2", newBed.RoomID, newBed.BedNumber, target.ID)
	}
	if env.beds.beds[oldBed.ID].StudentID != nil {
		t.Error("expected the old bed to be released")
	}
	if env.rooms.rooms[current.ID].OccupiedBeds != 0 {
		t.Errorf("old room occupancy = %d, want 0", env.rooms.rooms[current.ID].OccupiedBeds)
	}
	if env.rooms.rooms[target.ID].OccupiedBeds != 1 {
		t.Errorf("new room occupancy = %d, want 1", env.rooms.rooms[target.ID].OccupiedBeds)
	}

	stored := env.roomChanges.requests[request.ID]
	if stored.Status != models.RequestApproved {
		t.Errorf("status = %q, want approved", stored.Status)
	}
	if stored.ProcessedBy == nil || *stored.ProcessedBy != "warden" {
		t.Error("expected processed_by to record the warden")
	}
	if stored.ProcessedAt == nil || !stored.ProcessedAt.Equal(svc.now()) {
		t.Error("expected processed_at to use the service clock")
	}
}

func TestApproveRoomChangeBedNoLongerAvailable(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	ravi := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	anil := env.addStudent("CS102", "Anil Singh", "9876543211")
	target := env.addRoom("R102", 2)

	request, err := svc.Submit(context.Background(), ravi.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 1,
		Reason:             "quieter floor",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Someone else gets the bed while the request waits.
	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), target.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, anil.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	err = svc.Approve(context.Background(), request.ID, "warden")
	if !errors.Is(err, apperrors.ErrBedNoLongerAvailable) {
		t.Fatalf("err = %v, want ErrBedNoLongerAvailable", err)
	}

	// The request must still be pending so the warden can reject it.
	if env.roomChanges.requests[request.ID].Status != models.RequestPending {
		t.Error("expected the request to stay pending after a failed approval")
	}
}

func TestApproveRoomChangeTwice(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	target := env.addRoom("R102", 2)

	request, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 1,
		Reason:             "quieter floor",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Approve(context.Background(), request.ID, "warden"); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	err = svc.Approve(context.Background(), request.ID, "warden")
	if !errors.Is(err, apperrors.ErrRequestAlreadyProcessed) {
		t.Fatalf("second approve err = %v, want ErrRequestAlreadyProcessed", err)
	}
	err = svc.Reject(context.Background(), request.ID, "warden")
	if !errors.Is(err, apperrors.ErrRequestAlreadyProcessed) {
		t.Fatalf("reject after approve err = %v, want ErrRequestAlreadyProcessed", err)
	}
}

func TestRejectRoomChangeLeavesBedsAlone(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	target := env.addRoom("R102", 2)

	request, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 1,
		Reason:             "quieter floor",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := svc.Reject(context.Background(), request.ID, "warden"); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	if env.roomChanges.requests[request.ID].Status != models.RequestRejected {
		t.Error("expected the request to be rejected")
	}
	if _, err := env.beds.GetByStudentID(context.Background(), student.ID); !errors.Is(err, apperrors.ErrNoRoomAssigned) {
		t.Error("expected the student to remain unassigned")
	}
}

func TestListRoomChangeRequestsEnriched(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	target := env.addRoom("R102", 2)

	if _, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 1,
		Reason:             "quieter floor",
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	resp, err := svc.List(context.Background(), models.RequestPending)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	row := resp.Requests[0]
	if row.StudentName != "Ravi Kumar" || row.StudentRollNo != "CS101" {
		t.Errorf("student = %q/%q, want Ravi Kumar/CS101", row.StudentName, row.StudentRollNo)
	}
	if row.RequestedRoomNumber != "R102" {
		t.Errorf("requested room = %q, want R102", row.RequestedRoomNumber)
	}
}

func TestListRoomChangeRequestsDanglingStudent(t *testing.T) {
	env := newTestEnv()
	svc := newRoomChangeService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	target := env.addRoom("R102", 2)

	if _, err := svc.Submit(context.Background(), student.ID, &dto.CreateRoomChangeRequest{
		RequestedRoomID:    target.ID,
		RequestedBedNumber: 1,
		Reason:             "quieter floor",
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Simulate a dangling reference; the queue must stay readable.
	delete(env.users.users, student.ID)

	resp, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if resp.Requests[0].StudentName != "Unknown" {
		t.Errorf("student name = %q, want Unknown", resp.Requests[0].StudentName)
	}
}
