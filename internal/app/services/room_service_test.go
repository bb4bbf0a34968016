package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
)

func newRoomService(env *testEnv) RoomService {
	return NewRoomService(env.tx, env.rooms, env.beds, env.users)
}

func TestCreateRoomCreatesBeds(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	room, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomNumber: "R101",
		Floor:      1,
		Capacity:   3,
	})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.RoomType != "triple" {
		t.Errorf("room type = %q, want triple derived from capacity", room.RoomType)
	}

	beds, err := env.beds.ListByRoom(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("ListByRoom: %v", err)
	}
	if len(beds) != 3 {
		t.Fatalf("beds = %d, want 3", len(beds))
	}
	for i, bed := range beds {
		if bed.BedNumber != i+1 {
			t.Errorf("bed %d numbered %d, want %d", i, bed.BedNumber, i+1)
		}
	}
}

func TestCreateRoomExplicitType(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	room, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{
		RoomNumber: "R105",
		Capacity:   2,
		RoomType:   "deluxe",
	})
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if room.RoomType != "deluxe" {
		t.Errorf("room type = %q, want the explicit deluxe", room.RoomType)
	}
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	if _, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{RoomNumber: "R101", Capacity: 2}); err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}

	_, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{RoomNumber: "R101", Capacity: 3})
	if !errors.Is(err, apperrors.ErrDuplicateRoomNumber) {
		t.Fatalf("err = %v, want ErrDuplicateRoomNumber", err)
	}
}

func TestCreateRoomBlankNumber(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	_, err := svc.CreateRoom(context.Background(), &dto.CreateRoomRequest{RoomNumber: "   ", Capacity: 2})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
}

func TestListRoomsReportsAvailability(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	room := env.addRoom("R101", 3)
	env.addRoom("R102", 2)

	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), room.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, student.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	resp, err := svc.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2", resp.Total)
	}
	// Sorted by room number.
	if resp.Rooms[0].Room.RoomNumber != "R101" {
		t.Fatalf("first room = %q, want R101", resp.Rooms[0].Room.RoomNumber)
	}
	if resp.Rooms[0].AvailableBeds != 2 {
		t.Errorf("R101 available beds = %d, want 2", resp.Rooms[0].AvailableBeds)
	}
	if resp.Rooms[1].AvailableBeds != 2 {
		t.Errorf("R102 available beds = %d, want 2", resp.Rooms[1].AvailableBeds)
	}
}

func TestGetRoomDetailsAnnotatesOccupants(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	room := env.addRoom("R101", 2)

	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), room.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, student.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	resp, err := svc.GetRoomDetails(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("GetRoomDetails: %v", err)
	}
	if len(resp.Beds) != 2 {
		t.Fatalf("beds = %d, want 2", len(resp.Beds))
	}
	if resp.Beds[0].OccupantName != "Ravi Kumar" || resp.Beds[0].OccupantRollNo != "CS101" {
		t.Errorf("bed 1 occupant = %q/%q, want Ravi Kumar/CS101", resp.Beds[0].OccupantName, resp.Beds[0].OccupantRollNo)
	}
	if resp.Beds[1].OccupantName != "" {
		t.Errorf("free bed has occupant %q, want empty", resp.Beds[1].OccupantName)
	}
	if resp.Room.OccupiedBeds != 1 {
		t.Errorf("occupied beds = %d, want 1", resp.Room.OccupiedBeds)
	}
}

func TestGetRoomDetailsDanglingOccupant(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	student := env.addStudent("CS101", "Ravi Kumar", "9876543210")
	room := env.addRoom("R101", 2)

	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), room.ID, 1)
	if err := env.beds.Claim(context.Background(), bed.ID, student.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}
	delete(env.users.users, student.ID)

	resp, err := svc.GetRoomDetails(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("GetRoomDetails: %v", err)
	}
	if resp.Beds[0].OccupantName != "Unknown" {
		t.Errorf("occupant = %q, want Unknown for a dangling reference", resp.Beds[0].OccupantName)
	}
}

func TestGetRoomDetailsNotFound(t *testing.T) {
	env := newTestEnv()
	svc := newRoomService(env)

	_, err := svc.GetRoomDetails(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}
