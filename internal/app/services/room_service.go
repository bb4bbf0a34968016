package services

import (
	"context"
	"strings"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

// RoomService defines the interface for room inventory operations
type RoomService interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error)
	ListRooms(ctx context.Context) (*dto.RoomListResponse, error)
	GetRoomDetails(ctx context.Context, roomID int64) (*dto.RoomDetailResponse, error)
}

type roomServiceImpl struct {
	txRunner repositories.TxRunner
	roomRepo repositories.RoomRepository
	bedRepo  repositories.BedRepository
	userRepo repositories.UserRepository
}

// NewRoomService creates a new RoomService
func NewRoomService(
	txRunner repositories.TxRunner,
	roomRepo repositories.RoomRepository,
	bedRepo repositories.BedRepository,
	userRepo repositories.UserRepository,
) RoomService {
	return &roomServiceImpl{
		txRunner: txRunner,
		roomRepo: roomRepo,
		bedRepo:  bedRepo,
		userRepo: userRepo,
	}
}

// roomTypeForCapacity names a room by its capacity when the caller does
// not provide a type.
func roomTypeForCapacity(capacity int) string {
	switch capacity {
	case 1:
		return "single"
	case 2:
		return "double"
	case 3:
		return "triple"
	default:
		return "dormitory"
	}
}

// CreateRoom creates a room together with its beds numbered 1..capacity.
// Both inserts run in one transaction so a room never exists without its
// full set of beds.
func (s *roomServiceImpl) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*models.Room, error) {
	roomNumber := strings.TrimSpace(req.RoomNumber)
	if roomNumber == "" {
		return nil, apperrors.ErrValidationFailed
	}

	roomType := req.RoomType
	if roomType == "" {
		roomType = roomTypeForCapacity(req.Capacity)
	}

	room := &models.Room{
		RoomNumber: roomNumber,
		Floor:      req.Floor,
		Capacity:   req.Capacity,
		RoomType:   roomType,
	}

	err := s.txRunner.InTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if err := repos.Rooms.Create(ctx, room); err != nil {
			return err
		}
		return repos.Beds.CreateForRoom(ctx, room.ID, room.Capacity)
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("roomID", room.ID).Str("roomNumber", room.RoomNumber).Int("capacity", room.Capacity).Msg("Room created")

	return room, nil
}

// ListRooms returns all rooms with live occupancy counts.
func (s *roomServiceImpl) ListRooms(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := s.roomRepo.ListWithOccupancy(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.RoomStatsResponse, 0, len(rooms))
	for _, room := range rooms {
		stats = append(stats, dto.RoomStatsResponse{
			Room:          room,
			AvailableBeds: room.Capacity - room.OccupiedBeds,
		})
	}

	return &dto.RoomListResponse{Rooms: stats, Total: len(stats)}, nil
}

// GetRoomDetails returns a room with all its beds, each annotated with the
// occupant's name and roll number. A bed whose occupant record is missing
// is shown as "Unknown" instead of failing the whole view.
func (s *roomServiceImpl) GetRoomDetails(ctx context.Context, roomID int64) (*dto.RoomDetailResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	beds, err := s.bedRepo.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	annotated := make([]dto.BedWithOccupant, 0, len(beds))
	occupied := 0
	for _, bed := range beds {
		entry := dto.BedWithOccupant{Bed: bed}
		if bed.StudentID != nil {
			occupied++
			occupant, err := s.userRepo.GetByID(ctx, *bed.StudentID)
			if err != nil {
				logger.Warn().Err(err).Int64("bedID", bed.ID).Int64("studentID", *bed.StudentID).Msg("Bed occupant lookup failed")
				entry.OccupantName = "Unknown"
			} else {
				entry.OccupantName = occupant.FullName
				if occupant.RollNo != nil {
					entry.OccupantRollNo = *occupant.RollNo
				}
			}
		}
		annotated = append(annotated, entry)
	}

	room.OccupiedBeds = occupied

	return &dto.RoomDetailResponse{Room: room, Beds: annotated}, nil
}
