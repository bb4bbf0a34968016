package services

import (
	"context"
	"errors"
	"time"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

// RoomChangeService defines the interface for the room change workflow
type RoomChangeService interface {
	Submit(ctx context.Context, studentID int64, req *dto.CreateRoomChangeRequest) (*models.RoomChangeRequest, error)
	List(ctx context.Context, status models.RequestStatus) (*dto.RoomChangeRequestListResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.RoomChangeRequestResponse, error)
	Approve(ctx context.Context, id int64, wardenUsername string) error
	Reject(ctx context.Context, id int64, wardenUsername string) error
}

type roomChangeServiceImpl struct {
	txRunner    repositories.TxRunner
	requestRepo repositories.RoomChangeRequestRepository
	userRepo    repositories.UserRepository
	roomRepo    repositories.RoomRepository
	bedRepo     repositories.BedRepository
	now         func() time.Time
}

// NewRoomChangeService creates a new RoomChangeService
func NewRoomChangeService(
	txRunner repositories.TxRunner,
	requestRepo repositories.RoomChangeRequestRepository,
	userRepo repositories.UserRepository,
	roomRepo repositories.RoomRepository,
	bedRepo repositories.BedRepository,
) RoomChangeService {
	return &roomChangeServiceImpl{
		txRunner:    txRunner,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		roomRepo:    roomRepo,
		bedRepo:     bedRepo,
		now:         time.Now,
	}
}

// Submit records a student's request to move to a specific bed. The target
// bed must exist and be free at submission time; approval re-checks
// availability because it may change while the request waits.
func (s *roomChangeServiceImpl) Submit(ctx context.Context, studentID int64, req *dto.CreateRoomChangeRequest) (*models.RoomChangeRequest, error) {
	if _, err := s.roomRepo.GetByID(ctx, req.RequestedRoomID); err != nil {
		return nil, err
	}

	bed, err := s.bedRepo.GetByRoomAndNumber(ctx, req.RequestedRoomID, req.RequestedBedNumber)
	if err != nil {
		return nil, err
	}

	if bed.StudentID != nil {
		if *bed.StudentID == studentID {
			return nil, apperrors.ErrAlreadyAssigned
		}
		return nil, apperrors.ErrBedUnavailable
	}

	request := &models.RoomChangeRequest{
		StudentID:          studentID,
		RequestedRoomID:    req.RequestedRoomID,
		RequestedBedNumber: req.RequestedBedNumber,
		Reason:             req.Reason,
	}

	// Snapshot the current room for display; students without a room
	// submit with a nil current room.
	currentBed, err := s.bedRepo.GetByStudentID(ctx, studentID)
	if err == nil {
		request.CurrentRoomID = &currentBed.RoomID
	} else if !errors.Is(err, apperrors.ErrNoRoomAssigned) {
		return nil, err
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", studentID).Int64("requestID", request.ID).Msg("Room change request submitted")

	return request, nil
}

// List returns requests newest first, enriched with student and room names.
func (s *roomChangeServiceImpl) List(ctx context.Context, status models.RequestStatus) (*dto.RoomChangeRequestListResponse, error) {
	requests, err := s.requestRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	enriched := make([]dto.RoomChangeRequestResponse, 0, len(requests))
	for _, request := range requests {
		enriched = append(enriched, *s.enrich(ctx, request))
	}

	return &dto.RoomChangeRequestListResponse{Requests: enriched, Total: len(enriched)}, nil
}

// GetByID returns one request with display names attached.
func (s *roomChangeServiceImpl) GetByID(ctx context.Context, id int64) (*dto.RoomChangeRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, request), nil
}

// enrich attaches display names. Dangling references degrade to "Unknown"
// so one bad row never breaks the whole queue.
func (s *roomChangeServiceImpl) enrich(ctx context.Context, request *models.RoomChangeRequest) *dto.RoomChangeRequestResponse {
	resp := &dto.RoomChangeRequestResponse{
		Request:             request,
		StudentName:         "Unknown",
		RequestedRoomNumber: "Unknown",
	}

	if student, err := s.userRepo.GetByID(ctx, request.StudentID); err == nil {
		resp.StudentName = student.FullName
		if student.RollNo != nil {
			resp.StudentRollNo = *student.RollNo
		}
	}

	if request.CurrentRoomID != nil {
		if room, err := s.roomRepo.GetByID(ctx, *request.CurrentRoomID); err == nil {
			resp.CurrentRoomNumber = room.RoomNumber
		} else {
			resp.CurrentRoomNumber = "Unknown"
		}
	}

	if room, err := s.roomRepo.GetByID(ctx, request.RequestedRoomID); err == nil {
		resp.RequestedRoomNumber = room.RoomNumber
	}

	return resp
}

// Approve moves the student to the requested bed. Availability is
// re-checked inside the transaction, the old bed is released, the new bed
// claimed and both room occupancies refreshed, all as one unit. The
// guarded status update ensures the request is decided at most once.
func (s *roomChangeServiceImpl) Approve(ctx context.Context, id int64, wardenUsername string) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if request.Status != models.RequestPending {
		return apperrors.ErrRequestAlreadyProcessed
	}

	err = s.txRunner.InTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		bed, err := repos.Beds.GetByRoomAndNumber(ctx, request.RequestedRoomID, request.RequestedBedNumber)
		if err != nil {
			return err
		}

		if bed.StudentID != nil {
			if *bed.StudentID == request.StudentID {
				return apperrors.ErrAlreadyAssigned
			}
			return apperrors.ErrBedNoLongerAvailable
		}

		// Release the student's current bed before claiming the new one;
		// the partial unique index forbids holding two beds at once.
		currentBed, err := repos.Beds.GetByStudentID(ctx, request.StudentID)
		if err != nil && !errors.Is(err, apperrors.ErrNoRoomAssigned) {
			return err
		}

		if currentBed != nil {
			if err := repos.Beds.Release(ctx, currentBed.ID); err != nil {
				return err
			}
			if err := repos.Rooms.RecountOccupancy(ctx, currentBed.RoomID); err != nil {
				return err
			}
		}

		if err := repos.Beds.Claim(ctx, bed.ID, request.StudentID); err != nil {
			return err
		}
		if err := repos.Rooms.RecountOccupancy(ctx, request.RequestedRoomID); err != nil {
			return err
		}

		return repos.RoomChanges.MarkProcessed(ctx, id, models.RequestApproved, wardenUsername, s.now())
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("requestID", id).Str("processedBy", wardenUsername).Msg("Room change request approved")

	return nil
}

// Reject marks a pending request as rejected without touching any beds.
func (s *roomChangeServiceImpl) Reject(ctx context.Context, id int64, wardenUsername string) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if request.Status != models.RequestPending {
		return apperrors.ErrRequestAlreadyProcessed
	}

	if err := s.requestRepo.MarkProcessed(ctx, id, models.RequestRejected, wardenUsername, s.now()); err != nil {
		return err
	}

	logger.Info().Int64("requestID", id).Str("processedBy", wardenUsername).Msg("Room change request rejected")

	return nil
}
