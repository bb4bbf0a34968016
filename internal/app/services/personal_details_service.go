package services

import (
	"context"
	"time"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

// PersonalDetailsService defines the interface for the personal details
// update workflow
type PersonalDetailsService interface {
	Submit(ctx context.Context, studentID int64, req *dto.CreatePersonalDetailsRequest) (*models.PersonalDetailsUpdateRequest, error)
	List(ctx context.Context, status models.RequestStatus) (*dto.PersonalDetailsRequestListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.PersonalDetailsUpdateRequest, error)
	Approve(ctx context.Context, id int64, comments, wardenUsername string) error
	Reject(ctx context.Context, id int64, comments, wardenUsername string) error
}

type personalDetailsServiceImpl struct {
	txRunner    repositories.TxRunner
	requestRepo repositories.PersonalDetailsRequestRepository
	userRepo    repositories.UserRepository
	now         func() time.Time
}

// NewPersonalDetailsService creates a new PersonalDetailsService
func NewPersonalDetailsService(
	txRunner repositories.TxRunner,
	requestRepo repositories.PersonalDetailsRequestRepository,
	userRepo repositories.UserRepository,
) PersonalDetailsService {
	return &personalDetailsServiceImpl{
		txRunner:    txRunner,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

// Submit records a student's proposed profile changes. A student may have
// only one pending request at a time; the name and roll number are
// snapshotted so the queue stays readable even after the account changes.
func (s *personalDetailsServiceImpl) Submit(ctx context.Context, studentID int64, req *dto.CreatePersonalDetailsRequest) (*models.PersonalDetailsUpdateRequest, error) {
	if isEmptyPersonalDetailsRequest(req) {
		return nil, apperrors.ErrValidationFailed
	}

	pending, err := s.requestRepo.HasPendingForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.ErrDuplicatePendingRequest
	}

	student, err := s.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	request := &models.PersonalDetailsUpdateRequest{
		StudentID:       studentID,
		StudentName:     student.FullName,
		Phone:           req.Phone,
		AddressLine1:    req.AddressLine1,
		AddressLine2:    req.AddressLine2,
		City:            req.City,
		State:           req.State,
		PostalCode:      req.PostalCode,
		GuardianName:    req.GuardianName,
		GuardianPhone:   req.GuardianPhone,
		GuardianAddress: req.GuardianAddress,
	}
	if student.RollNo != nil {
		request.StudentRollNo = *student.RollNo
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", studentID).Int64("requestID", request.ID).Msg("Personal details update request submitted")

	return request, nil
}

func isEmptyPersonalDetailsRequest(req *dto.CreatePersonalDetailsRequest) bool {
	return req.Phone == "" && req.AddressLine1 == "" && req.AddressLine2 == "" &&
		req.City == "" && req.State == "" && req.PostalCode == "" &&
		req.GuardianName == "" && req.GuardianPhone == "" && req.GuardianAddress == ""
}

// List returns requests newest first, optionally filtered by status.
func (s *personalDetailsServiceImpl) List(ctx context.Context, status models.RequestStatus) (*dto.PersonalDetailsRequestListResponse, error) {
	requests, err := s.requestRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	return &dto.PersonalDetailsRequestListResponse{Requests: requests, Total: len(requests)}, nil
}

// GetByID returns one request.
func (s *personalDetailsServiceImpl) GetByID(ctx context.Context, id int64) (*models.PersonalDetailsUpdateRequest, error) {
	return s.requestRepo.GetByID(ctx, id)
}

// Approve copies the non-empty proposed fields onto the student record and
// closes the request, both in one transaction.
func (s *personalDetailsServiceImpl) Approve(ctx context.Context, id int64, comments, wardenUsername string) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if request.Status != models.RequestPending {
		return apperrors.ErrRequestAlreadyProcessed
	}

	err = s.txRunner.InTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		student, err := repos.Users.GetByID(ctx, request.StudentID)
		if err != nil {
			return err
		}

		applyProposedDetails(student, request)

		if err := repos.Users.Update(ctx, student); err != nil {
			return err
		}

		return repos.PersonalDetails.MarkProcessed(ctx, id, models.RequestApproved, comments, wardenUsername, s.now())
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("requestID", id).Str("processedBy", wardenUsername).Msg("Personal details update approved")

	return nil
}

// applyProposedDetails copies only the fields the student actually filled
// in; empty proposals leave the record untouched.
func applyProposedDetails(student *models.User, request *models.PersonalDetailsUpdateRequest) {
	if request.Phone != "" {
		student.Phone = request.Phone
	}
	if request.AddressLine1 != "" {
		student.AddressLine1 = request.AddressLine1
	}
	if request.AddressLine2 != "" {
		student.AddressLine2 = request.AddressLine2
	}
	if request.City != "" {
		student.City = request.City
	}
	if request.State != "" {
		student.State = request.State
	}
	if request.PostalCode != "" {
		student.PostalCode = request.PostalCode
	}
	if request.GuardianName != "" {
		student.GuardianName = request.GuardianName
	}
	if request.GuardianPhone != "" {
		student.GuardianPhone = request.GuardianPhone
	}
	if request.GuardianAddress != "" {
		student.GuardianAddress = request.GuardianAddress
	}
}

// Reject closes a pending request without touching the student record.
func (s *personalDetailsServiceImpl) Reject(ctx context.Context, id int64, comments, wardenUsername string) error {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if request.Status != models.RequestPending {
		return apperrors.ErrRequestAlreadyProcessed
	}

	if err := s.requestRepo.MarkProcessed(ctx, id, models.RequestRejected, comments, wardenUsername, s.now()); err != nil {
		return err
	}

	logger.Info().Int64("requestID", id).Str("processedBy", wardenUsername).Msg("Personal details update rejected")

	return nil
}
