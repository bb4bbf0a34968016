package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/auth"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

// Indian mobile numbers: 10 digits, first digit 6-9.
var phonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)

const generatedPasswordLength = 8

// Warden office details shown on the student contact card.
const (
	wardenOfficeHours      = "Mon-Sat 10:00-17:00"
	wardenEmergencyContact = "9876500001"
)

// StudentService defines the interface for student administration
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error)
	ListStudents(ctx context.Context) (*dto.StudentListResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentWithRoomResponse, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.User, error)
	DeleteStudent(ctx context.Context, id int64) error
	AssignRoom(ctx context.Context, req *dto.AssignRoomRequest) error
	GetMyRoom(ctx context.Context, studentID int64) (*dto.MyRoomResponse, error)
	GetWardenContact(ctx context.Context) (*dto.WardenContactResponse, error)
}

type studentServiceImpl struct {
	txRunner repositories.TxRunner
	userRepo repositories.UserRepository
	roomRepo repositories.RoomRepository
	bedRepo  repositories.BedRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(
	txRunner repositories.TxRunner,
	userRepo repositories.UserRepository,
	roomRepo repositories.RoomRepository,
	bedRepo repositories.BedRepository,
) StudentService {
	return &studentServiceImpl{
		txRunner: txRunner,
		userRepo: userRepo,
		roomRepo: roomRepo,
		bedRepo:  bedRepo,
	}
}

// CreateStudent registers a new student account. The roll number becomes
// the username and an 8-character random password is generated and
// returned exactly once; only its hash is stored.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error) {
	rollNo := strings.TrimSpace(req.RollNo)
	if rollNo == "" {
		return nil, fmt.Errorf("%w: roll number cannot be empty", apperrors.ErrValidationFailed)
	}

	if !phonePattern.MatchString(req.Phone) {
		return nil, apperrors.ErrInvalidPhone
	}

	dob, err := dto.ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}

	password, err := auth.GenerateRandomPassword(generatedPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("error generating password: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	var aadhaar *string
	if req.AadhaarID != "" {
		aadhaar = &req.AadhaarID
	}

	student := &models.User{
		Username:        rollNo,
		Password:        hashed,
		Role:            models.RoleStudent,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		DateOfBirth:     dob,
		Gender:          req.Gender,
		AadhaarID:       aadhaar,
		RollNo:          &rollNo,
		Stream:          req.Stream,
		Branch:          req.Branch,
		AddressLine1:    req.AddressLine1,
		AddressLine2:    req.AddressLine2,
		City:            req.City,
		State:           req.State,
		PostalCode:      req.PostalCode,
		GuardianName:    req.GuardianName,
		GuardianPhone:   req.GuardianPhone,
		GuardianAddress: req.GuardianAddress,
		FirstLogin:      true,
	}

	if err := s.userRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentID", student.ID).Str("rollNo", rollNo).Msg("Student account created")

	return &dto.CreateStudentResponse{Student: student, Password: password}, nil
}

// ListStudents returns the full roster with room assignment info.
func (s *studentServiceImpl) ListStudents(ctx context.Context) (*dto.StudentListResponse, error) {
	students, err := s.userRepo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StudentWithRoomResponse, 0, len(students))
	for _, student := range students {
		row, err := s.withRoomInfo(ctx, student)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}

	return &dto.StudentListResponse{Students: rows, Total: len(rows)}, nil
}

// GetStudent returns one student with their room assignment.
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*dto.StudentWithRoomResponse, error) {
	student, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	if student.Role != models.RoleStudent {
		return nil, apperrors.ErrNotAStudent
	}

	return s.withRoomInfo(ctx, student)
}

func (s *studentServiceImpl) withRoomInfo(ctx context.Context, student *models.User) (*dto.StudentWithRoomResponse, error) {
	row := &dto.StudentWithRoomResponse{Student: student}

	bed, err := s.bedRepo.GetByStudentID(ctx, student.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoRoomAssigned) {
			return row, nil
		}
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, bed.RoomID)
	if err != nil {
		// Keep the roster usable even if the room row is missing.
		logger.Warn().Err(err).Int64("studentID", student.ID).Int64("roomID", bed.RoomID).Msg("Room lookup failed for assigned bed")
		row.RoomNumber = "Unknown"
		row.BedNumber = bed.BedNumber
		return row, nil
	}

	row.RoomNumber = room.RoomNumber
	row.BedNumber = bed.BedNumber

	return row, nil
}

// UpdateStudent applies a partial profile update. Only non-nil fields of
// the request change the record.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.User, error) {
	student, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}

	if student.Role != models.RoleStudent {
		return nil, apperrors.ErrNotAStudent
	}

	if req.Phone != nil {
		if !phonePattern.MatchString(*req.Phone) {
			return nil, apperrors.ErrInvalidPhone
		}
		student.Phone = *req.Phone
	}
	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.DateOfBirth != nil {
		dob, err := dto.ParseDateOfBirth(*req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		student.DateOfBirth = dob
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.AadhaarID != nil {
		student.AadhaarID = req.AadhaarID
	}
	if req.Stream != nil {
		student.Stream = *req.Stream
	}
	if req.Branch != nil {
		student.Branch = *req.Branch
	}
	if req.AddressLine1 != nil {
		student.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		student.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		student.City = *req.City
	}
	if req.State != nil {
		student.State = *req.State
	}
	if req.PostalCode != nil {
		student.PostalCode = *req.PostalCode
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = *req.GuardianPhone
	}
	if req.GuardianAddress != nil {
		student.GuardianAddress = *req.GuardianAddress
	}

	if err := s.userRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student account. The bed is released, the room
// occupancy refreshed and all of the student's requests deleted in the
// same transaction as the account removal.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	student, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrStudentNotFound
		}
		return err
	}

	if student.Role != models.RoleStudent {
		return apperrors.ErrNotAStudent
	}

	err = s.txRunner.InTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		bed, err := repos.Beds.GetByStudentID(ctx, id)
		if err != nil && !errors.Is(err, apperrors.ErrNoRoomAssigned) {
			return err
		}

		if bed != nil {
			if err := repos.Beds.Release(ctx, bed.ID); err != nil {
				return err
			}
			if err := repos.Rooms.RecountOccupancy(ctx, bed.RoomID); err != nil {
				return err
			}
		}

		if err := repos.RoomChanges.DeleteByStudent(ctx, id); err != nil {
			return err
		}
		if err := repos.PersonalDetails.DeleteByStudent(ctx, id); err != nil {
			return err
		}

		return repos.Users.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("studentID", id).Msg("Student account deleted")

	return nil
}

// AssignRoom places a student in a specific bed. The claim and the room
// occupancy refresh run in one transaction; the guarded update in the bed
// repository resolves races over the last free bed.
func (s *studentServiceImpl) AssignRoom(ctx context.Context, req *dto.AssignRoomRequest) error {
	student, err := s.userRepo.GetByRollNo(ctx, req.RollNo)
	if err != nil {
		return err
	}

	// Reject before touching the target bed so a failed assignment never
	// leaves the student's existing placement in doubt.
	_, err = s.bedRepo.GetByStudentID(ctx, student.ID)
	if err == nil {
		return apperrors.ErrAlreadyAssigned
	}
	if !errors.Is(err, apperrors.ErrNoRoomAssigned) {
		return err
	}

	if _, err := s.roomRepo.GetByID(ctx, req.RoomID); err != nil {
		return err
	}

	bed, err := s.bedRepo.GetByRoomAndNumber(ctx, req.RoomID, req.BedNumber)
	if err != nil {
		return err
	}

	if bed.StudentID != nil {
		return apperrors.ErrBedUnavailable
	}

	err = s.txRunner.InTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if err := repos.Beds.Claim(ctx, bed.ID, student.ID); err != nil {
			return err
		}
		return repos.Rooms.RecountOccupancy(ctx, req.RoomID)
	})
	if err != nil {
		return err
	}

	logger.Info().Int64("studentID", student.ID).Int64("roomID", req.RoomID).Int("bedNumber", req.BedNumber).Msg("Room assigned")

	return nil
}

// GetMyRoom returns the student's room, own bed number and roommates.
func (s *studentServiceImpl) GetMyRoom(ctx context.Context, studentID int64) (*dto.MyRoomResponse, error) {
	bed, err := s.bedRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, bed.RoomID)
	if err != nil {
		return nil, err
	}

	beds, err := s.bedRepo.ListByRoom(ctx, bed.RoomID)
	if err != nil {
		return nil, err
	}

	roommates := []dto.RoommateInfo{}
	occupied := 0
	for _, b := range beds {
		if b.StudentID == nil {
			continue
		}
		occupied++
		if *b.StudentID == studentID {
			continue
		}

		info := dto.RoommateInfo{BedNumber: b.BedNumber}
		roommate, err := s.userRepo.GetByID(ctx, *b.StudentID)
		if err != nil {
			logger.Warn().Err(err).Int64("studentID", *b.StudentID).Msg("Roommate lookup failed")
			info.FullName = "Unknown"
		} else {
			info.FullName = roommate.FullName
			if roommate.RollNo != nil {
				info.RollNo = *roommate.RollNo
			}
		}
		roommates = append(roommates, info)
	}

	room.OccupiedBeds = occupied

	return &dto.MyRoomResponse{
		Room:      room,
		BedNumber: bed.BedNumber,
		Roommates: roommates,
	}, nil
}

// GetWardenContact returns the contact card of the hostel warden.
func (s *studentServiceImpl) GetWardenContact(ctx context.Context) (*dto.WardenContactResponse, error) {
	warden, err := s.userRepo.GetFirstWarden(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.WardenContactResponse{
		Name:             warden.FullName,
		Email:            warden.Email,
		Phone:            warden.Phone,
		OfficeHours:      wardenOfficeHours,
		EmergencyContact: wardenEmergencyContact,
	}, nil
}
