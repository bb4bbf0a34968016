package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/auth"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
}

type authServiceImpl struct {
	userRepo   repositories.UserRepository
	bedRepo    repositories.BedRepository
	roomRepo   repositories.RoomRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	bedRepo repositories.BedRepository,
	roomRepo repositories.RoomRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		bedRepo:    bedRepo,
		roomRepo:   roomRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user by username and password and issues a token.
// A failed lookup and a wrong password produce the same error so the
// response does not leak which usernames exist.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.LoginResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User:       user,
		FirstLogin: user.FirstLogin,
	}, nil
}

// ChangePassword verifies the current password and stores a new hash. The
// first-login flag is cleared as part of the update.
func (s *authServiceImpl) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	if len(req.NewPassword) < 6 {
		return apperrors.ErrWeakPassword
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, req.CurrentPassword) {
		return apperrors.ErrWrongPassword
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}

	logger.Info().Int64("userID", userID).Msg("Password changed")

	return nil
}

// GetProfile returns the authenticated user's record, with the current
// room assignment attached for students.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{User: user}

	if user.Role == models.RoleStudent {
		bed, err := s.bedRepo.GetByStudentID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoRoomAssigned) {
				return resp, nil
			}
			return nil, err
		}

		room, err := s.roomRepo.GetByID(ctx, bed.RoomID)
		if err != nil {
			return nil, err
		}

		resp.RoomNumber = room.RoomNumber
		resp.BedNumber = bed.BedNumber
	}

	return resp, nil
}
