package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/auth"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "hostelhub-test",
	})
}

func addUserWithPassword(t *testing.T, env *testEnv, username, password string, role models.Role) *models.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &models.User{
		Username:   username,
		Password:   hashed,
		Role:       role,
		FullName:   "Test User",
		FirstLogin: role == models.RoleStudent,
	}
	if role == models.RoleStudent {
		roll := username
		user.RollNo = &roll
	}
	if err := env.users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	return user
}

func TestLoginIssuesToken(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	addUserWithPassword(t, env, "CS101", "secret123", models.RoleStudent)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "CS101", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token.AccessToken == "" {
		t.Error("expected a non-empty access token")
	}
	if resp.Token.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", resp.Token.TokenType)
	}
	if !resp.FirstLogin {
		t.Error("expected first_login to be true for a fresh student account")
	}
	if resp.User == nil || resp.User.Username != "CS101" {
		t.Error("expected the user record in the response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	addUserWithPassword(t, env, "CS101", "secret123", models.RoleStudent)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "CS101", Password: "wrong"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownUserSameError(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	// An unknown username must produce the same error as a wrong
	// password so responses don't reveal which accounts exist.
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "whatever"})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestChangePasswordClearsFirstLogin(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	user := addUserWithPassword(t, env, "CS101", "initial-pw", models.RoleStudent)

	err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "initial-pw",
		NewPassword:     "brand-new-pw",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	stored := env.users.users[user.ID]
	if stored.FirstLogin {
		t.Error("expected first_login cleared after password change")
	}
	if !auth.CheckPassword(stored.Password, "brand-new-pw") {
		t.Error("stored hash does not match the new password")
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	user := addUserWithPassword(t, env, "CS101", "initial-pw", models.RoleStudent)

	err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "not-it",
		NewPassword:     "brand-new-pw",
	})
	if !errors.Is(err, apperrors.ErrWrongPassword) {
		t.Fatalf("err = %v, want ErrWrongPassword", err)
	}
}

func TestChangePasswordTooShort(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	user := addUserWithPassword(t, env, "CS101", "initial-pw", models.RoleStudent)

	err := svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "initial-pw",
		NewPassword:     "short",
	})
	if !errors.Is(err, apperrors.ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
}

func TestGetProfileIncludesRoomForStudent(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	user := addUserWithPassword(t, env, "CS101", "secret123", models.RoleStudent)
	room := env.addRoom("R101", 2)
	bed, _ := env.beds.GetByRoomAndNumber(context.Background(), room.ID, 2)
	if err := env.beds.Claim(context.Background(), bed.ID, user.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	resp, err := svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if resp.RoomNumber != "R101" {
		t.Errorf("room number = %q, want R101", resp.RoomNumber)
	}
	if resp.BedNumber != 2 {
		t.Errorf("bed number = %d, want 2", resp.BedNumber)
	}
}

func TestGetProfileUnassignedStudent(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.users, env.beds, env.rooms, testJWTService())

	user := addUserWithPassword(t, env, "CS101", "secret123", models.RoleStudent)

	resp, err := svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if resp.RoomNumber != "" || resp.BedNumber != 0 {
		t.Errorf("expected empty room info, got %q / %d", resp.RoomNumber, resp.BedNumber)
	}
}
