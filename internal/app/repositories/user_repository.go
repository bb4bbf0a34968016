package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/dberrors"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

type userRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new user repository
func NewUserRepository(db Querier) UserRepository {
	return &userRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var userColumns = []string{
	"id", "username", "password", "role", "full_name", "email", "phone",
	"date_of_birth", "gender", "aadhaar_id", "roll_no", "stream", "branch",
	"address_line1", "address_line2", "city", "state", "postal_code",
	"guardian_name", "guardian_phone", "guardian_address",
	"first_login", "created_at",
}

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.Role, &user.FullName, &user.Email, &user.Phone,
		&user.DateOfBirth, &user.Gender, &user.AadhaarID, &user.RollNo, &user.Stream, &user.Branch,
		&user.AddressLine1, &user.AddressLine2, &user.City, &user.State, &user.PostalCode,
		&user.GuardianName, &user.GuardianPhone, &user.GuardianAddress,
		&user.FirstLogin, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// mapUserUniqueViolation translates constraint violations into domain errors.
func mapUserUniqueViolation(err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
		return apperrors.ErrUsernameExists
	case dberrors.IsDuplicateConstraintError(err, "users_aadhaar_id_key"):
		return apperrors.ErrAadhaarExists
	case dberrors.IsDuplicateConstraintError(err, "users_phone_key"):
		return apperrors.ErrPhoneExists
	}
	return nil
}

// Create inserts a new user and populates its ID and CreatedAt.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns(
			"username", "password", "role", "full_name", "email", "phone",
			"date_of_birth", "gender", "aadhaar_id", "roll_no", "stream", "branch",
			"address_line1", "address_line2", "city", "state", "postal_code",
			"guardian_name", "guardian_phone", "guardian_address", "first_login",
		).
		Values(
			user.Username, user.Password, user.Role, user.FullName, user.Email, user.Phone,
			user.DateOfBirth, user.Gender, user.AadhaarID, user.RollNo, user.Stream, user.Branch,
			user.AddressLine1, user.AddressLine2, user.City, user.State, user.PostalCode,
			user.GuardianName, user.GuardianPhone, user.GuardianAddress, user.FirstLogin,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if mapped := mapUserUniqueViolation(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by username query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}

	return user, nil
}

// GetByRollNo retrieves a student by roll number
func (r *userRepository) GetByRollNo(ctx context.Context, rollNo string) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"roll_no": rollNo, "role": models.RoleStudent}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user by roll number query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting user by roll number: %w", err)
	}

	return user, nil
}

// GetFirstWarden retrieves the earliest created warden account.
func (r *userRepository) GetFirstWarden(ctx context.Context) (*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": models.RoleWarden}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get warden query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrWardenNotFound
		}
		return nil, fmt.Errorf("error getting warden: %w", err)
	}

	return user, nil
}

// ListStudents retrieves all student accounts ordered by roll number.
func (r *userRepository) ListStudents(ctx context.Context) ([]*models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"role": models.RoleStudent}).
		OrderBy("roll_no ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update updates a user's profile fields. The password and role are not
// touched here; UpdatePassword handles credentials.
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"full_name":        user.FullName,
			"email":            user.Email,
			"phone":            user.Phone,
			"date_of_birth":    user.DateOfBirth,
			"gender":           user.Gender,
			"aadhaar_id":       user.AadhaarID,
			"stream":           user.Stream,
			"branch":           user.Branch,
			"address_line1":    user.AddressLine1,
			"address_line2":    user.AddressLine2,
			"city":             user.City,
			"state":            user.State,
			"postal_code":      user.PostalCode,
			"guardian_name":    user.GuardianName,
			"guardian_phone":   user.GuardianPhone,
			"guardian_address": user.GuardianAddress,
		}).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := mapUserUniqueViolation(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword sets a new password hash and clears the first-login flag.
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", hashedPassword).
		Set("first_login", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user by ID
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
