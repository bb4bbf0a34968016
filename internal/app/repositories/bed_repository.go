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
)

type bedRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewBedRepository creates a new bed repository
func NewBedRepository(db Querier) BedRepository {
	return &bedRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateForRoom inserts beds numbered 1..capacity for a freshly created room.
func (r *bedRepository) CreateForRoom(ctx context.Context, roomID int64, capacity int) error {
	builder := r.sb.Insert("beds").Columns("room_id", "bed_number", "status")
	for n := 1; n <= capacity; n++ {
		builder = builder.Values(roomID, n, models.BedAvailable)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create beds query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating beds: %w", err)
	}

	return nil
}

// GetByID retrieves a bed by ID
func (r *bedRepository) GetByID(ctx context.Context, id int64) (*models.Bed, error) {
	sql, args, err := r.sb.Select("id", "room_id", "bed_number", "student_id", "status").
		From("beds").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get bed query: %w", err)
	}

	bed := &models.Bed{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&bed.ID, &bed.RoomID, &bed.BedNumber, &bed.StudentID, &bed.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBedNotFound
		}
		return nil, fmt.Errorf("error getting bed by ID: %w", err)
	}

	return bed, nil
}

// GetByRoomAndNumber retrieves a bed by room ID and bed number.
func (r *bedRepository) GetByRoomAndNumber(ctx context.Context, roomID int64, bedNumber int) (*models.Bed, error) {
	sql, args, err := r.sb.Select("id", "room_id", "bed_number", "student_id", "status").
		From("beds").
		Where(squirrel.Eq{"room_id": roomID, "bed_number": bedNumber}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get bed query: %w", err)
	}

	bed := &models.Bed{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&bed.ID, &bed.RoomID, &bed.BedNumber, &bed.StudentID, &bed.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBedNotFound
		}
		return nil, fmt.Errorf("error getting bed by room and number: %w", err)
	}

	return bed, nil
}

// GetByStudentID retrieves the bed currently occupied by a student.
func (r *bedRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.Bed, error) {
	sql, args, err := r.sb.Select("id", "room_id", "bed_number", "student_id", "status").
		From("beds").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get bed by student query: %w", err)
	}

	bed := &models.Bed{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&bed.ID, &bed.RoomID, &bed.BedNumber, &bed.StudentID, &bed.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoRoomAssigned
		}
		return nil, fmt.Errorf("error getting bed by student ID: %w", err)
	}

	return bed, nil
}

// ListByRoom retrieves all beds of a room ordered by bed number.
func (r *bedRepository) ListByRoom(ctx context.Context, roomID int64) ([]*models.Bed, error) {
	sql, args, err := r.sb.Select("id", "room_id", "bed_number", "student_id", "status").
		From("beds").
		Where(squirrel.Eq{"room_id": roomID}).
		OrderBy("bed_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list beds query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying beds: %w", err)
	}
	defer rows.Close()

	beds := []*models.Bed{}
	for rows.Next() {
		bed := &models.Bed{}
		if err := rows.Scan(&bed.ID, &bed.RoomID, &bed.BedNumber, &bed.StudentID, &bed.Status); err != nil {
			return nil, fmt.Errorf("error scanning bed row: %w", err)
		}
		beds = append(beds, bed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bed rows: %w", err)
	}

	return beds, nil
}

// Claim assigns a bed to a student. The guard on student_id IS NULL makes
// the claim atomic under concurrency: whoever updates the row first wins
// and everyone else sees zero rows affected.
func (r *bedRepository) Claim(ctx context.Context, bedID, studentID int64) error {
	query := `
		UPDATE beds
		SET student_id = $2, status = 'occupied'
		WHERE id = $1 AND student_id IS NULL
	`

	cmdTag, err := r.db.Exec(ctx, query, bedID, studentID)
	if err != nil {
		// The partial unique index on student_id rejects a second bed
		// for the same student.
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyAssigned
		}
		return fmt.Errorf("error claiming bed: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBedNoLongerAvailable
	}

	return nil
}

// Release frees a bed regardless of who occupies it.
func (r *bedRepository) Release(ctx context.Context, bedID int64) error {
	query := `
		UPDATE beds
		SET student_id = NULL, status = 'available'
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, bedID)
	if err != nil {
		return fmt.Errorf("error releasing bed: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBedNotFound
	}

	return nil
}

// ReleaseByStudent frees whatever bed the student occupies. It is a no-op
// for students without a bed.
func (r *bedRepository) ReleaseByStudent(ctx context.Context, studentID int64) error {
	query := `
		UPDATE beds
		SET student_id = NULL, status = 'available'
		WHERE student_id = $1
	`

	if _, err := r.db.Exec(ctx, query, studentID); err != nil {
		return fmt.Errorf("error releasing student bed: %w", err)
	}

	return nil
}
