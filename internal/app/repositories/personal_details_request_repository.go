package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/dberrors"
)

type personalDetailsRequestRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewPersonalDetailsRequestRepository creates a new personal details request repository
func NewPersonalDetailsRequestRepository(db Querier) PersonalDetailsRequestRepository {
	return &personalDetailsRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var personalDetailsColumns = []string{
	"id", "student_id", "student_name", "student_roll_no",
	"phone", "address_line1", "address_line2", "city", "state", "postal_code",
	"guardian_name", "guardian_phone", "guardian_address",
	"status", "warden_comments", "created_at", "processed_at", "processed_by",
}

func scanPersonalDetailsRequest(row pgx.Row) (*models.PersonalDetailsUpdateRequest, error) {
	req := &models.PersonalDetailsUpdateRequest{}
	err := row.Scan(
		&req.ID, &req.StudentID, &req.StudentName, &req.StudentRollNo,
		&req.Phone, &req.AddressLine1, &req.AddressLine2, &req.City, &req.State, &req.PostalCode,
		&req.GuardianName, &req.GuardianPhone, &req.GuardianAddress,
		&req.Status, &req.WardenComments, &req.CreatedAt, &req.ProcessedAt, &req.ProcessedBy,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Create inserts a new request and populates its ID and CreatedAt. The
// partial unique index on (student_id) WHERE status = 'pending' rejects a
// second open request from the same student.
func (r *personalDetailsRequestRepository) Create(ctx context.Context, req *models.PersonalDetailsUpdateRequest) error {
	sql, args, err := r.sb.Insert("personal_details_update_requests").
		Columns(
			"student_id", "student_name", "student_roll_no",
			"phone", "address_line1", "address_line2", "city", "state", "postal_code",
			"guardian_name", "guardian_phone", "guardian_address", "status",
		).
		Values(
			req.StudentID, req.StudentName, req.StudentRollNo,
			req.Phone, req.AddressLine1, req.AddressLine2, req.City, req.State, req.PostalCode,
			req.GuardianName, req.GuardianPhone, req.GuardianAddress, models.RequestPending,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create personal details request query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicatePendingRequest
		}
		return fmt.Errorf("error creating personal details request: %w", err)
	}

	req.Status = models.RequestPending

	return nil
}

// GetByID retrieves a personal details request by ID
func (r *personalDetailsRequestRepository) GetByID(ctx context.Context, id int64) (*models.PersonalDetailsUpdateRequest, error) {
	sql, args, err := r.sb.Select(personalDetailsColumns...).
		From("personal_details_update_requests").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get personal details request query: %w", err)
	}

	req, err := scanPersonalDetailsRequest(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error getting personal details request by ID: %w", err)
	}

	return req, nil
}

// List retrieves requests, optionally filtered by status. Pass an empty
// status to list everything.
func (r *personalDetailsRequestRepository) List(ctx context.Context, status models.RequestStatus) ([]*models.PersonalDetailsUpdateRequest, error) {
	builder := r.sb.Select(personalDetailsColumns...).
		From("personal_details_update_requests").
		OrderBy("created_at DESC")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list personal details requests query: %w", err)
	}

	return r.queryRequests(ctx, sql, args)
}

// ListByStudent retrieves all requests submitted by a student.
func (r *personalDetailsRequestRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.PersonalDetailsUpdateRequest, error) {
	sql, args, err := r.sb.Select(personalDetailsColumns...).
		From("personal_details_update_requests").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list personal details requests query: %w", err)
	}

	return r.queryRequests(ctx, sql, args)
}

func (r *personalDetailsRequestRepository) queryRequests(ctx context.Context, sql string, args []interface{}) ([]*models.PersonalDetailsUpdateRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying personal details requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.PersonalDetailsUpdateRequest{}
	for rows.Next() {
		req, err := scanPersonalDetailsRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning personal details request row: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating personal details request rows: %w", err)
	}

	return requests, nil
}

// HasPendingForStudent reports whether the student already has an open request.
func (r *personalDetailsRequestRepository) HasPendingForStudent(ctx context.Context, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM personal_details_update_requests
			WHERE student_id = $1 AND status = 'pending'
		)`,
		studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking pending personal details request: %w", err)
	}

	return exists, nil
}

// MarkProcessed moves a pending request to a terminal status. The guard on
// status = 'pending' ensures a request is decided at most once.
func (r *personalDetailsRequestRepository) MarkProcessed(ctx context.Context, id int64, status models.RequestStatus, comments, processedBy string, processedAt time.Time) error {
	query := `
		UPDATE personal_details_update_requests
		SET status = $2, warden_comments = $3, processed_by = $4, processed_at = $5
		WHERE id = $1 AND status = 'pending'
	`

	cmdTag, err := r.db.Exec(ctx, query, id, status, comments, processedBy, processedAt)
	if err != nil {
		return fmt.Errorf("error processing personal details request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRequestAlreadyProcessed
	}

	return nil
}

// DeleteByStudent removes all requests of a student, used when the
// student account is deleted.
func (r *personalDetailsRequestRepository) DeleteByStudent(ctx context.Context, studentID int64) error {
	sql, args, err := r.sb.Delete("personal_details_update_requests").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete personal details requests query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting personal details requests: %w", err)
	}

	return nil
}
