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
)

type roomChangeRequestRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewRoomChangeRequestRepository creates a new room change request repository
func NewRoomChangeRequestRepository(db Querier) RoomChangeRequestRepository {
	return &roomChangeRequestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var roomChangeColumns = []string{
	"id", "student_id", "current_room_id", "requested_room_id", "requested_bed_number",
	"reason", "status", "requested_at", "processed_at", "processed_by",
}

func scanRoomChangeRequest(row pgx.Row) (*models.RoomChangeRequest, error) {
	req := &models.RoomChangeRequest{}
	err := row.Scan(
		&req.ID, &req.StudentID, &req.CurrentRoomID, &req.RequestedRoomID, &req.RequestedBedNumber,
		&req.Reason, &req.Status, &req.RequestedAt, &req.ProcessedAt, &req.ProcessedBy,
	)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Create inserts a new room change request and populates its ID and RequestedAt.
func (r *roomChangeRequestRepository) Create(ctx context.Context, req *models.RoomChangeRequest) error {
	sql, args, err := r.sb.Insert("room_change_requests").
		Columns("student_id", "current_room_id", "requested_room_id", "requested_bed_number", "reason", "status").
		Values(req.StudentID, req.CurrentRoomID, req.RequestedRoomID, req.RequestedBedNumber, req.Reason, models.RequestPending).
		Suffix("RETURNING id, requested_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create room change request query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&req.ID, &req.RequestedAt)
	if err != nil {
		return fmt.Errorf("error creating room change request: %w", err)
	}

	req.Status = models.RequestPending

	return nil
}

// GetByID retrieves a room change request by ID
func (r *roomChangeRequestRepository) GetByID(ctx context.Context, id int64) (*models.RoomChangeRequest, error) {
	sql, args, err := r.sb.Select(roomChangeColumns...).
		From("room_change_requests").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room change request query: %w", err)
	}

	req, err := scanRoomChangeRequest(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error getting room change request by ID: %w", err)
	}

	return req, nil
}

// List retrieves room change requests, optionally filtered by status.
// Pass an empty status to list everything.
func (r *roomChangeRequestRepository) List(ctx context.Context, status models.RequestStatus) ([]*models.RoomChangeRequest, error) {
	builder := r.sb.Select(roomChangeColumns...).
		From("room_change_requests").
		OrderBy("requested_at DESC")

	if status != "" {
		builder = builder.Where(squirrel.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list room change requests query: %w", err)
	}

	return r.queryRequests(ctx, sql, args)
}

// ListByStudent retrieves all requests submitted by a student.
func (r *roomChangeRequestRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.RoomChangeRequest, error) {
	sql, args, err := r.sb.Select(roomChangeColumns...).
		From("room_change_requests").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("requested_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list room change requests query: %w", err)
	}

	return r.queryRequests(ctx, sql, args)
}

func (r *roomChangeRequestRepository) queryRequests(ctx context.Context, sql string, args []interface{}) ([]*models.RoomChangeRequest, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying room change requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.RoomChangeRequest{}
	for rows.Next() {
		req, err := scanRoomChangeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning room change request row: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room change request rows: %w", err)
	}

	return requests, nil
}

// MarkProcessed moves a pending request to a terminal status. The guard on
// status = 'pending' makes processing idempotent-safe: a request can only
// be decided once, even under concurrent warden actions.
func (r *roomChangeRequestRepository) MarkProcessed(ctx context.Context, id int64, status models.RequestStatus, processedBy string, processedAt time.Time) error {
	query := `
		UPDATE room_change_requests
		SET status = $2, processed_by = $3, processed_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	cmdTag, err := r.db.Exec(ctx, query, id, status, processedBy, processedAt)
	if err != nil {
		return fmt.Errorf("error processing room change request: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRequestAlreadyProcessed
	}

	return nil
}

// DeleteByStudent removes all requests of a student, used when the
// student account is deleted.
func (r *roomChangeRequestRepository) DeleteByStudent(ctx context.Context, studentID int64) error {
	sql, args, err := r.sb.Delete("room_change_requests").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete room change requests query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error deleting room change requests: %w", err)
	}

	return nil
}
