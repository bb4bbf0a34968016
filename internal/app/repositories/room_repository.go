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

type roomRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db Querier) RoomRepository {
	return &roomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new room and populates its ID and CreatedAt.
func (r *roomRepository) Create(ctx context.Context, room *models.Room) error {
	sql, args, err := r.sb.Insert("rooms").
		Columns("room_number", "floor", "capacity", "occupied_beds", "room_type").
		Values(room.RoomNumber, room.Floor, room.Capacity, 0, room.RoomType).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create room query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateRoomNumber
		}
		logger.Error().Err(err).Str("roomNumber", room.RoomNumber).Msg("Error executing create room query")
		return fmt.Errorf("error creating room: %w", err)
	}

	return nil
}

// GetByID retrieves a room by ID
func (r *roomRepository) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	sql, args, err := r.sb.Select("id", "room_number", "floor", "capacity", "occupied_beds", "room_type", "created_at").
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get room query: %w", err)
	}

	room := &models.Room{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&room.ID, &room.RoomNumber, &room.Floor, &room.Capacity,
		&room.OccupiedBeds, &room.RoomType, &room.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("error getting room by ID: %w", err)
	}

	return room, nil
}

// ListWithOccupancy retrieves all rooms with the occupied bed count
// computed live from the bed rows rather than the cached column.
func (r *roomRepository) ListWithOccupancy(ctx context.Context) ([]*models.Room, error) {
	sql, args, err := r.sb.Select(
		"r.id", "r.room_number", "r.floor", "r.capacity",
		"COUNT(b.id) FILTER (WHERE b.status = 'occupied') AS occupied_beds",
		"r.room_type", "r.created_at",
	).
		From("rooms r").
		LeftJoin("beds b ON b.room_id = r.id").
		GroupBy("r.id").
		OrderBy("r.room_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	rooms := []*models.Room{}
	for rows.Next() {
		room := &models.Room{}
		if err := rows.Scan(
			&room.ID, &room.RoomNumber, &room.Floor, &room.Capacity,
			&room.OccupiedBeds, &room.RoomType, &room.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

// RecountOccupancy refreshes the cached occupied_beds column for a room
// from its bed rows. Called inside every transaction that claims or
// releases a bed.
func (r *roomRepository) RecountOccupancy(ctx context.Context, roomID int64) error {
	query := `
		UPDATE rooms
		SET occupied_beds = (
			SELECT COUNT(*) FROM beds WHERE room_id = $1 AND status = 'occupied'
		)
		WHERE id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, roomID)
	if err != nil {
		return fmt.Errorf("error recounting room occupancy: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrRoomNotFound
	}

	return nil
}
