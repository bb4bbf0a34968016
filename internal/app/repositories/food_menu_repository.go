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

type foodMenuRepository struct {
	db Querier
	sb squirrel.StatementBuilderType
}

// NewFoodMenuRepository creates a new food menu repository
func NewFoodMenuRepository(db Querier) FoodMenuRepository {
	return &foodMenuRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new menu entry and populates its ID and CreatedAt.
func (r *foodMenuRepository) Create(ctx context.Context, entry *models.FoodMenu) error {
	sql, args, err := r.sb.Insert("food_menus").
		Columns("day_of_week", "meal_type", "items").
		Values(entry.DayOfWeek, entry.MealType, entry.Items).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create food menu query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateMenuEntry
		}
		return fmt.Errorf("error creating food menu entry: %w", err)
	}

	return nil
}

// GetByID retrieves a menu entry by ID
func (r *foodMenuRepository) GetByID(ctx context.Context, id int64) (*models.FoodMenu, error) {
	sql, args, err := r.sb.Select("id", "meal_type", "day_of_week", "items", "created_at").
		From("food_menus").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get food menu query: %w", err)
	}

	entry := &models.FoodMenu{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.MealType, &entry.DayOfWeek, &entry.Items, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("error getting food menu entry by ID: %w", err)
	}

	return entry, nil
}

// ListAll retrieves the weekly menu in display order: Monday through
// Sunday, breakfast before lunch before dinner.
func (r *foodMenuRepository) ListAll(ctx context.Context) ([]*models.FoodMenu, error) {
	query := `
		SELECT id, meal_type, day_of_week, items, created_at
		FROM food_menus
		ORDER BY
			array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], day_of_week),
			array_position(ARRAY['breakfast','lunch','dinner'], meal_type)
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying food menus: %w", err)
	}
	defer rows.Close()

	entries := []*models.FoodMenu{}
	for rows.Next() {
		entry := &models.FoodMenu{}
		if err := rows.Scan(&entry.ID, &entry.MealType, &entry.DayOfWeek, &entry.Items, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning food menu row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating food menu rows: %w", err)
	}

	return entries, nil
}

// Update replaces the day, meal and items of an existing entry.
func (r *foodMenuRepository) Update(ctx context.Context, entry *models.FoodMenu) error {
	sql, args, err := r.sb.Update("food_menus").
		SetMap(map[string]interface{}{
			"day_of_week": entry.DayOfWeek,
			"meal_type":   entry.MealType,
			"items":       entry.Items,
		}).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update food menu query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateMenuEntry
		}
		return fmt.Errorf("error updating food menu entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMenuItemNotFound
	}

	return nil
}

// Delete removes a menu entry by ID
func (r *foodMenuRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("food_menus").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete food menu query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting food menu entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMenuItemNotFound
	}

	return nil
}

// Count returns the number of menu entries, used by the seeder to decide
// whether a default weekly menu is needed.
func (r *foodMenuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM food_menus`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting food menu entries: %w", err)
	}

	return count, nil
}
