package services

import (
	"context"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/logger"
)

// FoodMenuService defines the interface for weekly menu operations
type FoodMenuService interface {
	GetWeeklyMenu(ctx context.Context) (*dto.FoodMenuListResponse, error)
	CreateEntry(ctx context.Context, req *dto.CreateFoodMenuRequest) (*models.FoodMenu, error)
	UpdateEntry(ctx context.Context, id int64, req *dto.UpdateFoodMenuRequest) (*models.FoodMenu, error)
	DeleteEntry(ctx context.Context, id int64) error
}

type foodMenuServiceImpl struct {
	menuRepo repositories.FoodMenuRepository
}

// NewFoodMenuService creates a new FoodMenuService
func NewFoodMenuService(menuRepo repositories.FoodMenuRepository) FoodMenuService {
	return &foodMenuServiceImpl{menuRepo: menuRepo}
}

// GetWeeklyMenu returns the menu ordered Monday through Sunday with
// breakfast before lunch before dinner.
func (s *foodMenuServiceImpl) GetWeeklyMenu(ctx context.Context) (*dto.FoodMenuListResponse, error) {
	entries, err := s.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.FoodMenuListResponse{Menu: entries, Total: len(entries)}, nil
}

// CreateEntry adds one meal to the weekly menu.
func (s *foodMenuServiceImpl) CreateEntry(ctx context.Context, req *dto.CreateFoodMenuRequest) (*models.FoodMenu, error) {
	entry := &models.FoodMenu{
		DayOfWeek: req.DayOfWeek,
		MealType:  models.MealType(req.MealType),
		Items:     req.Items,
	}

	if err := s.menuRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info().Str("day", entry.DayOfWeek).Str("meal", string(entry.MealType)).Msg("Food menu entry created")

	return entry, nil
}

// UpdateEntry replaces an existing menu entry.
func (s *foodMenuServiceImpl) UpdateEntry(ctx context.Context, id int64, req *dto.UpdateFoodMenuRequest) (*models.FoodMenu, error) {
	entry, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.DayOfWeek = req.DayOfWeek
	entry.MealType = models.MealType(req.MealType)
	entry.Items = req.Items

	if err := s.menuRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes a menu entry.
func (s *foodMenuServiceImpl) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("menuID", id).Msg("Food menu entry deleted")

	return nil
}
