package dto

import "github.com/adityavkr/hostelhub/internal/app/models"

// CreateFoodMenuRequest represents a new weekly menu entry.
type CreateFoodMenuRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday" example:"Monday"`
	MealType  string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner" example:"breakfast"`
	Items     string `json:"items" binding:"required" example:"Idli, Sambar, Tea"`
}

// UpdateFoodMenuRequest represents changes to an existing menu entry.
type UpdateFoodMenuRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	MealType  string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner"`
	Items     string `json:"items" binding:"required"`
}

// FoodMenuListResponse represents the full weekly menu in display order.
type FoodMenuListResponse struct {
	Menu  []*models.FoodMenu `json:"menu"`
	Total int                `json:"total"`
}
