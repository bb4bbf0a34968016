package models

import "time"

// FoodMenu is one meal entry of the weekly mess menu.
type FoodMenu struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	MealType  MealType  `json:"meal_type" db:"meal_type" example:"breakfast"`
	DayOfWeek string    `json:"day_of_week" db:"day_of_week" example:"Monday"`
	Items     string    `json:"items" db:"items" example:"Idli, Sambar, Tea"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
