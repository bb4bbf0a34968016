package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adityavkr/hostelhub/internal/app/models"
	"github.com/adityavkr/hostelhub/internal/app/models/dto"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
)

func TestCreateMenuEntry(t *testing.T) {
	env := newTestEnv()
	svc := NewFoodMenuService(env.menus)

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateFoodMenuRequest{
		DayOfWeek: "Monday",
		MealType:  "breakfast",
		Items:     "Idli, Sambar, Tea",
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if entry.MealType != models.MealBreakfast {
		t.Errorf("meal type = %q, want breakfast", entry.MealType)
	}
}

func TestCreateMenuEntryDuplicateSlot(t *testing.T) {
	env := newTestEnv()
	svc := NewFoodMenuService(env.menus)

	req := &dto.CreateFoodMenuRequest{DayOfWeek: "Monday", MealType: "breakfast", Items: "Idli"}
	if _, err := svc.CreateEntry(context.Background(), req); err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	_, err := svc.CreateEntry(context.Background(), &dto.CreateFoodMenuRequest{
		DayOfWeek: "Monday",
		MealType:  "breakfast",
		Items:     "Dosa",
	})
	if !errors.Is(err, apperrors.ErrDuplicateMenuEntry) {
		t.Fatalf("err = %v, want ErrDuplicateMenuEntry", err)
	}
}

func TestGetWeeklyMenuOrdering(t *testing.T) {
	env := newTestEnv()
	svc := NewFoodMenuService(env.menus)

	// Insert out of order on purpose.
	seed := []dto.CreateFoodMenuRequest{
		{DayOfWeek: "Sunday", MealType: "dinner", Items: "Lemon Rice"},
		{DayOfWeek: "Monday", MealType: "lunch", Items: "Rice, Dal"},
		{DayOfWeek: "Monday", MealType: "breakfast", Items: "Idli"},
		{DayOfWeek: "Tuesday", MealType: "breakfast", Items: "Poha"},
	}
	for i := range seed {
		if _, err := svc.CreateEntry(context.Background(), &seed[i]); err != nil {
			t.Fatalf("CreateEntry %d: %v", i, err)
		}
	}

	resp, err := svc.GetWeeklyMenu(context.Background())
	if err != nil {
		t.Fatalf("GetWeeklyMenu: %v", err)
	}
	if resp.Total != 4 {
		t.Fatalf("total = %d, want 4", resp.Total)
	}

	want := []string{"Idli", "Rice, Dal", "Poha", "Lemon Rice"}
	for i, items := range want {
		if resp.Menu[i].Items != items {
			t.Errorf("entry %d = %q, want %q (Monday..Sunday, breakfast before dinner)", i, resp.Menu[i].Items, items)
		}
	}
}

func TestUpdateMenuEntry(t *testing.T) {
	env := newTestEnv()
	svc := NewFoodMenuService(env.menus)

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateFoodMenuRequest{
		DayOfWeek: "Monday",
		MealType:  "breakfast",
		Items:     "Idli",
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	updated, err := svc.UpdateEntry(context.Background(), entry.ID, &dto.UpdateFoodMenuRequest{
		DayOfWeek: "Monday",
		MealType:  "breakfast",
		Items:     "Dosa, Chutney",
	})
	if err != nil {
		t.Fatalf("UpdateEntry: %v", err)
	}
	if updated.Items != "Dosa, Chutney" {
		t.Errorf("items = %q, want the updated list", updated.Items)
	}
}

func TestUpdateMenuEntryNotFound(t *testing.T) {
	env := newTestEnv()
	svc := NewFoodMenuService(env.menus)

	_, err := svc.UpdateEntry(context.Background(), 42, &dto.UpdateFoodMenuRequest{
		DayOfWeek: "Monday",
		MealType:  "breakfast",
		Items:     "Dosa",
	})
	if !errors.Is(err, apperrors.ErrMenuItemNotFound) {
		t.Fatalf("err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestDeleteMenuEntry(t *testing.T) {
	env := newTestEnv()
	svc := NewFoodMenuService(env.menus)

	entry, err := svc.CreateEntry(context.Background(), &dto.CreateFoodMenuRequest{
		DayOfWeek: "Friday",
		MealType:  "dinner",
		Items:     "Palak Paneer",
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}

	if err := svc.DeleteEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := svc.DeleteEntry(context.Background(), entry.ID); !errors.Is(err, apperrors.ErrMenuItemNotFound) {
		t.Fatalf("second delete err = %v, want ErrMenuItemNotFound", err)
	}
}
