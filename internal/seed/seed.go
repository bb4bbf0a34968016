package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/adityavkr/hostelhub/internal/app/models"
	appRepos "github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/config"
	"github.com/adityavkr/hostelhub/internal/pkg/apperrors"
	"github.com/adityavkr/hostelhub/internal/pkg/auth"
)

// defaultMenu is the starter weekly menu, inserted once on an empty table.
var defaultMenu = []models.FoodMenu{
	{DayOfWeek: "Monday", MealType: models.MealBreakfast, Items: "Idli, Sambar, Chutney, Tea"},
	{DayOfWeek: "Monday", MealType: models.MealLunch, Items: "Rice, Dal, Mixed Vegetable Curry, Curd"},
	{DayOfWeek: "Monday", MealType: models.MealDinner, Items: "Chapati, Paneer Butter Masala, Rice"},
	{DayOfWeek: "Tuesday", MealType: models.MealBreakfast, Items: "Poha, Banana, Tea"},
	{DayOfWeek: "Tuesday", MealType: models.MealLunch, Items: "Rice, Rajma, Aloo Gobi, Salad"},
	{DayOfWeek: "Tuesday", MealType: models.MealDinner, Items: "Chapati, Chana Masala, Jeera Rice"},
	{DayOfWeek: "Wednesday", MealType: models.MealBreakfast, Items: "Upma, Coconut Chutney, Coffee"},
	{DayOfWeek: "Wednesday", MealType: models.MealLunch, Items: "Rice, Sambar, Cabbage Poriyal, Curd"},
	{DayOfWeek: "Wednesday", MealType: models.MealDinner, Items: "Chapati, Dal Tadka, Veg Pulao"},
	{DayOfWeek: "Thursday", MealType: models.MealBreakfast, Items: "Paratha, Curd, Pickle, Tea"},
	{DayOfWeek: "Thursday", MealType: models.MealLunch, Items: "Rice, Kadhi, Bhindi Fry, Papad"},
	{DayOfWeek: "Thursday", MealType: models.MealDinner, Items: "Chapati, Mixed Dal, Tomato Rice"},
	{DayOfWeek: "Friday", MealType: models.MealBreakfast, Items: "Dosa, Sambar, Chutney, Tea"},
	{DayOfWeek: "Friday", MealType: models.MealLunch, Items: "Rice, Dal Fry, Aloo Matar, Salad"},
	{DayOfWeek: "Friday", MealType: models.MealDinner, Items: "Chapati, Palak Paneer, Rice, Sweet"},
	{DayOfWeek: "Saturday", MealType: models.MealBreakfast, Items: "Puri, Aloo Bhaji, Tea"},
	{DayOfWeek: "Saturday", MealType: models.MealLunch, Items: "Veg Biryani, Raita, Papad"},
	{DayOfWeek: "Saturday", MealType: models.MealDinner, Items: "Chapati, Dal Makhani, Rice"},
	{DayOfWeek: "Sunday", MealType: models.MealBreakfast, Items: "Chole Bhature, Lassi"},
	{DayOfWeek: "Sunday", MealType: models.MealLunch, Items: "Rice, Sambar, Potato Fry, Curd, Ice Cream"},
	{DayOfWeek: "Sunday", MealType: models.MealDinner, Items: "Chapati, Veg Kurma, Lemon Rice"},
}

// defaultRooms is the starter room inventory, created with their beds on an
// empty rooms table.
var defaultRooms = []models.Room{
	{RoomNumber: "R101", Floor: 1, Capacity: 2, RoomType: "double"},
	{RoomNumber: "R102", Floor: 1, Capacity: 3, RoomType: "triple"},
	{RoomNumber: "R103", Floor: 1, Capacity: 4, RoomType: "quad"},
	{RoomNumber: "R201", Floor: 2, Capacity: 2, RoomType: "double"},
	{RoomNumber: "R202", Floor: 2, Capacity: 3, RoomType: "triple"},
	{RoomNumber: "R203", Floor: 2, Capacity: 4, RoomType: "quad"},
}

// CreateDefaultData seeds the default warden account, a starter room
// inventory and a starter weekly menu if they don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)

	lgr.Info().Msg("Checking/Creating default data (warden account, rooms, weekly menu)...")
	var finalErr error

	if err := seedWarden(ctx, repos.Users, cfg, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedRooms(ctx, repos.Rooms, repos.Beds, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedFoodMenu(ctx, repos.FoodMenus, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedWarden(ctx context.Context, users appRepos.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	_, err := users.GetByUsername(ctx, cfg.Seed.WardenUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for default warden")
		return err
	}

	hashed, err := auth.HashPassword(cfg.Seed.WardenPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default warden password")
		return err
	}

	warden := &models.User{
		Username:   cfg.Seed.WardenUsername,
		Password:   hashed,
		Role:       models.RoleWarden,
		FullName:   cfg.Seed.WardenName,
		FirstLogin: false,
	}
	if err := users.Create(ctx, warden); err != nil {
		lgr.Error().Err(err).Msg("Error creating default warden")
		return err
	}

	lgr.Info().Str("username", warden.Username).Msg("Default warden account created")
	return nil
}

func seedRooms(ctx context.Context, rooms appRepos.RoomRepository, beds appRepos.BedRepository, lgr zerolog.Logger) error {
	existing, err := rooms.ListWithOccupancy(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing rooms for seeding")
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	var finalErr error
	for i := range defaultRooms {
		room := defaultRooms[i]
		if err := rooms.Create(ctx, &room); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateRoomNumber) {
				continue
			}
			lgr.Error().Err(err).Str("room_number", room.RoomNumber).Msg("Error seeding room")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err := beds.CreateForRoom(ctx, room.ID, room.Capacity); err != nil {
			lgr.Error().Err(err).Str("room_number", room.RoomNumber).Msg("Error seeding beds for room")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if finalErr == nil {
		lgr.Info().Int("rooms", len(defaultRooms)).Msg("Default room inventory created")
	}
	return finalErr
}

func seedFoodMenu(ctx context.Context, menus appRepos.FoodMenuRepository, lgr zerolog.Logger) error {
	count, err := menus.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting food menu entries")
		return err
	}
	if count > 0 {
		return nil
	}

	var finalErr error
	for i := range defaultMenu {
		entry := defaultMenu[i]
		if err := menus.Create(ctx, &entry); err != nil && !errors.Is(err, apperrors.ErrDuplicateMenuEntry) {
			lgr.Error().Err(err).Str("day", entry.DayOfWeek).Str("meal", string(entry.MealType)).Msg("Error seeding menu entry")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if finalErr == nil {
		lgr.Info().Int("entries", len(defaultMenu)).Msg("Default weekly menu created")
	}
	return finalErr
}
