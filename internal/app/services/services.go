package services

import (
	"github.com/adityavkr/hostelhub/internal/app/repositories"
	"github.com/adityavkr/hostelhub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	Auth            AuthService
	Room            RoomService
	Student         StudentService
	RoomChange      RoomChangeService
	PersonalDetails PersonalDetailsService
	FoodMenu        FoodMenuService
	Export          ExportService
}

// NewServices wires every service to the shared repositories and the
// transaction runner.
func NewServices(repos *repositories.Repositories, txRunner repositories.TxRunner, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:            NewAuthService(repos.Users, repos.Beds, repos.Rooms, jwtService),
		Room:            NewRoomService(txRunner, repos.Rooms, repos.Beds, repos.Users),
		Student:         NewStudentService(txRunner, repos.Users, repos.Rooms, repos.Beds),
		RoomChange:      NewRoomChangeService(txRunner, repos.RoomChanges, repos.Users, repos.Rooms, repos.Beds),
		PersonalDetails: NewPersonalDetailsService(txRunner, repos.PersonalDetails, repos.Users),
		FoodMenu:        NewFoodMenuService(repos.FoodMenus),
		Export:          NewExportService(repos.Users, repos.Rooms, repos.Beds),
	}
}
