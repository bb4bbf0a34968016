package repositories

import (
	"context"
	"time"

	"github.com/adityavkr/hostelhub/internal/app/models"
)

// UserRepository handles database operations for users (students and wardens).
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByRollNo(ctx context.Context, rollNo string) (*models.User, error)
	GetFirstWarden(ctx context.Context) (*models.User, error)
	ListStudents(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
	Delete(ctx context.Context, id int64) error
}

// RoomRepository handles database operations for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	ListWithOccupancy(ctx context.Context) ([]*models.Room, error)
	RecountOccupancy(ctx context.Context, roomID int64) error
}

// BedRepository handles database operations for beds.
type BedRepository interface {
	CreateForRoom(ctx context.Context, roomID int64, capacity int) error
	GetByID(ctx context.Context, id int64) (*models.Bed, error)
	GetByRoomAndNumber(ctx context.Context, roomID int64, bedNumber int) (*models.Bed, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.Bed, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*models.Bed, error)
	Claim(ctx context.Context, bedID, studentID int64) error
	Release(ctx context.Context, bedID int64) error
	ReleaseByStudent(ctx context.Context, studentID int64) error
}

// RoomChangeRequestRepository handles database operations for room change requests.
type RoomChangeRequestRepository interface {
	Create(ctx context.Context, req *models.RoomChangeRequest) error
	GetByID(ctx context.Context, id int64) (*models.RoomChangeRequest, error)
	List(ctx context.Context, status models.RequestStatus) ([]*models.RoomChangeRequest, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.RoomChangeRequest, error)
	MarkProcessed(ctx context.Context, id int64, status models.RequestStatus, processedBy string, processedAt time.Time) error
	DeleteByStudent(ctx context.Context, studentID int64) error
}

// PersonalDetailsRequestRepository handles database operations for
// personal details update requests.
type PersonalDetailsRequestRepository interface {
	Create(ctx context.Context, req *models.PersonalDetailsUpdateRequest) error
	GetByID(ctx context.Context, id int64) (*models.PersonalDetailsUpdateRequest, error)
	List(ctx context.Context, status models.RequestStatus) ([]*models.PersonalDetailsUpdateRequest, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.PersonalDetailsUpdateRequest, error)
	HasPendingForStudent(ctx context.Context, studentID int64) (bool, error)
	MarkProcessed(ctx context.Context, id int64, status models.RequestStatus, comments, processedBy string, processedAt time.Time) error
	DeleteByStudent(ctx context.Context, studentID int64) error
}

// FoodMenuRepository handles database operations for the weekly food menu.
type FoodMenuRepository interface {
	Create(ctx context.Context, entry *models.FoodMenu) error
	GetByID(ctx context.Context, id int64) (*models.FoodMenu, error)
	ListAll(ctx context.Context) ([]*models.FoodMenu, error)
	Update(ctx context.Context, entry *models.FoodMenu) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	Users           UserRepository
	Rooms           RoomRepository
	Beds            BedRepository
	RoomChanges     RoomChangeRequestRepository
	PersonalDetails PersonalDetailsRequestRepository
	FoodMenus       FoodMenuRepository
}

// NewRepositories initializes all repositories against the given Querier.
// Pass the pool for regular operation or a transaction to get a set of
// repositories bound to that transaction.
func NewRepositories(db Querier) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(db),
		Rooms:           NewRoomRepository(db),
		Beds:            NewBedRepository(db),
		RoomChanges:     NewRoomChangeRequestRepository(db),
		PersonalDetails: NewPersonalDetailsRequestRepository(db),
		FoodMenus:       NewFoodMenuRepository(db),
	}
}
