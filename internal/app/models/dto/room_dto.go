package dto

import "github.com/adityavkr/hostelhub/internal/app/models"

// CreateRoomRequest represents room creation data. Beds numbered
// 1..capacity are created together with the room.
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required" example:"R101"`
	Floor      int    `json:"floor" binding:"min=0" example:"1"`
	Capacity   int    `json:"capacity" binding:"required,min=1,max=8" example:"3"`
	RoomType   string `json:"room_type" binding:"omitempty" example:"triple"`
}

// RoomStatsResponse is one row of the room list with live occupancy counts.
type RoomStatsResponse struct {
	Room          *models.Room `json:"room"`
	AvailableBeds int          `json:"available_beds" example:"1"`
}

// RoomListResponse represents the room inventory.
type RoomListResponse struct {
	Rooms []RoomStatsResponse `json:"rooms"`
	Total int                 `json:"total"`
}

// BedWithOccupant is a bed annotated with its occupant, when any.
type BedWithOccupant struct {
	Bed            *models.Bed `json:"bed"`
	OccupantName   string      `json:"occupant_name,omitempty" example:"Ravi Kumar"`
	OccupantRollNo string      `json:"occupant_roll_no,omitempty" example:"CS101"`
}

// RoomDetailResponse represents a room together with all its beds.
type RoomDetailResponse struct {
	Room *models.Room      `json:"room"`
	Beds []BedWithOccupant `json:"beds"`
}
