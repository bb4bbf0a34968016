package models

import "time"

// Room defines the room model based on the 'rooms' table.
//
// OccupiedBeds is denormalized for display; every operation that mutates
// beds recomputes it from the bed rows, and read paths that need exact
// numbers count the bed rows directly instead of trusting this field.
type Room struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	RoomNumber   string    `json:"room_number" db:"room_number" example:"R101"`
	Floor        int       `json:"floor" db:"floor" example:"1"`
	Capacity     int       `json:"capacity" db:"capacity" example:"3"`
	OccupiedBeds int       `json:"occupied_beds" db:"occupied_beds" example:"2"`
	RoomType     string    `json:"room_type" db:"room_type" example:"triple"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Bed is a single occupancy slot within a room, numbered 1..capacity.
// At most one student occupies a bed, and a student holds at most one
// bed system-wide (backed by a partial unique index on student_id).
type Bed struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	RoomID    int64     `json:"room_id" db:"room_id" example:"1"`
	BedNumber int       `json:"bed_number" db:"bed_number" example:"2"`
	StudentID *int64    `json:"student_id,omitempty" db:"student_id"`
	Status    BedStatus `json:"status" db:"status" example:"available"`
}
