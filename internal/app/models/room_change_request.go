package models

import "time"

// RoomChangeRequest records a student's request to move to a different bed.
// The lifecycle is pending -> approved or pending -> rejected; a processed
// request is never mutated again.
type RoomChangeRequest struct {
	ID                 int64         `json:"id" db:"id" example:"1"`
	StudentID          int64         `json:"student_id" db:"student_id" example:"7"`
	CurrentRoomID      *int64        `json:"current_room_id,omitempty" db:"current_room_id"` // Nil if unassigned at submission time
	RequestedRoomID    int64         `json:"requested_room_id" db:"requested_room_id" example:"2"`
	RequestedBedNumber int           `json:"requested_bed_number" db:"requested_bed_number" example:"1"`
	Reason             string        `json:"reason" db:"reason"`
	Status             RequestStatus `json:"status" db:"status" example:"pending"`
	RequestedAt        time.Time     `json:"requested_at" db:"requested_at"`
	ProcessedAt        *time.Time    `json:"processed_at,omitempty" db:"processed_at"`
	ProcessedBy        *string       `json:"processed_by,omitempty" db:"processed_by"`
}
