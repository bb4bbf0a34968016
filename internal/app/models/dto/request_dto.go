package dto

import "github.com/adityavkr/hostelhub/internal/app/models"

// CreateRoomChangeRequest represents a student's request to move to a
// specific bed in another room.
type CreateRoomChangeRequest struct {
	RequestedRoomID    int64  `json:"requested_room_id" binding:"required,min=1" example:"2"`
	RequestedBedNumber int    `json:"requested_bed_number" binding:"required,min=1" example:"1"`
	Reason             string `json:"reason" binding:"required" example:"Closer to the library"`
}

// RoomChangeRequestResponse is a request enriched with display names the
// raw row does not carry. Dangling references degrade to "Unknown" rather
// than failing the listing.
type RoomChangeRequestResponse struct {
	Request             *models.RoomChangeRequest `json:"request"`
	StudentName         string                    `json:"student_name" example:"Ravi Kumar"`
	StudentRollNo       string                    `json:"student_roll_no" example:"CS101"`
	CurrentRoomNumber   string                    `json:"current_room_number,omitempty" example:"R101"`
	RequestedRoomNumber string                    `json:"requested_room_number" example:"R202"`
}

// RoomChangeRequestListResponse represents the warden's request queue.
type RoomChangeRequestListResponse struct {
	Requests []RoomChangeRequestResponse `json:"requests"`
	Total    int                         `json:"total"`
}

// CreatePersonalDetailsRequest represents the fields a student proposes to
// change. Empty fields mean "no change".
type CreatePersonalDetailsRequest struct {
	Phone        string `json:"phone" binding:"omitempty"`
	AddressLine1 string `json:"address_line1" binding:"omitempty"`
	AddressLine2 string `json:"address_line2" binding:"omitempty"`
	City         string `json:"city" binding:"omitempty"`
	State        string `json:"state" binding:"omitempty"`
	PostalCode   string `json:"postal_code" binding:"omitempty"`

	GuardianName    string `json:"guardian_name" binding:"omitempty"`
	GuardianPhone   string `json:"guardian_phone" binding:"omitempty"`
	GuardianAddress string `json:"guardian_address" binding:"omitempty"`
}

// ProcessRequestRequest carries the warden's optional comment when
// approving or rejecting a request.
type ProcessRequestRequest struct {
	Comments string `json:"comments" binding:"omitempty" example:"Verified with guardian"`
}

// PersonalDetailsRequestListResponse represents the warden's queue of
// personal details update requests.
type PersonalDetailsRequestListResponse struct {
	Requests []*models.PersonalDetailsUpdateRequest `json:"requests"`
	Total    int                                    `json:"total"`
}
