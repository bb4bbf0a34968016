package dto

import (
	"time"

	"github.com/adityavkr/hostelhub/internal/app/models"
)

// CreateStudentRequest represents the data a warden submits to register a
// new student. The roll number doubles as the login username.
type CreateStudentRequest struct {
	FullName    string `json:"full_name" binding:"required" example:"Ravi Kumar"`
	RollNo      string `json:"roll_no" binding:"required" example:"CS101"`
	Email       string `json:"email" binding:"omitempty,email" example:"ravi@example.com"`
	Phone       string `json:"phone" binding:"required" example:"9876543210"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty" example:"2004-06-15"` // YYYY-MM-DD
	Gender      string `json:"gender" binding:"omitempty,oneof=male female other"`
	AadhaarID   string `json:"aadhaar_id" binding:"omitempty,len=12"`
	Stream      string `json:"stream" binding:"omitempty" example:"B.Tech"`
	Branch      string `json:"branch" binding:"omitempty" example:"Computer Science"`

	AddressLine1 string `json:"address_line1" binding:"omitempty"`
	AddressLine2 string `json:"address_line2" binding:"omitempty"`
	City         string `json:"city" binding:"omitempty"`
	State        string `json:"state" binding:"omitempty"`
	PostalCode   string `json:"postal_code" binding:"omitempty"`

	GuardianName    string `json:"guardian_name" binding:"omitempty"`
	GuardianPhone   string `json:"guardian_phone" binding:"omitempty"`
	GuardianAddress string `json:"guardian_address" binding:"omitempty"`
}

// CreateStudentResponse carries the new account plus the generated
// password. The password is returned exactly once and never stored in
// plaintext.
type CreateStudentResponse struct {
	Student  *models.User `json:"student"`
	Password string       `json:"password" example:"x7Kp2mQ9"`
}

// UpdateStudentRequest represents a partial profile update by the warden.
// Nil fields are left unchanged.
type UpdateStudentRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	Gender      *string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
	AadhaarID   *string `json:"aadhaar_id,omitempty" binding:"omitempty,len=12"`
	Stream      *string `json:"stream,omitempty"`
	Branch      *string `json:"branch,omitempty"`

	AddressLine1 *string `json:"address_line1,omitempty"`
	AddressLine2 *string `json:"address_line2,omitempty"`
	City         *string `json:"city,omitempty"`
	State        *string `json:"state,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`

	GuardianName    *string `json:"guardian_name,omitempty"`
	GuardianPhone   *string `json:"guardian_phone,omitempty"`
	GuardianAddress *string `json:"guardian_address,omitempty"`
}

// AssignRoomRequest represents a warden assigning a student to a bed.
type AssignRoomRequest struct {
	RollNo    string `json:"roll_no" binding:"required" example:"CS101"`
	RoomID    int64  `json:"room_id" binding:"required,min=1" example:"1"`
	BedNumber int    `json:"bed_number" binding:"required,min=1" example:"2"`
}

// StudentWithRoomResponse is one roster row: the student plus their
// current room assignment, if any.
type StudentWithRoomResponse struct {
	Student    *models.User `json:"student"`
	RoomNumber string       `json:"room_number,omitempty" example:"R101"`
	BedNumber  int          `json:"bed_number,omitempty" example:"2"`
}

// StudentListResponse represents the warden's student roster.
type StudentListResponse struct {
	Students []StudentWithRoomResponse `json:"students"`
	Total    int                       `json:"total"`
}

// RoommateInfo is a co-occupant of the student's room.
type RoommateInfo struct {
	FullName  string `json:"full_name" example:"Amit Shah"`
	RollNo    string `json:"roll_no" example:"CS102"`
	BedNumber int    `json:"bed_number" example:"1"`
}

// MyRoomResponse represents a student's own room view.
type MyRoomResponse struct {
	Room      *models.Room   `json:"room"`
	BedNumber int            `json:"bed_number" example:"2"`
	Roommates []RoommateInfo `json:"roommates"`
}

// WardenContactResponse represents the warden contact card shown to students.
type WardenContactResponse struct {
	Name             string `json:"name" example:"Hostel Warden"`
	Email            string `json:"email" example:"warden@hostel.example"`
	Phone            string `json:"phone" example:"9876500000"`
	OfficeHours      string `json:"office_hours" example:"Mon-Sat 10:00-17:00"`
	EmergencyContact string `json:"emergency_contact" example:"9876500001"`
}

// ProfileResponse wraps the authenticated user's own record.
type ProfileResponse struct {
	User       *models.User `json:"user"`
	RoomNumber string       `json:"room_number,omitempty"`
	BedNumber  int          `json:"bed_number,omitempty"`
}

// ParseDateOfBirth parses the YYYY-MM-DD date field of a create request.
func ParseDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
