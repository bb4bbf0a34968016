package models

import (
	"time"
)

// User defines the user model based on the 'users' table. Students and
// wardens share the table; the student-only profile columns are nullable.
type User struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Username string `json:"username" db:"username" example:"CS101"` // Roll number for students
	Password string `json:"-" db:"password"`                        // Hashed, excluded from JSON
	Role     Role   `json:"role" db:"role" example:"student"`
	FullName string `json:"full_name" db:"full_name" example:"Ravi Kumar"`
	Email    string `json:"email" db:"email" example:"ravi@example.com"`
	Phone    string `json:"phone" db:"phone" example:"9876543210"`

	// Student-specific fields
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Gender      string     `json:"gender,omitempty" db:"gender"`
	AadhaarID   *string    `json:"aadhaar_id,omitempty" db:"aadhaar_id"`
	RollNo      *string    `json:"roll_no,omitempty" db:"roll_no"`
	Stream      string     `json:"stream,omitempty" db:"stream"`
	Branch      string     `json:"branch,omitempty" db:"branch"`

	// Address fields
	AddressLine1 string `json:"address_line1,omitempty" db:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty" db:"address_line2"`
	City         string `json:"city,omitempty" db:"city"`
	State        string `json:"state,omitempty" db:"state"`
	PostalCode   string `json:"postal_code,omitempty" db:"postal_code"`

	// Guardian fields
	GuardianName    string `json:"guardian_name,omitempty" db:"guardian_name"`
	GuardianPhone   string `json:"guardian_phone,omitempty" db:"guardian_phone"`
	GuardianAddress string `json:"guardian_address,omitempty" db:"guardian_address"`

	FirstLogin bool      `json:"first_login" db:"first_login"` // True until the password is changed
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
