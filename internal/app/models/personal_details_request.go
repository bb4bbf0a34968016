package models

import "time"

// PersonalDetailsUpdateRequest carries proposed changes to a student's
// contact and guardian fields, to be applied to the user record only after
// warden approval. Fields left empty are "no change". The student's name
// and roll number are snapshotted at submission time for audit purposes.
type PersonalDetailsUpdateRequest struct {
	ID            int64  `json:"id" db:"id" example:"1"`
	StudentID     int64  `json:"student_id" db:"student_id" example:"7"`
	StudentName   string `json:"student_name" db:"student_name" example:"Ravi Kumar"`
	StudentRollNo string `json:"student_roll_no" db:"student_roll_no" example:"CS101"`

	Phone           string `json:"phone,omitempty" db:"phone"`
	AddressLine1    string `json:"address_line1,omitempty" db:"address_line1"`
	AddressLine2    string `json:"address_line2,omitempty" db:"address_line2"`
	City            string `json:"city,omitempty" db:"city"`
	State           string `json:"state,omitempty" db:"state"`
	PostalCode      string `json:"postal_code,omitempty" db:"postal_code"`
	GuardianName    string `json:"guardian_name,omitempty" db:"guardian_name"`
	GuardianPhone   string `json:"guardian_phone,omitempty" db:"guardian_phone"`
	GuardianAddress string `json:"guardian_address,omitempty" db:"guardian_address"`

	Status         RequestStatus `json:"status" db:"status" example:"pending"`
	WardenComments string        `json:"warden_comments,omitempty" db:"warden_comments"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	ProcessedAt    *time.Time    `json:"processed_at,omitempty" db:"processed_at"`
	ProcessedBy    *string       `json:"processed_by,omitempty" db:"processed_by"`
}
