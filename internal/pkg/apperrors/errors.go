package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrWrongPassword  = errors.New("current password is incorrect")
	ErrWeakPassword   = errors.New("new password must be at least 6 characters long")
	ErrNotAStudent    = errors.New("user is not a student")
	ErrWardenNotFound = errors.New("warden contact information not available")
)

// Student creation errors
var (
	ErrStudentNotFound = errors.New("student not found")
	ErrUsernameExists  = errors.New("roll number already exists (roll number is used as username)")
	ErrAadhaarExists   = errors.New("aadhaar ID already exists")
	ErrPhoneExists     = errors.New("phone number already exists")
	ErrInvalidPhone    = errors.New("phone number must be a valid 10-digit Indian mobile number")
)

// Room and bed inventory errors
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrDuplicateRoomNumber = errors.New("room with this number already exists")
	ErrBedNotFound         = errors.New("bed not found")
	ErrBedUnavailable      = errors.New("bed is not available")
	ErrAlreadyAssigned     = errors.New("student is already assigned to a bed")
	ErrNoRoomAssigned      = errors.New("no room assigned")
)

// Request workflow errors
var (
	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestAlreadyProcessed = errors.New("request has already been processed")
	ErrBedNoLongerAvailable    = errors.New("requested bed is no longer available")
	ErrDuplicatePendingRequest = errors.New("a pending personal details update request already exists")
)

// Food menu errors
var (
	ErrMenuItemNotFound   = errors.New("food menu item not found")
	ErrDuplicateMenuEntry = errors.New("a menu entry for this day and meal already exists")
)
