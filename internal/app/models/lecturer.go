package models

import "time"

// Lecturer defines the lecturer profile model based on the 'lecturers' table.
// A lecturer is one-to-one with an Identity; they are created and deleted together.
type Lecturer struct {
	ID         int64     `json:"id" db:"id" example:"1"`          // Unique identifier for the lecturer record
	IdentityID int64     `json:"identityId" db:"identity_id" example:"5"` // ID of the linked identity
	DOB        time.Time `json:"dob" db:"dob" example:"1980-01-01T00:00:00Z"` // Date of birth

	// Relations (populated when needed)
	Identity *Identity `json:"identity,omitempty"` // Linked identity
}
