package models

import "time"

// Student defines the student profile model based on the 'students' table.
// Same cascade rule as Lecturer: the profile and its identity die together.
type Student struct {
	ID         int64     `json:"id" db:"id" example:"1"`                      // Unique identifier for the student record
	IdentityID int64     `json:"identityId" db:"identity_id" example:"7"`     // ID of the linked identity
	DOB        time.Time `json:"dob" db:"dob" example:"1999-05-02T00:00:00Z"` // Date of birth

	// Relations (populated when needed)
	Identity *Identity `json:"identity,omitempty"` // Linked identity
}
