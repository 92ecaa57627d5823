package models

import (
	"time"
)

// Identity defines the authenticated principal model based on the 'identities' table
type Identity struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the identity
	Username  string    `json:"username" db:"username" example:"janedoe19990502"`         // Generated login handle
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	FirstName string    `json:"firstName" db:"first_name" example:"Jane"`                 // First name
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`                    // Last name
	Email     string    `json:"email" db:"email" example:"jane.doe@campus.edu"`           // Contact email
	Role      RoleType  `json:"role" db:"role" example:"STUDENT"`                         // Role (ADMIN, LECTURER or STUDENT)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the identity was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the identity was last updated
}

// FullName returns the display name of the identity.
func (i *Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}
