package services

import (
	"strings"
	"time"

	"github.com/campushq/attendance-backend/internal/pkg/helpers"
)

// DeriveUsername builds the login handle for a new profile from its name and
// date of birth: lowercased first and last name with whitespace stripped,
// followed by the date as YYYYMMDD. Two people with the same name and birth
// date collide, which is treated as a validation failure rather than
// resolved with a suffix.
func DeriveUsername(firstName, lastName string, dob time.Time) string {
	first := strings.ToLower(strings.Join(strings.Fields(firstName), ""))
	last := strings.ToLower(strings.Join(strings.Fields(lastName), ""))
	return first + last + dob.Format("20060102")
}

// InitialPassword is the password a new profile starts with: the date of
// birth in YYYY-MM-DD form. It is bcrypt-hashed before storage like any
// other password.
func InitialPassword(dob time.Time) string {
	return dob.Format(helpers.DateLayout)
}
