package models

// Semester represents an academic term offering window
type Semester struct {
	ID   int64  `json:"id" db:"id" example:"1"`         // Unique identifier for the semester
	Year int    `json:"year" db:"year" example:"2024"`  // Calendar year
	Term string `json:"term" db:"term" example:"Fall"`  // Term label, e.g. "Fall" or "Spring"
}
