package models

import "time"

// CollegeDay records which enrolled students were present for a class section
// on a date. ClassSectionID is nullable; an unbound day is a degenerate state
// that only admins may create or see.
type CollegeDay struct {
	ID             int64     `json:"id" db:"id" example:"1"`                            // Unique identifier for the record
	Date           time.Time `json:"date" db:"date" example:"2024-09-16T09:00:00Z"`     // Date of the college day
	ClassSectionID *int64    `json:"classSectionId,omitempty" db:"class_section_id"`    // Section the day belongs to (nullable)

	// Relations (populated when needed)
	ClassSection      *ClassSection `json:"classSection,omitempty"` // Section details
	PresentStudentIDs []int64       `json:"presentStudentIds"`      // Students marked present
}
