package dto

import "time"

// CreateCollegeDayRequest creates an attendance record for a class section.
// ClassSectionID may be omitted by admins to create an unbound day.
type CreateCollegeDayRequest struct {
	Date           time.Time `json:"date" binding:"required" example:"2024-09-16T09:00:00Z"`
	ClassSectionID *int64    `json:"classSectionId,omitempty" example:"1"`
	StudentIDs     []int64   `json:"studentIds,omitempty"`
}

// UpdateCollegeDayRequest rewrites an attendance record; StudentIDs replaces
// the present set.
type UpdateCollegeDayRequest struct {
	Date           time.Time `json:"date" binding:"required" example:"2024-09-16T09:00:00Z"`
	ClassSectionID *int64    `json:"classSectionId,omitempty" example:"1"`
	StudentIDs     []int64   `json:"studentIds,omitempty"`
}

// CollegeDayResponse enriches an attendance record with section context,
// mirroring what attendance listings render.
type CollegeDayResponse struct {
	ID                int64     `json:"id" example:"1"`
	Date              time.Time `json:"date" example:"2024-09-16T09:00:00Z"`
	ClassSectionID    *int64    `json:"classSectionId,omitempty" example:"1"`
	SectionNumber     int       `json:"sectionNumber,omitempty" example:"1"`
	CourseCode        string    `json:"courseCode,omitempty" example:"CS101"`
	CourseName        string    `json:"courseName,omitempty" example:"Intro"`
	SemesterYear      int       `json:"semesterYear,omitempty" example:"2024"`
	SemesterTerm      string    `json:"semesterTerm,omitempty" example:"Fall"`
	LecturerID        int64     `json:"lecturerId,omitempty" example:"4"`
	LecturerFirstName string    `json:"lecturerFirstName,omitempty" example:"Alan"`
	LecturerLastName  string    `json:"lecturerLastName,omitempty" example:"Turing"`
	StudentIDs        []int64   `json:"studentIds"`
}
