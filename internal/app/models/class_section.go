package models

// ClassSection represents one offering of a course in a semester, taught by
// exactly one lecturer and enrolling many students.
type ClassSection struct {
	ID         int64 `json:"id" db:"id" example:"1"`                 // Unique identifier for the section
	Number     int   `json:"number" db:"number" example:"1"`         // Section number
	CourseID   int64 `json:"courseId" db:"course_id" example:"3"`    // Course being offered
	SemesterID int64 `json:"semesterId" db:"semester_id" example:"2"` // Semester of the offering
	LecturerID int64 `json:"lecturerId" db:"lecturer_id" example:"4"` // Lecturer teaching the section (never null)

	// Relations (populated when needed)
	Course   *Course    `json:"course,omitempty"`   // Course details
	Semester *Semester  `json:"semester,omitempty"` // Semester details
	Lecturer *Lecturer  `json:"lecturer,omitempty"` // Lecturer details
	Students []*Student `json:"students,omitempty"` // Enrolled students
}
