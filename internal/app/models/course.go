package models

// Course represents a course in the catalog; many-to-many with Semester.
type Course struct {
	ID   int64  `json:"id" db:"id" example:"1"`          // Unique identifier for the course
	Code string `json:"code" db:"code" example:"CS101"`  // Course code
	Name string `json:"name" db:"name" example:"Intro"`  // Course name

	// Relations (populated when needed)
	Semesters []*Semester `json:"semesters,omitempty"` // Semesters the course is offered in
}
