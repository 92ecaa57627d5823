package dto

// CreateSectionRequest creates a class section
type CreateSectionRequest struct {
	Number     int     `json:"number" binding:"required" example:"1"`
	CourseID   int64   `json:"courseId" binding:"required" example:"3"`
	SemesterID int64   `json:"semesterId" binding:"required" example:"2"`
	LecturerID int64   `json:"lecturerId" binding:"required" example:"4"`
	StudentIDs []int64 `json:"studentIds,omitempty"`
}

// UpdateSectionRequest updates a class section; StudentIDs replaces the
// enrollment set.
type UpdateSectionRequest struct {
	Number     int     `json:"number" binding:"required" example:"1"`
	CourseID   int64   `json:"courseId" binding:"required" example:"3"`
	SemesterID int64   `json:"semesterId" binding:"required" example:"2"`
	LecturerID int64   `json:"lecturerId" binding:"required" example:"4"`
	StudentIDs []int64 `json:"studentIds,omitempty"`
}

// SectionResponse enriches a section with its course, semester and lecturer,
// mirroring what clients render in listings.
type SectionResponse struct {
	ID                int64   `json:"id" example:"1"`
	Number            int     `json:"number" example:"1"`
	CourseID          int64   `json:"courseId" example:"3"`
	CourseCode        string  `json:"courseCode" example:"CS101"`
	CourseName        string  `json:"courseName" example:"Intro"`
	SemesterID        int64   `json:"semesterId" example:"2"`
	SemesterYear      int     `json:"semesterYear" example:"2024"`
	SemesterTerm      string  `json:"semesterTerm" example:"Fall"`
	LecturerID        int64   `json:"lecturerId" example:"4"`
	LecturerFirstName string  `json:"lecturerFirstName" example:"Alan"`
	LecturerLastName  string  `json:"lecturerLastName" example:"Turing"`
	StudentIDs        []int64 `json:"studentIds"`
}
