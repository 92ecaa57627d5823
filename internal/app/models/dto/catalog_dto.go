package dto

// CreateSemesterRequest creates a semester
type CreateSemesterRequest struct {
	Year int    `json:"year" binding:"required" example:"2024"`
	Term string `json:"term" binding:"required" example:"Fall"`
}

// UpdateSemesterRequest updates a semester
type UpdateSemesterRequest struct {
	Year int    `json:"year" binding:"required" example:"2024"`
	Term string `json:"term" binding:"required" example:"Fall"`
}

// CreateCourseRequest creates a course; SemesterIDs sets the offering links.
type CreateCourseRequest struct {
	Code        string  `json:"code" binding:"required" example:"CS101"`
	Name        string  `json:"name" binding:"required" example:"Intro"`
	SemesterIDs []int64 `json:"semesterIds,omitempty"`
}

// UpdateCourseRequest updates a course; SemesterIDs replaces the offering links.
type UpdateCourseRequest struct {
	Code        string  `json:"code" binding:"required" example:"CS101"`
	Name        string  `json:"name" binding:"required" example:"Intro"`
	SemesterIDs []int64 `json:"semesterIds,omitempty"`
}
