package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/repositories"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
	"github.com/campushq/attendance-backend/internal/pkg/validation"
)

// CourseService handles course catalog management and semester offering links
type CourseService struct {
	courseRepo   *repositories.CourseRepository
	semesterRepo *repositories.SemesterRepository
	logger       zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	semesterRepo *repositories.SemesterRepository,
	logger zerolog.Logger,
) *CourseService {
	return &CourseService{
		courseRepo:   courseRepo,
		semesterRepo: semesterRepo,
		logger:       logger,
	}
}

func (s *CourseService) validateCourse(ctx context.Context, code, name string, semesterIDs []int64, excludeID int64) error {
	if !validation.ValidCourseCode(code) {
		return apperrors.NewValidationError("code", "course code must be uppercase letters and digits")
	}
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("name", "course name cannot be empty")
	}

	taken, err := s.courseRepo.CodeExists(ctx, code, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperrors.ErrCourseExists
	}

	for _, semesterID := range semesterIDs {
		if _, err := s.semesterRepo.GetByID(ctx, semesterID); err != nil {
			return err
		}
	}

	return nil
}

// Create creates a course and links it to the given semesters
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	code := strings.TrimSpace(req.Code)
	if err := s.validateCourse(ctx, code, req.Name, req.SemesterIDs, 0); err != nil {
		return nil, err
	}

	course := &models.Course{
		Code: code,
		Name: strings.TrimSpace(req.Name),
	}
	if err := s.courseRepo.Create(ctx, course, req.SemesterIDs); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, course.ID)
}

// GetByID retrieves a course with its semesters
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll retrieves all courses
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// Update updates a course and replaces its semester links
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	code := strings.TrimSpace(req.Code)
	if err := s.validateCourse(ctx, code, req.Name, req.SemesterIDs, id); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:   id,
		Code: code,
		Name: strings.TrimSpace(req.Name),
	}
	if err := s.courseRepo.Update(ctx, course, req.SemesterIDs); err != nil {
		return nil, err
	}

	return s.courseRepo.GetByID(ctx, id)
}

// Delete deletes a course
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
