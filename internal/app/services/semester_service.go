package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/repositories"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
)

// SemesterService handles semester catalog management
type SemesterService struct {
	semesterRepo *repositories.SemesterRepository
	logger       zerolog.Logger
}

// NewSemesterService creates a new SemesterService
func NewSemesterService(semesterRepo *repositories.SemesterRepository, logger zerolog.Logger) *SemesterService {
	return &SemesterService{
		semesterRepo: semesterRepo,
		logger:       logger,
	}
}

func validateSemester(year int, term string) error {
	if year < 1900 || year > 2200 {
		return apperrors.NewValidationError("year", "year is out of range")
	}
	if strings.TrimSpace(term) == "" {
		return apperrors.NewValidationError("term", "term cannot be empty")
	}
	return nil
}

// Create creates a semester
func (s *SemesterService) Create(ctx context.Context, req *dto.CreateSemesterRequest) (*models.Semester, error) {
	if err := validateSemester(req.Year, req.Term); err != nil {
		return nil, err
	}

	semester := &models.Semester{
		Year: req.Year,
		Term: strings.TrimSpace(req.Term),
	}
	if err := s.semesterRepo.Create(ctx, semester); err != nil {
		return nil, err
	}

	return semester, nil
}

// GetByID retrieves a semester
func (s *SemesterService) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	return s.semesterRepo.GetByID(ctx, id)
}

// GetAll retrieves all semesters
func (s *SemesterService) GetAll(ctx context.Context) ([]*models.Semester, error) {
	return s.semesterRepo.GetAll(ctx)
}

// Update updates a semester
func (s *SemesterService) Update(ctx context.Context, id int64, req *dto.UpdateSemesterRequest) (*models.Semester, error) {
	if err := validateSemester(req.Year, req.Term); err != nil {
		return nil, err
	}

	semester := &models.Semester{
		ID:   id,
		Year: req.Year,
		Term: strings.TrimSpace(req.Term),
	}
	if err := s.semesterRepo.Update(ctx, semester); err != nil {
		return nil, err
	}

	return semester, nil
}

// Delete deletes a semester
func (s *SemesterService) Delete(ctx context.Context, id int64) error {
	return s.semesterRepo.Delete(ctx, id)
}
