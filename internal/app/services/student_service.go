package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
)

// studentStore is the storage surface StudentService needs
type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	DeleteCascade(ctx context.Context, id int64) error
}

// StudentService handles student profile lifecycle, symmetric to
// LecturerService.
type StudentService struct {
	students   studentStore
	identities usernameIndex
	logger     zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(students studentStore, identities usernameIndex, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students:   students,
		identities: identities,
		logger:     logger,
	}
}

// Create provisions a student profile with a derived username and initial
// password
func (s *StudentService) Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	identity, dob, err := buildProfileIdentity(ctx, s.identities, req, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		DOB:      dob,
		Identity: identity,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("studentID", student.ID).
		Str("username", identity.Username).
		Msg("Created student profile")

	return newProfileResponse(student.ID, identity, student.DOB), nil
}

// GetByID retrieves a student profile
func (s *StudentService) GetByID(ctx context.Context, id int64) (*dto.ProfileResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newProfileResponse(student.ID, student.Identity, student.DOB), nil
}

// GetAll retrieves all student profiles
func (s *StudentService) GetAll(ctx context.Context) ([]*dto.ProfileResponse, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProfileResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, newProfileResponse(student.ID, student.Identity, student.DOB))
	}
	return responses, nil
}

// Update applies the provided fields to a student profile and its identity
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, err := applyProfileUpdate(student.Identity, student.DOB, req)
	if err != nil {
		return nil, err
	}
	student.DOB = dob

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return newProfileResponse(student.ID, student.Identity, student.DOB), nil
}

// Delete removes a student profile together with its identity
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.students.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", id).Msg("Deleted student profile and identity")
	return nil
}
