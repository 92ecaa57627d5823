package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
)

// lecturerStore is the storage surface LecturerService needs
type lecturerStore interface {
	Create(ctx context.Context, lecturer *models.Lecturer) error
	GetByID(ctx context.Context, id int64) (*models.Lecturer, error)
	GetAll(ctx context.Context) ([]*models.Lecturer, error)
	Update(ctx context.Context, lecturer *models.Lecturer) error
	DeleteCascade(ctx context.Context, id int64) error
}

// usernameIndex answers whether a login handle is already taken
type usernameIndex interface {
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// LecturerService handles lecturer profile lifecycle. A profile and its
// identity are created and deleted as one unit.
type LecturerService struct {
	lecturers  lecturerStore
	identities usernameIndex
	logger     zerolog.Logger
}

// NewLecturerService creates a new LecturerService
func NewLecturerService(lecturers lecturerStore, identities usernameIndex, logger zerolog.Logger) *LecturerService {
	return &LecturerService{
		lecturers:  lecturers,
		identities: identities,
		logger:     logger,
	}
}

// Create provisions a lecturer profile with a derived username and initial
// password
func (s *LecturerService) Create(ctx context.Context, req *dto.CreateProfileRequest) (*dto.ProfileResponse, error) {
	identity, dob, err := buildProfileIdentity(ctx, s.identities, req, models.RoleLecturer)
	if err != nil {
		return nil, err
	}

	lecturer := &models.Lecturer{
		DOB:      dob,
		Identity: identity,
	}

	if err := s.lecturers.Create(ctx, lecturer); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("lecturerID", lecturer.ID).
		Str("username", identity.Username).
		Msg("Created lecturer profile")

	return newProfileResponse(lecturer.ID, identity, lecturer.DOB), nil
}

// GetByID retrieves a lecturer profile
func (s *LecturerService) GetByID(ctx context.Context, id int64) (*dto.ProfileResponse, error) {
	lecturer, err := s.lecturers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newProfileResponse(lecturer.ID, lecturer.Identity, lecturer.DOB), nil
}

// GetAll retrieves all lecturer profiles
func (s *LecturerService) GetAll(ctx context.Context) ([]*dto.ProfileResponse, error) {
	lecturers, err := s.lecturers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProfileResponse, 0, len(lecturers))
	for _, lecturer := range lecturers {
		responses = append(responses, newProfileResponse(lecturer.ID, lecturer.Identity, lecturer.DOB))
	}
	return responses, nil
}

// Update applies the provided fields to a lecturer profile and its identity.
// The username is never regenerated; it stays what it was at creation.
func (s *LecturerService) Update(ctx context.Context, id int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	lecturer, err := s.lecturers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, err := applyProfileUpdate(lecturer.Identity, lecturer.DOB, req)
	if err != nil {
		return nil, err
	}
	lecturer.DOB = dob

	if err := s.lecturers.Update(ctx, lecturer); err != nil {
		return nil, err
	}

	return newProfileResponse(lecturer.ID, lecturer.Identity, lecturer.DOB), nil
}

// Delete removes a lecturer profile together with its identity
func (s *LecturerService) Delete(ctx context.Context, id int64) error {
	if err := s.lecturers.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("lecturerID", id).Msg("Deleted lecturer profile and identity")
	return nil
}
