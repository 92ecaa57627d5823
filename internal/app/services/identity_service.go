package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/repositories"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
	"github.com/campushq/attendance-backend/internal/pkg/validation"
)

// IdentityService handles identity listing and identity-side maintenance.
// Deleting an identity takes whichever profile links to it, symmetric to the
// profile-side cascade.
type IdentityService struct {
	identityRepo *repositories.IdentityRepository
	tokenRepo    *repositories.RefreshTokenRepository
	logger       zerolog.Logger
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(
	identityRepo *repositories.IdentityRepository,
	tokenRepo *repositories.RefreshTokenRepository,
	logger zerolog.Logger,
) *IdentityService {
	return &IdentityService{
		identityRepo: identityRepo,
		tokenRepo:    tokenRepo,
		logger:       logger,
	}
}

// GetByID retrieves an identity
func (s *IdentityService) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	return s.identityRepo.GetByID(ctx, id)
}

// GetAll retrieves all identities
func (s *IdentityService) GetAll(ctx context.Context) ([]*models.Identity, error) {
	return s.identityRepo.GetAll(ctx)
}

// UpdateContact applies contact field changes to an identity
func (s *IdentityService) UpdateContact(ctx context.Context, id int64, req *dto.UpdateIdentityRequest) (*models.Identity, error) {
	identity, err := s.identityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if !validation.ValidName(*req.FirstName) {
			return nil, apperrors.NewValidationError("firstName", "first name must be between 2 and 100 characters")
		}
		identity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		if !validation.ValidName(*req.LastName) {
			return nil, apperrors.NewValidationError("lastName", "last name must be between 2 and 100 characters")
		}
		identity.LastName = *req.LastName
	}
	if req.Email != nil {
		if !validation.ValidEmail(*req.Email) {
			return nil, apperrors.NewValidationError("email", "invalid email format")
		}
		identity.Email = *req.Email
	}

	if err := s.identityRepo.UpdateContact(ctx, identity); err != nil {
		return nil, err
	}

	return identity, nil
}

// Delete removes an identity and its linked profile, and revokes any active
// refresh tokens so the deleted account cannot keep a session alive
func (s *IdentityService) Delete(ctx context.Context, id int64) error {
	if err := s.tokenRepo.RevokeAllForIdentity(ctx, id); err != nil {
		return err
	}

	if err := s.identityRepo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("identityID", id).Msg("Deleted identity and linked profile")
	return nil
}
