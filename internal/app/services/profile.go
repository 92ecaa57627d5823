package services

import (
	"context"
	"fmt"
	"time"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
	"github.com/campushq/attendance-backend/internal/pkg/auth"
	"github.com/campushq/attendance-backend/internal/pkg/helpers"
	"github.com/campushq/attendance-backend/internal/pkg/validation"
)

// buildProfileIdentity validates a profile creation request and assembles the
// identity with derived credentials. Shared by the lecturer and student
// services.
func buildProfileIdentity(ctx context.Context, identities usernameIndex, req *dto.CreateProfileRequest, role models.RoleType) (*models.Identity, time.Time, error) {
	if !validation.ValidName(req.FirstName) {
		return nil, time.Time{}, apperrors.NewValidationError("firstName", "first name must be between 2 and 100 characters")
	}
	if !validation.ValidName(req.LastName) {
		return nil, time.Time{}, apperrors.NewValidationError("lastName", "last name must be between 2 and 100 characters")
	}
	if !validation.ValidEmail(req.Email) {
		return nil, time.Time{}, apperrors.NewValidationError("email", "invalid email format")
	}

	dob, err := helpers.ParseDate(req.DOB)
	if err != nil {
		return nil, time.Time{}, apperrors.NewValidationError("dob", "date of birth must be in YYYY-MM-DD format")
	}

	username := DeriveUsername(req.FirstName, req.LastName, dob)
	exists, err := identities.UsernameExists(ctx, username)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, time.Time{}, apperrors.ErrUsernameExists
	}

	hashed, err := auth.HashPassword(InitialPassword(dob))
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("error hashing initial password: %w", err)
	}

	identity := &models.Identity{
		Username:  username,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      role,
	}
	return identity, dob, nil
}

// applyProfileUpdate merges an update request into the identity and returns
// the effective date of birth. Omitted fields keep their current values.
func applyProfileUpdate(identity *models.Identity, currentDOB time.Time, req *dto.UpdateProfileRequest) (time.Time, error) {
	if req.FirstName != nil {
		if !validation.ValidName(*req.FirstName) {
			return time.Time{}, apperrors.NewValidationError("firstName", "first name must be between 2 and 100 characters")
		}
		identity.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		if !validation.ValidName(*req.LastName) {
			return time.Time{}, apperrors.NewValidationError("lastName", "last name must be between 2 and 100 characters")
		}
		identity.LastName = *req.LastName
	}
	if req.Email != nil {
		if !validation.ValidEmail(*req.Email) {
			return time.Time{}, apperrors.NewValidationError("email", "invalid email format")
		}
		identity.Email = *req.Email
	}

	dob := currentDOB
	if req.DOB != nil {
		parsed, err := helpers.ParseDate(*req.DOB)
		if err != nil {
			return time.Time{}, apperrors.NewValidationError("dob", "date of birth must be in YYYY-MM-DD format")
		}
		dob = parsed
	}

	return dob, nil
}

// newProfileResponse flattens a profile and its identity for the API.
// profileID is the lecturer or student row, not the identity row.
func newProfileResponse(profileID int64, identity *models.Identity, dob time.Time) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        profileID,
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		DOB:       helpers.FormatDate(dob),
		Role:      string(identity.Role),
	}
}
