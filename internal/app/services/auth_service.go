package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/repositories"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
	"github.com/campushq/attendance-backend/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	identityRepo *repositories.IdentityRepository
	lecturerRepo *repositories.LecturerRepository
	studentRepo  *repositories.StudentRepository
	tokenRepo    *repositories.RefreshTokenRepository
	jwtService   *auth.JWTService
	logger       zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	identityRepo *repositories.IdentityRepository,
	lecturerRepo *repositories.LecturerRepository,
	studentRepo *repositories.StudentRepository,
	tokenRepo *repositories.RefreshTokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		identityRepo: identityRepo,
		lecturerRepo: lecturerRepo,
		studentRepo:  studentRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login verifies credentials and issues a token pair. The profile link for
// the identity's role is resolved here, once, and baked into the claims.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	identity, err := s.identityRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrIdentityNotFound) {
			// Same failure as a wrong password so usernames cannot be probed.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up identity: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.Password), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("username", req.Username).Msg("Login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	profileID, err := s.resolveProfileID(ctx, identity)
	if err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, identity, profileID)
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// fresh pair is issued for the same identity.
func (s *AuthService) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	identityID, err := s.tokenRepo.GetIdentityID(ctx, req.RefreshToken)
	if err != nil {
		return nil, err
	}

	identity, err := s.identityRepo.GetByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrIdentityNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error looking up identity: %w", err)
	}

	if err := s.tokenRepo.Revoke(ctx, req.RefreshToken); err != nil {
		return nil, err
	}

	profileID, err := s.resolveProfileID(ctx, identity)
	if err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, identity, profileID)
}

// Logout revokes the presented refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.Revoke(ctx, refreshToken)
}

// Me describes the authenticated caller from its token claims
func (s *AuthService) Me(ctx context.Context, identityID int64, profileID int64) (*dto.CallerResponse, error) {
	identity, err := s.identityRepo.GetByID(ctx, identityID)
	if err != nil {
		return nil, err
	}

	return &dto.CallerResponse{
		ID:        identity.ID,
		Username:  identity.Username,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		Role:      string(identity.Role),
		ProfileID: profileID,
	}, nil
}

// resolveProfileID finds the lecturer or student row linked to the identity.
// Admins carry no profile.
func (s *AuthService) resolveProfileID(ctx context.Context, identity *models.Identity) (int64, error) {
	switch identity.Role {
	case models.RoleLecturer:
		lecturer, err := s.lecturerRepo.GetByIdentityID(ctx, identity.ID)
		if err != nil {
			return 0, fmt.Errorf("error resolving lecturer profile: %w", err)
		}
		return lecturer.ID, nil

	case models.RoleStudent:
		student, err := s.studentRepo.GetByIdentityID(ctx, identity.ID)
		if err != nil {
			return 0, fmt.Errorf("error resolving student profile: %w", err)
		}
		return student.ID, nil
	}

	return 0, nil
}

func (s *AuthService) issueTokenPair(ctx context.Context, identity *models.Identity, profileID int64) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(identity, profileID)
	if err != nil {
		return nil, err
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.Save(ctx, refreshToken, identity.ID, expiry); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("identityID", identity.ID).
		Str("role", string(identity.Role)).
		Time("refreshExpiry", expiry).
		Msg("Issued token pair")

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
