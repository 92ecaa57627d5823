package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/db"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
)

// IdentityRepository handles database operations for identities
type IdentityRepository struct {
	db *pgxpool.Pool
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

const identityColumns = `id, username, password, first_name, last_name, email, role, created_at, updated_at`

func scanIdentity(row pgx.Row) (*models.Identity, error) {
	var identity models.Identity
	err := row.Scan(
		&identity.ID,
		&identity.Username,
		&identity.Password,
		&identity.FirstName,
		&identity.LastName,
		&identity.Email,
		&identity.Role,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("error scanning identity: %w", err)
	}
	return &identity, nil
}

// GetByID retrieves an identity by ID
func (r *IdentityRepository) GetByID(ctx context.Context, id int64) (*models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE id = $1`
	return scanIdentity(r.db.QueryRow(ctx, query, id))
}

// GetByUsername retrieves an identity by its login handle
func (r *IdentityRepository) GetByUsername(ctx context.Context, username string) (*models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities WHERE username = $1`
	return scanIdentity(r.db.QueryRow(ctx, query, username))
}

// GetAll retrieves all identities ordered by creation
func (r *IdentityRepository) GetAll(ctx context.Context) ([]*models.Identity, error) {
	query := `SELECT ` + identityColumns + ` FROM identities ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var identities []*models.Identity
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, err
		}
		identities = append(identities, identity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return identities, nil
}

// UsernameExists checks whether the generated handle is already taken
func (r *IdentityRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM identities WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}

// UpdateContact updates the mutable contact fields of an identity
func (r *IdentityRepository) UpdateContact(ctx context.Context, identity *models.Identity) error {
	query := `
		UPDATE identities
		SET first_name = $1, last_name = $2, email = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		identity.FirstName, identity.LastName, identity.Email, identity.ID)

	if err != nil {
		return fmt.Errorf("error updating identity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrIdentityNotFound
	}

	return nil
}

// DeleteCascade removes an identity and whichever profile links to it in a
// single transaction. Deleting from the identity side must take the profile
// with it, symmetrically to the profile-side cascade.
func (r *IdentityRepository) DeleteCascade(ctx context.Context, identityID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		// Profile rows reference identities with ON DELETE CASCADE, but the
		// delete is issued explicitly so a missing pair surfaces instead of
		// silently succeeding.
		if _, err := tx.Exec(ctx, `DELETE FROM lecturers WHERE identity_id = $1`, identityID); err != nil {
			return fmt.Errorf("error deleting lecturer profile: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM students WHERE identity_id = $1`, identityID); err != nil {
			return fmt.Errorf("error deleting student profile: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM identities WHERE id = $1`, identityID)
		if err != nil {
			return fmt.Errorf("error deleting identity: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrIdentityNotFound
		}

		return nil
	})
}
