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
	"github.com/campushq/attendance-backend/internal/pkg/dberrors"
)

// LecturerRepository handles database operations for lecturer profiles
type LecturerRepository struct {
	db *pgxpool.Pool
}

// NewLecturerRepository creates a new lecturer repository
func NewLecturerRepository(db *pgxpool.Pool) *LecturerRepository {
	return &LecturerRepository{
		db: db,
	}
}

const lecturerJoinQuery = `
	SELECT l.id, l.identity_id, l.dob,
	       i.id, i.username, i.password, i.first_name, i.last_name, i.email, i.role, i.created_at, i.updated_at
	FROM lecturers l
	JOIN identities i ON i.id = l.identity_id
`

func scanLecturer(row pgx.Row) (*models.Lecturer, error) {
	var lecturer models.Lecturer
	var identity models.Identity
	err := row.Scan(
		&lecturer.ID,
		&lecturer.IdentityID,
		&lecturer.DOB,
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
			return nil, apperrors.ErrLecturerNotFound
		}
		return nil, fmt.Errorf("error scanning lecturer: %w", err)
	}
	lecturer.Identity = &identity
	return &lecturer, nil
}

// Create inserts the identity and the lecturer profile in one transaction;
// profiles are never created without their identity.
func (r *LecturerRepository) Create(ctx context.Context, lecturer *models.Lecturer) error {
	if lecturer.Identity == nil {
		return fmt.Errorf("lecturer identity is required")
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		identity := lecturer.Identity
		err := tx.QueryRow(ctx, `
			INSERT INTO identities (username, password, first_name, last_name, email, role)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`, identity.Username, identity.Password, identity.FirstName, identity.LastName,
			identity.Email, identity.Role,
		).Scan(&identity.ID, &identity.CreatedAt, &identity.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "identities_username_key") {
				return apperrors.ErrUsernameExists
			}
			return fmt.Errorf("error creating identity: %w", err)
		}

		lecturer.IdentityID = identity.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO lecturers (identity_id, dob)
			VALUES ($1, $2)
			RETURNING id
		`, lecturer.IdentityID, lecturer.DOB).Scan(&lecturer.ID)
		if err != nil {
			return fmt.Errorf("error creating lecturer profile: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a lecturer with its identity
func (r *LecturerRepository) GetByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	return scanLecturer(r.db.QueryRow(ctx, lecturerJoinQuery+` WHERE l.id = $1`, id))
}

// GetByIdentityID retrieves the lecturer linked to an identity
func (r *LecturerRepository) GetByIdentityID(ctx context.Context, identityID int64) (*models.Lecturer, error) {
	return scanLecturer(r.db.QueryRow(ctx, lecturerJoinQuery+` WHERE l.identity_id = $1`, identityID))
}

// GetAll retrieves all lecturers with their identities
func (r *LecturerRepository) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	rows, err := r.db.Query(ctx, lecturerJoinQuery+` ORDER BY l.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lecturers []*models.Lecturer
	for rows.Next() {
		lecturer, err := scanLecturer(rows)
		if err != nil {
			return nil, err
		}
		lecturers = append(lecturers, lecturer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lecturers, nil
}

// Update rewrites the profile's date of birth and the identity's contact
// fields together
func (r *LecturerRepository) Update(ctx context.Context, lecturer *models.Lecturer) error {
	if lecturer.Identity == nil {
		return fmt.Errorf("lecturer identity is required")
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE lecturers SET dob = $1 WHERE id = $2
		`, lecturer.DOB, lecturer.ID)
		if err != nil {
			return fmt.Errorf("error updating lecturer profile: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrLecturerNotFound
		}

		identity := lecturer.Identity
		_, err = tx.Exec(ctx, `
			UPDATE identities
			SET first_name = $1, last_name = $2, email = $3, updated_at = NOW()
			WHERE id = $4
		`, identity.FirstName, identity.LastName, identity.Email, lecturer.IdentityID)
		if err != nil {
			return fmt.Errorf("error updating lecturer identity: %w", err)
		}

		return nil
	})
}

// DeleteCascade removes the lecturer profile and its identity atomically.
// If either half is already gone the whole delete rolls back.
func (r *LecturerRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var identityID int64
		err := tx.QueryRow(ctx, `DELETE FROM lecturers WHERE id = $1 RETURNING identity_id`, id).Scan(&identityID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrLecturerNotFound
			}
			return fmt.Errorf("error deleting lecturer profile: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM identities WHERE id = $1`, identityID)
		if err != nil {
			return fmt.Errorf("error deleting lecturer identity: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCascadeIncomplete
		}

		return nil
	})
}
