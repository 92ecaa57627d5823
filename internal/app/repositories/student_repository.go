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

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentJoinQuery = `
	SELECT s.id, s.identity_id, s.dob,
	       i.id, i.username, i.password, i.first_name, i.last_name, i.email, i.role, i.created_at, i.updated_at
	FROM students s
	JOIN identities i ON i.id = s.identity_id
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	var identity models.Identity
	err := row.Scan(
		&student.ID,
		&student.IdentityID,
		&student.DOB,
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
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}
	student.Identity = &identity
	return &student, nil
}

// Create inserts the identity and the student profile in one transaction
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.Identity == nil {
		return fmt.Errorf("student identity is required")
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		identity := student.Identity
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

		student.IdentityID = identity.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO students (identity_id, dob)
			VALUES ($1, $2)
			RETURNING id
		`, student.IdentityID, student.DOB).Scan(&student.ID)
		if err != nil {
			return fmt.Errorf("error creating student profile: %w", err)
		}

		return nil
	})
}

// GetByID retrieves a student with its identity
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return scanStudent(r.db.QueryRow(ctx, studentJoinQuery+` WHERE s.id = $1`, id))
}

// GetByIdentityID retrieves the student linked to an identity
func (r *StudentRepository) GetByIdentityID(ctx context.Context, identityID int64) (*models.Student, error) {
	return scanStudent(r.db.QueryRow(ctx, studentJoinQuery+` WHERE s.identity_id = $1`, identityID))
}

// GetAll retrieves all students with their identities
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, studentJoinQuery+` ORDER BY s.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistAll reports whether every given student ID exists
func (r *StudentRepository) ExistAll(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE id = ANY($1)`, ids).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("error counting students: %w", err)
	}

	return count == len(ids), nil
}

// Update rewrites the profile's date of birth and the identity's contact
// fields together
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	if student.Identity == nil {
		return fmt.Errorf("student identity is required")
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE students SET dob = $1 WHERE id = $2
		`, student.DOB, student.ID)
		if err != nil {
			return fmt.Errorf("error updating student profile: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		identity := student.Identity
		_, err = tx.Exec(ctx, `
			UPDATE identities
			SET first_name = $1, last_name = $2, email = $3, updated_at = NOW()
			WHERE id = $4
		`, identity.FirstName, identity.LastName, identity.Email, student.IdentityID)
		if err != nil {
			return fmt.Errorf("error updating student identity: %w", err)
		}

		return nil
	})
}

// DeleteCascade removes the student profile and its identity atomically.
// If either half is already gone the whole delete rolls back.
func (r *StudentRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var identityID int64
		err := tx.QueryRow(ctx, `DELETE FROM students WHERE id = $1 RETURNING identity_id`, id).Scan(&identityID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error deleting student profile: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM identities WHERE id = $1`, identityID)
		if err != nil {
			return fmt.Errorf("error deleting student identity: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCascadeIncomplete
		}

		return nil
	})
}
