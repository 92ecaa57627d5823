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

// CourseRepository handles database operations for courses and their
// semester links
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// CodeExists checks if a course with the given code already exists
func (r *CourseRepository) CodeExists(ctx context.Context, code string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE code = $1 AND id != $2)`,
		code, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking course code existence: %w", err)
	}

	return exists, nil
}

// Create creates a new course and its semester links in one transaction
func (r *CourseRepository) Create(ctx context.Context, course *models.Course, semesterIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO courses (code, name)
			VALUES ($1, $2)
			RETURNING id
		`, course.Code, course.Name).Scan(&course.ID)
		if err != nil {
			return fmt.Errorf("error creating course: %w", err)
		}

		return insertCourseSemesters(ctx, tx, course.ID, semesterIDs)
	})
}

// GetByID retrieves a course with its semesters
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	err := r.db.QueryRow(ctx, `SELECT id, code, name FROM courses WHERE id = $1`, id).Scan(
		&course.ID, &course.Code, &course.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	semesters, err := r.getSemesters(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	course.Semesters = semesters

	return &course, nil
}

// GetAll retrieves all courses with their semesters
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `SELECT id, code, name FROM courses ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Code, &course.Name); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, course := range courses {
		semesters, err := r.getSemesters(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		course.Semesters = semesters
	}

	return courses, nil
}

// Update updates a course and replaces its semester links in one transaction
func (r *CourseRepository) Update(ctx context.Context, course *models.Course, semesterIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE courses SET code = $1, name = $2 WHERE id = $3
		`, course.Code, course.Name, course.ID)
		if err != nil {
			return fmt.Errorf("error updating course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM course_semesters WHERE course_id = $1`, course.ID); err != nil {
			return fmt.Errorf("error clearing course semesters: %w", err)
		}

		return insertCourseSemesters(ctx, tx, course.ID, semesterIDs)
	})
}

// Delete deletes a course by ID; link rows go with it via FK cascade
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *CourseRepository) getSemesters(ctx context.Context, courseID int64) ([]*models.Semester, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.year, s.term
		FROM semesters s
		JOIN course_semesters cs ON cs.semester_id = s.id
		WHERE cs.course_id = $1
		ORDER BY s.year, s.term
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course semesters: %w", err)
	}
	defer rows.Close()

	var semesters []*models.Semester
	for rows.Next() {
		var semester models.Semester
		if err := rows.Scan(&semester.ID, &semester.Year, &semester.Term); err != nil {
			return nil, err
		}
		semesters = append(semesters, &semester)
	}

	return semesters, rows.Err()
}

func insertCourseSemesters(ctx context.Context, tx pgx.Tx, courseID int64, semesterIDs []int64) error {
	for _, semesterID := range semesterIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO course_semesters (course_id, semester_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, courseID, semesterID); err != nil {
			return fmt.Errorf("error linking course to semester %d: %w", semesterID, err)
		}
	}
	return nil
}
