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

// SectionRepository handles database operations for class sections and their
// student enrollment links
type SectionRepository struct {
	db *pgxpool.Pool
}

// NewSectionRepository creates a new class section repository
func NewSectionRepository(db *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{
		db: db,
	}
}

// Create creates a new class section and its enrollment links in one
// transaction
func (r *SectionRepository) Create(ctx context.Context, section *models.ClassSection, studentIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO class_sections (number, course_id, semester_id, lecturer_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, section.Number, section.CourseID, section.SemesterID, section.LecturerID).Scan(&section.ID)
		if err != nil {
			return fmt.Errorf("error creating class section: %w", err)
		}

		return insertSectionStudents(ctx, tx, section.ID, studentIDs)
	})
}

// GetByID retrieves a class section with its course, semester, lecturer and
// enrolled students
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*models.ClassSection, error) {
	var section models.ClassSection
	err := r.db.QueryRow(ctx, `
		SELECT id, number, course_id, semester_id, lecturer_id
		FROM class_sections WHERE id = $1
	`, id).Scan(&section.ID, &section.Number, &section.CourseID, &section.SemesterID, &section.LecturerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving class section: %w", err)
	}

	if err := r.loadRelations(ctx, &section); err != nil {
		return nil, err
	}

	return &section, nil
}

// GetAll retrieves all class sections with their relations
func (r *SectionRepository) GetAll(ctx context.Context) ([]*models.ClassSection, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, number, course_id, semester_id, lecturer_id
		FROM class_sections ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.ClassSection
	for rows.Next() {
		var section models.ClassSection
		if err := rows.Scan(&section.ID, &section.Number, &section.CourseID,
			&section.SemesterID, &section.LecturerID); err != nil {
			return nil, err
		}
		sections = append(sections, &section)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, section := range sections {
		if err := r.loadRelations(ctx, section); err != nil {
			return nil, err
		}
	}

	return sections, nil
}

// Update updates a class section and replaces its enrollment links in one
// transaction
func (r *SectionRepository) Update(ctx context.Context, section *models.ClassSection, studentIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE class_sections
			SET number = $1, course_id = $2, semester_id = $3, lecturer_id = $4
			WHERE id = $5
		`, section.Number, section.CourseID, section.SemesterID, section.LecturerID, section.ID)
		if err != nil {
			return fmt.Errorf("error updating class section: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrSectionNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM class_section_students WHERE class_section_id = $1`, section.ID); err != nil {
			return fmt.Errorf("error clearing section enrollment: %w", err)
		}

		return insertSectionStudents(ctx, tx, section.ID, studentIDs)
	})
}

// Delete deletes a class section; enrollment links go with it via FK cascade
// and attendance records for the section lose their binding.
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM class_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting class section: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSectionNotFound
	}

	return nil
}

// GetStudentIDs retrieves the IDs of students enrolled in a section
func (r *SectionRepository) GetStudentIDs(ctx context.Context, sectionID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT student_id FROM class_section_students
		WHERE class_section_id = $1 ORDER BY student_id
	`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving section enrollment: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *SectionRepository) loadRelations(ctx context.Context, section *models.ClassSection) error {
	var course models.Course
	err := r.db.QueryRow(ctx, `SELECT id, code, name FROM courses WHERE id = $1`,
		section.CourseID).Scan(&course.ID, &course.Code, &course.Name)
	if err != nil {
		return fmt.Errorf("error loading section course: %w", err)
	}
	section.Course = &course

	var semester models.Semester
	err = r.db.QueryRow(ctx, `SELECT id, year, term FROM semesters WHERE id = $1`,
		section.SemesterID).Scan(&semester.ID, &semester.Year, &semester.Term)
	if err != nil {
		return fmt.Errorf("error loading section semester: %w", err)
	}
	section.Semester = &semester

	lecturer, err := scanLecturer(r.db.QueryRow(ctx, lecturerJoinQuery+` WHERE l.id = $1`, section.LecturerID))
	if err != nil {
		return fmt.Errorf("error loading section lecturer: %w", err)
	}
	section.Lecturer = lecturer

	rows, err := r.db.Query(ctx, studentJoinQuery+`
		JOIN class_section_students css ON css.student_id = s.id
		WHERE css.class_section_id = $1
		ORDER BY s.id
	`, section.ID)
	if err != nil {
		return fmt.Errorf("error loading section students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	section.Students = students

	return nil
}

func insertSectionStudents(ctx context.Context, tx pgx.Tx, sectionID int64, studentIDs []int64) error {
	for _, studentID := range studentIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO class_section_students (class_section_id, student_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, sectionID, studentID); err != nil {
			return fmt.Errorf("error enrolling student %d: %w", studentID, err)
		}
	}
	return nil
}
