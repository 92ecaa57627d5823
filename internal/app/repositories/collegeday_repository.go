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

// CollegeDayRepository handles database operations for attendance records and
// their present-student links
type CollegeDayRepository struct {
	db *pgxpool.Pool
}

// NewCollegeDayRepository creates a new college day repository
func NewCollegeDayRepository(db *pgxpool.Pool) *CollegeDayRepository {
	return &CollegeDayRepository{
		db: db,
	}
}

// Create creates a college day and its present-student links in one
// transaction
func (r *CollegeDayRepository) Create(ctx context.Context, day *models.CollegeDay) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO college_days (date, class_section_id)
			VALUES ($1, $2)
			RETURNING id
		`, day.Date, day.ClassSectionID).Scan(&day.ID)
		if err != nil {
			return fmt.Errorf("error creating college day: %w", err)
		}

		return insertPresentStudents(ctx, tx, day.ID, day.PresentStudentIDs)
	})
}

// GetByID retrieves a college day with its present-student IDs
func (r *CollegeDayRepository) GetByID(ctx context.Context, id int64) (*models.CollegeDay, error) {
	var day models.CollegeDay
	err := r.db.QueryRow(ctx, `
		SELECT id, date, class_section_id FROM college_days WHERE id = $1
	`, id).Scan(&day.ID, &day.Date, &day.ClassSectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeDayNotFound
		}
		return nil, fmt.Errorf("error retrieving college day: %w", err)
	}

	present, err := r.getPresentStudentIDs(ctx, day.ID)
	if err != nil {
		return nil, err
	}
	day.PresentStudentIDs = present

	return &day, nil
}

// ListAll retrieves every college day, ordered by date then ID so the
// listing is stable across requests
func (r *CollegeDayRepository) ListAll(ctx context.Context) ([]*models.CollegeDay, error) {
	return r.list(ctx, `
		SELECT id, date, class_section_id
		FROM college_days
		ORDER BY date, id
	`)
}

// ListByLecturer retrieves college days bound to sections taught by the
// given lecturer
func (r *CollegeDayRepository) ListByLecturer(ctx context.Context, lecturerID int64) ([]*models.CollegeDay, error) {
	return r.list(ctx, `
		SELECT cd.id, cd.date, cd.class_section_id
		FROM college_days cd
		JOIN class_sections cs ON cs.id = cd.class_section_id
		WHERE cs.lecturer_id = $1
		ORDER BY cd.date, cd.id
	`, lecturerID)
}

// ListByStudent retrieves college days bound to sections the given student
// is enrolled in
func (r *CollegeDayRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.CollegeDay, error) {
	return r.list(ctx, `
		SELECT cd.id, cd.date, cd.class_section_id
		FROM college_days cd
		JOIN class_section_students css ON css.class_section_id = cd.class_section_id
		WHERE css.student_id = $1
		ORDER BY cd.date, cd.id
	`, studentID)
}

// Update updates a college day and replaces its present-student links in
// one transaction
func (r *CollegeDayRepository) Update(ctx context.Context, day *models.CollegeDay) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE college_days SET date = $1, class_section_id = $2 WHERE id = $3
		`, day.Date, day.ClassSectionID, day.ID)
		if err != nil {
			return fmt.Errorf("error updating college day: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCollegeDayNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM college_day_students WHERE college_day_id = $1`, day.ID); err != nil {
			return fmt.Errorf("error clearing present students: %w", err)
		}

		return insertPresentStudents(ctx, tx, day.ID, day.PresentStudentIDs)
	})
}

// Delete deletes a college day; present-student links go with it via FK
// cascade
func (r *CollegeDayRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM college_days WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting college day: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeDayNotFound
	}

	return nil
}

func (r *CollegeDayRepository) list(ctx context.Context, query string, args ...any) ([]*models.CollegeDay, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing college days: %w", err)
	}
	defer rows.Close()

	var days []*models.CollegeDay
	for rows.Next() {
		var day models.CollegeDay
		if err := rows.Scan(&day.ID, &day.Date, &day.ClassSectionID); err != nil {
			return nil, err
		}
		days = append(days, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachPresentStudents(ctx, days); err != nil {
		return nil, err
	}

	return days, nil
}

// attachPresentStudents loads present-student links for a batch of days with
// a single query instead of one per record
func (r *CollegeDayRepository) attachPresentStudents(ctx context.Context, days []*models.CollegeDay) error {
	if len(days) == 0 {
		return nil
	}

	byID := make(map[int64]*models.CollegeDay, len(days))
	ids := make([]int64, 0, len(days))
	for _, day := range days {
		day.PresentStudentIDs = []int64{}
		byID[day.ID] = day
		ids = append(ids, day.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT college_day_id, student_id
		FROM college_day_students
		WHERE college_day_id = ANY($1)
		ORDER BY college_day_id, student_id
	`, ids)
	if err != nil {
		return fmt.Errorf("error loading present students: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dayID, studentID int64
		if err := rows.Scan(&dayID, &studentID); err != nil {
			return err
		}
		if day, ok := byID[dayID]; ok {
			day.PresentStudentIDs = append(day.PresentStudentIDs, studentID)
		}
	}

	return rows.Err()
}

func (r *CollegeDayRepository) getPresentStudentIDs(ctx context.Context, dayID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT student_id FROM college_day_students
		WHERE college_day_id = $1 ORDER BY student_id
	`, dayID)
	if err != nil {
		return nil, fmt.Errorf("error loading present students: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func insertPresentStudents(ctx context.Context, tx pgx.Tx, dayID int64, studentIDs []int64) error {
	for _, studentID := range studentIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO college_day_students (college_day_id, student_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, dayID, studentID); err != nil {
			return fmt.Errorf("error marking student %d present: %w", studentID, err)
		}
	}
	return nil
}
