package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/repositories"
	"github.com/campushq/attendance-backend/internal/app/services"
	"github.com/campushq/attendance-backend/internal/config"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
	"github.com/campushq/attendance-backend/internal/pkg/auth"
)

// EnsureAdmin creates the bootstrap admin identity if it does not exist.
// Admins have no profile row; only their identity carries the role.
func EnsureAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("No admin seed password configured, skipping admin creation")
		return nil
	}

	identityRepo := repositories.NewIdentityRepository(dbPool)

	_, err := identityRepo.GetByUsername(ctx, cfg.Seed.AdminUsername)
	if err == nil {
		lgr.Debug().Str("username", cfg.Seed.AdminUsername).Msg("Admin identity already exists")
		return nil
	}
	if !errors.Is(err, apperrors.ErrIdentityNotFound) {
		return fmt.Errorf("error checking admin identity: %w", err)
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO identities (username, password, first_name, last_name, email, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, cfg.Seed.AdminUsername, hashed, "System", "Admin", "admin@campus.edu", models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("error creating admin identity: %w", err)
	}

	lgr.Info().Str("username", cfg.Seed.AdminUsername).Msg("Created bootstrap admin identity")
	return nil
}

// CreateDemoData seeds a small demo catalog: one semester, one course, two
// lecturers, a handful of students and a class section with attendance.
// Everything is skipped if the semester already exists so restarts stay
// idempotent.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	semesters, err := repos.SemesterRepository.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error checking existing semesters: %w", err)
	}
	if len(semesters) > 0 {
		lgr.Debug().Msg("Demo data already present, skipping")
		return nil
	}

	lgr.Info().Msg("Seeding demo data")

	semester := &models.Semester{Year: 2024, Term: "Fall"}
	if err := repos.SemesterRepository.Create(ctx, semester); err != nil {
		return err
	}

	course := &models.Course{Code: "CS101", Name: "Introduction to Computer Science"}
	if err := repos.CourseRepository.Create(ctx, course, []int64{semester.ID}); err != nil {
		return err
	}

	lecturerSvc := services.NewLecturerService(repos.LecturerRepository, repos.IdentityRepository, lgr)
	studentSvc := services.NewStudentService(repos.StudentRepository, repos.IdentityRepository, lgr)

	lecturer, err := lecturerSvc.Create(ctx, &dto.CreateProfileRequest{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan.turing@campus.edu",
		DOB:       "1980-06-23",
	})
	if err != nil {
		return err
	}

	studentSeeds := []dto.CreateProfileRequest{
		{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@campus.edu", DOB: "1999-05-02"},
		{FirstName: "John", LastName: "Smith", Email: "john.smith@campus.edu", DOB: "2000-11-17"},
		{FirstName: "Grace", LastName: "Hopper", Email: "grace.hopper@campus.edu", DOB: "1998-12-09"},
	}

	var studentIDs []int64
	for i := range studentSeeds {
		student, err := studentSvc.Create(ctx, &studentSeeds[i])
		if err != nil {
			return err
		}
		studentIDs = append(studentIDs, student.ID)
	}

	section := &models.ClassSection{
		Number:     1,
		CourseID:   course.ID,
		SemesterID: semester.ID,
		LecturerID: lecturer.ID,
	}
	if err := repos.SectionRepository.Create(ctx, section, studentIDs); err != nil {
		return err
	}

	lgr.Info().
		Int64("semesterID", semester.ID).
		Int64("courseID", course.ID).
		Int64("sectionID", section.ID).
		Int("students", len(studentIDs)).
		Msg("Demo data seeded")

	return nil
}
