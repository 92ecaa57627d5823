package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories aggregates all repositories for dependency wiring
type Repositories struct {
	IdentityRepository     *IdentityRepository
	LecturerRepository     *LecturerRepository
	StudentRepository      *StudentRepository
	SemesterRepository     *SemesterRepository
	CourseRepository       *CourseRepository
	SectionRepository      *SectionRepository
	CollegeDayRepository   *CollegeDayRepository
	RefreshTokenRepository *RefreshTokenRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		IdentityRepository:     NewIdentityRepository(db),
		LecturerRepository:     NewLecturerRepository(db),
		StudentRepository:      NewStudentRepository(db),
		SemesterRepository:     NewSemesterRepository(db),
		CourseRepository:       NewCourseRepository(db),
		SectionRepository:      NewSectionRepository(db),
		CollegeDayRepository:   NewCollegeDayRepository(db),
		RefreshTokenRepository: NewRefreshTokenRepository(db),
	}
}
