package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/repositories"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
)

// SectionService handles class section management and enrollment
type SectionService struct {
	sectionRepo  *repositories.SectionRepository
	courseRepo   *repositories.CourseRepository
	semesterRepo *repositories.SemesterRepository
	lecturerRepo *repositories.LecturerRepository
	studentRepo  *repositories.StudentRepository
	logger       zerolog.Logger
}

// NewSectionService creates a new SectionService
func NewSectionService(
	sectionRepo *repositories.SectionRepository,
	courseRepo *repositories.CourseRepository,
	semesterRepo *repositories.SemesterRepository,
	lecturerRepo *repositories.LecturerRepository,
	studentRepo *repositories.StudentRepository,
	logger zerolog.Logger,
) *SectionService {
	return &SectionService{
		sectionRepo:  sectionRepo,
		courseRepo:   courseRepo,
		semesterRepo: semesterRepo,
		lecturerRepo: lecturerRepo,
		studentRepo:  studentRepo,
		logger:       logger,
	}
}

// validateReferences checks that every row a section points at exists before
// the section is written
func (s *SectionService) validateReferences(ctx context.Context, number int, courseID, semesterID, lecturerID int64, studentIDs []int64) error {
	if number <= 0 {
		return apperrors.NewValidationError("number", "section number must be positive")
	}
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.semesterRepo.GetByID(ctx, semesterID); err != nil {
		return err
	}
	if _, err := s.lecturerRepo.GetByID(ctx, lecturerID); err != nil {
		return err
	}

	allExist, err := s.studentRepo.ExistAll(ctx, studentIDs)
	if err != nil {
		return err
	}
	if !allExist {
		return apperrors.NewValidationError("studentIds", "one or more students do not exist")
	}

	return nil
}

// Create creates a class section with its enrollment
func (s *SectionService) Create(ctx context.Context, req *dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	if err := s.validateReferences(ctx, req.Number, req.CourseID, req.SemesterID, req.LecturerID, req.StudentIDs); err != nil {
		return nil, err
	}

	section := &models.ClassSection{
		Number:     req.Number,
		CourseID:   req.CourseID,
		SemesterID: req.SemesterID,
		LecturerID: req.LecturerID,
	}
	if err := s.sectionRepo.Create(ctx, section, req.StudentIDs); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("sectionID", section.ID).Int("enrolled", len(req.StudentIDs)).Msg("Created class section")

	return s.GetByID(ctx, section.ID)
}

// GetByID retrieves a class section with its relations
func (s *SectionService) GetByID(ctx context.Context, id int64) (*dto.SectionResponse, error) {
	section, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newSectionResponse(section), nil
}

// GetAll retrieves all class sections
func (s *SectionService) GetAll(ctx context.Context) ([]*dto.SectionResponse, error) {
	sections, err := s.sectionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SectionResponse, 0, len(sections))
	for _, section := range sections {
		responses = append(responses, newSectionResponse(section))
	}
	return responses, nil
}

// Update updates a class section and replaces its enrollment
func (s *SectionService) Update(ctx context.Context, id int64, req *dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	if err := s.validateReferences(ctx, req.Number, req.CourseID, req.SemesterID, req.LecturerID, req.StudentIDs); err != nil {
		return nil, err
	}

	section := &models.ClassSection{
		ID:         id,
		Number:     req.Number,
		CourseID:   req.CourseID,
		SemesterID: req.SemesterID,
		LecturerID: req.LecturerID,
	}
	if err := s.sectionRepo.Update(ctx, section, req.StudentIDs); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete deletes a class section
func (s *SectionService) Delete(ctx context.Context, id int64) error {
	return s.sectionRepo.Delete(ctx, id)
}

func newSectionResponse(section *models.ClassSection) *dto.SectionResponse {
	resp := &dto.SectionResponse{
		ID:         section.ID,
		Number:     section.Number,
		CourseID:   section.CourseID,
		SemesterID: section.SemesterID,
		LecturerID: section.LecturerID,
		StudentIDs: []int64{},
	}

	if section.Course != nil {
		resp.CourseCode = section.Course.Code
		resp.CourseName = section.Course.Name
	}
	if section.Semester != nil {
		resp.SemesterYear = section.Semester.Year
		resp.SemesterTerm = section.Semester.Term
	}
	if section.Lecturer != nil && section.Lecturer.Identity != nil {
		resp.LecturerFirstName = section.Lecturer.Identity.FirstName
		resp.LecturerLastName = section.Lecturer.Identity.LastName
	}
	for _, student := range section.Students {
		resp.StudentIDs = append(resp.StudentIDs, student.ID)
	}

	return resp
}
