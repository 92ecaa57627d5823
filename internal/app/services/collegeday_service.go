package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campushq/attendance-backend/internal/app/authz"
	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
)

// collegeDayStore is the storage surface CollegeDayService needs
type collegeDayStore interface {
	Create(ctx context.Context, day *models.CollegeDay) error
	GetByID(ctx context.Context, id int64) (*models.CollegeDay, error)
	ListAll(ctx context.Context) ([]*models.CollegeDay, error)
	ListByLecturer(ctx context.Context, lecturerID int64) ([]*models.CollegeDay, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.CollegeDay, error)
	Update(ctx context.Context, day *models.CollegeDay) error
	Delete(ctx context.Context, id int64) error
}

// sectionStore resolves the section a college day is bound to
type sectionStore interface {
	GetByID(ctx context.Context, id int64) (*models.ClassSection, error)
}

// CollegeDayService handles attendance records. Every operation runs through
// the authz engine; hidden denials surface as a missing record so callers
// cannot probe for records outside their scope.
type CollegeDayService struct {
	days     collegeDayStore
	sections sectionStore
	logger   zerolog.Logger
}

// NewCollegeDayService creates a new CollegeDayService
func NewCollegeDayService(days collegeDayStore, sections sectionStore, logger zerolog.Logger) *CollegeDayService {
	return &CollegeDayService{
		days:     days,
		sections: sections,
		logger:   logger,
	}
}

// List returns the college days visible to the caller, narrowed by role
// before anything leaves storage. Results are ordered by date then ID.
func (s *CollegeDayService) List(ctx context.Context, caller authz.Caller) ([]*dto.CollegeDayResponse, error) {
	filter := authz.VisibleCollegeDays(caller)

	var days []*models.CollegeDay
	var err error

	switch filter.Scope {
	case authz.ScopeAll:
		days, err = s.days.ListAll(ctx)
	case authz.ScopeLecturer:
		days, err = s.days.ListByLecturer(ctx, filter.ProfileID)
	case authz.ScopeStudent:
		days, err = s.days.ListByStudent(ctx, filter.ProfileID)
	default:
		return []*dto.CollegeDayResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CollegeDayResponse, 0, len(days))
	sections := map[int64]*models.ClassSection{}
	for _, day := range days {
		section, err := s.sectionFor(ctx, day, sections)
		if err != nil {
			return nil, err
		}
		responses = append(responses, newCollegeDayResponse(day, section))
	}

	return responses, nil
}

// Get retrieves a college day the caller is allowed to see. A record outside
// the caller's scope reads as not found.
func (s *CollegeDayService) Get(ctx context.Context, caller authz.Caller, id int64) (*dto.CollegeDayResponse, error) {
	day, err := s.days.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	section, facts, err := s.resolveSection(ctx, day)
	if err != nil {
		return nil, err
	}

	decision := authz.Decide(caller, authz.OpRead, authz.Target{Entity: authz.EntityCollegeDay, CollegeDay: facts})
	if !decision.Allow {
		return nil, decisionError(decision)
	}

	return newCollegeDayResponse(day, section), nil
}

// Create records a new college day. Only admins pass the engine here; the
// denial is explicit rather than hidden since no record exists to hide.
func (s *CollegeDayService) Create(ctx context.Context, caller authz.Caller, req *dto.CreateCollegeDayRequest) (*dto.CollegeDayResponse, error) {
	decision := authz.Decide(caller, authz.OpCreate, authz.Target{Entity: authz.EntityCollegeDay})
	if !decision.Allow {
		return nil, decisionError(decision)
	}

	section, err := s.validatePresence(ctx, req.ClassSectionID, req.StudentIDs)
	if err != nil {
		return nil, err
	}

	day := &models.CollegeDay{
		Date:              req.Date,
		ClassSectionID:    req.ClassSectionID,
		PresentStudentIDs: req.StudentIDs,
	}
	if err := s.days.Create(ctx, day); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("collegeDayID", day.ID).
		Time("date", day.Date).
		Int("present", len(req.StudentIDs)).
		Msg("Created college day")

	return newCollegeDayResponse(day, section), nil
}

// Update rewrites a college day the caller may modify. The present set is
// validated against the enrollment of the section the record ends up bound to.
func (s *CollegeDayService) Update(ctx context.Context, caller authz.Caller, id int64, req *dto.UpdateCollegeDayRequest) (*dto.CollegeDayResponse, error) {
	day, err := s.days.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_, facts, err := s.resolveSection(ctx, day)
	if err != nil {
		return nil, err
	}

	decision := authz.Decide(caller, authz.OpUpdate, authz.Target{Entity: authz.EntityCollegeDay, CollegeDay: facts})
	if !decision.Allow {
		return nil, decisionError(decision)
	}

	section, err := s.validatePresence(ctx, req.ClassSectionID, req.StudentIDs)
	if err != nil {
		return nil, err
	}

	day.Date = req.Date
	day.ClassSectionID = req.ClassSectionID
	day.PresentStudentIDs = req.StudentIDs
	if err := s.days.Update(ctx, day); err != nil {
		return nil, err
	}

	return newCollegeDayResponse(day, section), nil
}

// Delete removes a college day. Lifecycle is admin-only and the denial is
// explicit.
func (s *CollegeDayService) Delete(ctx context.Context, caller authz.Caller, id int64) error {
	decision := authz.Decide(caller, authz.OpDelete, authz.Target{Entity: authz.EntityCollegeDay})
	if !decision.Allow {
		return decisionError(decision)
	}

	if err := s.days.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("collegeDayID", id).Msg("Deleted college day")
	return nil
}

// resolveSection loads the bound section and converts it to the relation
// facts the engine needs. A dangling or absent binding yields nil facts,
// which the engine treats as an orphan record.
func (s *CollegeDayService) resolveSection(ctx context.Context, day *models.CollegeDay) (*models.ClassSection, *authz.CollegeDayFacts, error) {
	if day.ClassSectionID == nil {
		return nil, nil, nil
	}

	section, err := s.sections.GetByID(ctx, *day.ClassSectionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSectionNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	facts := &authz.CollegeDayFacts{
		HasSection:         true,
		SectionLecturerID:  section.LecturerID,
		EnrolledStudentIDs: enrolledIDs(section),
	}
	return section, facts, nil
}

// validatePresence enforces that every present student is enrolled in the
// bound section. An unbound day has no enrollment, so its present set must
// be empty.
func (s *CollegeDayService) validatePresence(ctx context.Context, sectionID *int64, studentIDs []int64) (*models.ClassSection, error) {
	if sectionID == nil {
		if len(studentIDs) > 0 {
			return nil, apperrors.NewValidationError("studentIds", "a college day without a class section cannot mark students present")
		}
		return nil, nil
	}

	section, err := s.sections.GetByID(ctx, *sectionID)
	if err != nil {
		return nil, err
	}

	enrolled := map[int64]bool{}
	for _, id := range enrolledIDs(section) {
		enrolled[id] = true
	}
	for _, id := range studentIDs {
		if !enrolled[id] {
			return nil, apperrors.ErrNotEnrolled
		}
	}

	return section, nil
}

func (s *CollegeDayService) sectionFor(ctx context.Context, day *models.CollegeDay, cache map[int64]*models.ClassSection) (*models.ClassSection, error) {
	if day.ClassSectionID == nil {
		return nil, nil
	}
	if section, ok := cache[*day.ClassSectionID]; ok {
		return section, nil
	}

	section, err := s.sections.GetByID(ctx, *day.ClassSectionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSectionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	cache[*day.ClassSectionID] = section
	return section, nil
}

// decisionError maps an engine denial to the error the API surfaces: hidden
// denials read as a missing record, explicit ones as forbidden with the rule's
// reason.
func decisionError(decision authz.Decision) error {
	if decision.Hidden {
		return apperrors.ErrCollegeDayNotFound
	}
	return apperrors.NewForbiddenError(decision.Reason)
}

func enrolledIDs(section *models.ClassSection) []int64 {
	ids := make([]int64, 0, len(section.Students))
	for _, student := range section.Students {
		ids = append(ids, student.ID)
	}
	return ids
}

func newCollegeDayResponse(day *models.CollegeDay, section *models.ClassSection) *dto.CollegeDayResponse {
	resp := &dto.CollegeDayResponse{
		ID:             day.ID,
		Date:           day.Date,
		ClassSectionID: day.ClassSectionID,
		StudentIDs:     day.PresentStudentIDs,
	}
	if resp.StudentIDs == nil {
		resp.StudentIDs = []int64{}
	}

	if section != nil {
		resp.SectionNumber = section.Number
		if section.Course != nil {
			resp.CourseCode = section.Course.Code
			resp.CourseName = section.Course.Name
		}
		if section.Semester != nil {
			resp.SemesterYear = section.Semester.Year
			resp.SemesterTerm = section.Semester.Term
		}
		resp.LecturerID = section.LecturerID
		if section.Lecturer != nil && section.Lecturer.Identity != nil {
			resp.LecturerFirstName = section.Lecturer.Identity.FirstName
			resp.LecturerLastName = section.Lecturer.Identity.LastName
		}
	}

	return resp
}
