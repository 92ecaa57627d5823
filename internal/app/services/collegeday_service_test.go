package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/attendance-backend/internal/app/authz"
	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/pkg/apperrors"
)

type stubDayStore struct {
	days    map[int64]*models.CollegeDay
	nextID  int64
	deleted []int64

	listAllCalls      int
	listLecturerCalls []int64
	listStudentCalls  []int64
}

func (s *stubDayStore) Create(_ context.Context, day *models.CollegeDay) error {
	s.nextID++
	day.ID = s.nextID
	s.days[day.ID] = day
	return nil
}

func (s *stubDayStore) GetByID(_ context.Context, id int64) (*models.CollegeDay, error) {
	day, ok := s.days[id]
	if !ok {
		return nil, apperrors.ErrCollegeDayNotFound
	}
	return day, nil
}

func (s *stubDayStore) ListAll(_ context.Context) ([]*models.CollegeDay, error) {
	s.listAllCalls++
	var days []*models.CollegeDay
	for _, day := range s.days {
		days = append(days, day)
	}
	return days, nil
}

func (s *stubDayStore) ListByLecturer(_ context.Context, lecturerID int64) ([]*models.CollegeDay, error) {
	s.listLecturerCalls = append(s.listLecturerCalls, lecturerID)
	return nil, nil
}

func (s *stubDayStore) ListByStudent(_ context.Context, studentID int64) ([]*models.CollegeDay, error) {
	s.listStudentCalls = append(s.listStudentCalls, studentID)
	return nil, nil
}

func (s *stubDayStore) Update(_ context.Context, day *models.CollegeDay) error {
	if _, ok := s.days[day.ID]; !ok {
		return apperrors.ErrCollegeDayNotFound
	}
	s.days[day.ID] = day
	return nil
}

func (s *stubDayStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.days[id]; !ok {
		return apperrors.ErrCollegeDayNotFound
	}
	delete(s.days, id)
	s.deleted = append(s.deleted, id)
	return nil
}

type stubSectionStore struct {
	sections map[int64]*models.ClassSection
}

func (s *stubSectionStore) GetByID(_ context.Context, id int64) (*models.ClassSection, error) {
	section, ok := s.sections[id]
	if !ok {
		return nil, apperrors.ErrSectionNotFound
	}
	return section, nil
}

var (
	adminCaller    = authz.Caller{IdentityID: 1, Role: models.RoleAdmin}
	lecturerCaller = authz.Caller{IdentityID: 2, Role: models.RoleLecturer, ProfileID: 10}
	studentCaller  = authz.Caller{IdentityID: 3, Role: models.RoleStudent, ProfileID: 20}
)

func sectionID(id int64) *int64 { return &id }

func newTestService() (*CollegeDayService, *stubDayStore, *stubSectionStore) {
	section := &models.ClassSection{
		ID:         1,
		Number:     1,
		LecturerID: 10,
		Students:   []*models.Student{{ID: 20}, {ID: 21}},
	}
	otherSection := &models.ClassSection{
		ID:         2,
		Number:     2,
		LecturerID: 11,
		Students:   []*models.Student{{ID: 22}},
	}

	days := &stubDayStore{
		nextID: 3,
		days: map[int64]*models.CollegeDay{
			1: {ID: 1, Date: time.Now(), ClassSectionID: sectionID(1), PresentStudentIDs: []int64{20}},
			2: {ID: 2, Date: time.Now()},
			3: {ID: 3, Date: time.Now(), ClassSectionID: sectionID(2)},
		},
	}
	sections := &stubSectionStore{sections: map[int64]*models.ClassSection{1: section, 2: otherSection}}

	return NewCollegeDayService(days, sections, zerolog.Nop()), days, sections
}

func TestListNarrowsByRole(t *testing.T) {
	svc, days, _ := newTestService()
	ctx := context.Background()

	result, err := svc.List(ctx, adminCaller)
	require.NoError(t, err)
	assert.Len(t, result, 3)
	assert.Equal(t, 1, days.listAllCalls)

	_, err = svc.List(ctx, lecturerCaller)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, days.listLecturerCalls)

	_, err = svc.List(ctx, studentCaller)
	require.NoError(t, err)
	assert.Equal(t, []int64{20}, days.listStudentCalls)
}

func TestListUnauthenticatedSeesNothing(t *testing.T) {
	svc, days, _ := newTestService()

	result, err := svc.List(context.Background(), authz.Caller{})
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Zero(t, days.listAllCalls)
}

func TestGetEnrolledStudentReadsRecord(t *testing.T) {
	svc, _, _ := newTestService()

	day, err := svc.Get(context.Background(), studentCaller, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), day.ID)
	assert.Equal(t, []int64{20}, day.StudentIDs)
	assert.Equal(t, 1, day.SectionNumber)
}

func TestGetOutOfScopeReadsAsNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// Day 3 belongs to another lecturer's section.
	_, err := svc.Get(ctx, lecturerCaller, 3)
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)

	// Student 20 is not enrolled in section 2.
	_, err = svc.Get(ctx, studentCaller, 3)
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)

	// The denial is indistinguishable from a record that does not exist.
	_, err = svc.Get(ctx, studentCaller, 99)
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)
}

func TestGetOrphanDayVisibleOnlyToAdmins(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	day, err := svc.Get(ctx, adminCaller, 2)
	require.NoError(t, err)
	assert.Nil(t, day.ClassSectionID)

	_, err = svc.Get(ctx, lecturerCaller, 2)
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)

	_, err = svc.Get(ctx, studentCaller, 2)
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)
}

func TestGetDanglingSectionTreatedAsOrphan(t *testing.T) {
	svc, _, sections := newTestService()
	delete(sections.sections, 1)

	_, err := svc.Get(context.Background(), lecturerCaller, 1)
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)

	day, err := svc.Get(context.Background(), adminCaller, 1)
	require.NoError(t, err)
	assert.Zero(t, day.SectionNumber)
}

func TestCreateIsAdminOnly(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()
	req := &dto.CreateCollegeDayRequest{Date: time.Now(), ClassSectionID: sectionID(1)}

	for _, caller := range []authz.Caller{lecturerCaller, studentCaller} {
		_, err := svc.Create(ctx, caller, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
		assert.Contains(t, err.Error(), "admin")
	}

	day, err := svc.Create(ctx, adminCaller, req)
	require.NoError(t, err)
	assert.NotZero(t, day.ID)
}

func TestCreateRejectsPresentStudentsOutsideEnrollment(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), adminCaller, &dto.CreateCollegeDayRequest{
		Date:           time.Now(),
		ClassSectionID: sectionID(1),
		StudentIDs:     []int64{20, 22},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestCreateUnboundDayCannotMarkPresence(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), adminCaller, &dto.CreateCollegeDayRequest{
		Date:       time.Now(),
		StudentIDs: []int64{20},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	day, err := svc.Create(context.Background(), adminCaller, &dto.CreateCollegeDayRequest{Date: time.Now()})
	require.NoError(t, err)
	assert.Nil(t, day.ClassSectionID)
}

func TestUpdateLecturerOwnSection(t *testing.T) {
	svc, days, _ := newTestService()

	updated, err := svc.Update(context.Background(), lecturerCaller, 1, &dto.UpdateCollegeDayRequest{
		Date:           time.Now(),
		ClassSectionID: sectionID(1),
		StudentIDs:     []int64{20, 21},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{20, 21}, updated.StudentIDs)
	assert.ElementsMatch(t, []int64{20, 21}, days.days[1].PresentStudentIDs)
}

func TestUpdateStudentExplicitlyForbidden(t *testing.T) {
	svc, _, _ := newTestService()

	// The record is readable for the student, so the denial names the rule
	// instead of hiding the record.
	_, err := svc.Update(context.Background(), studentCaller, 1, &dto.UpdateCollegeDayRequest{
		Date:           time.Now(),
		ClassSectionID: sectionID(1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.NotErrorIs(t, err, apperrors.ErrCollegeDayNotFound)
}

func TestUpdateOutOfScopeReadsAsNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Update(context.Background(), lecturerCaller, 3, &dto.UpdateCollegeDayRequest{
		Date:           time.Now(),
		ClassSectionID: sectionID(2),
	})
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)
}

func TestUpdateValidatesPresenceAgainstNewSection(t *testing.T) {
	svc, _, _ := newTestService()

	// Rebinding day 1 to section 2 makes student 20 unenrolled.
	_, err := svc.Update(context.Background(), adminCaller, 1, &dto.UpdateCollegeDayRequest{
		Date:           time.Now(),
		ClassSectionID: sectionID(2),
		StudentIDs:     []int64{20},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)
}

func TestDeleteIsAdminOnly(t *testing.T) {
	svc, days, _ := newTestService()
	ctx := context.Background()

	err := svc.Delete(ctx, lecturerCaller, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = svc.Delete(ctx, studentCaller, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.Delete(ctx, adminCaller, 1))
	assert.Equal(t, []int64{1}, days.deleted)

	err = svc.Delete(ctx, adminCaller, 99)
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)
}

func TestDecisionErrorMapping(t *testing.T) {
	err := decisionError(authz.Decision{Hidden: true})
	assert.ErrorIs(t, err, apperrors.ErrCollegeDayNotFound)

	err = decisionError(authz.Decision{Reason: "students may not modify attendance records"})
	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, "students may not modify attendance records", custom.Message)
}
