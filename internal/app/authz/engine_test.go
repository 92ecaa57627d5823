package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campushq/attendance-backend/internal/app/models"
)

var (
	admin    = Caller{IdentityID: 1, Role: models.RoleAdmin}
	lecturer = Caller{IdentityID: 2, Role: models.RoleLecturer, ProfileID: 10}
	student  = Caller{IdentityID: 3, Role: models.RoleStudent, ProfileID: 20}
	nobody   = Caller{}
)

func dayFacts(lecturerID int64, enrolled ...int64) *CollegeDayFacts {
	return &CollegeDayFacts{
		HasSection:         true,
		SectionLecturerID:  lecturerID,
		EnrolledStudentIDs: enrolled,
	}
}

func TestAdminAllowedEverything(t *testing.T) {
	entities := []Entity{
		EntityIdentity, EntityLecturer, EntityStudent,
		EntitySemester, EntityCourse, EntityClassSection, EntityCollegeDay,
	}
	ops := []Operation{OpRead, OpList, OpCreate, OpUpdate, OpDelete}

	for _, entity := range entities {
		for _, op := range ops {
			d := Decide(admin, op, Target{Entity: entity})
			assert.True(t, d.Allow, "admin %s on %s", op, entity)
		}
	}
}

func TestUnauthenticatedDenied(t *testing.T) {
	d := Decide(nobody, OpRead, Target{Entity: EntityCourse})
	assert.False(t, d.Allow)
	assert.False(t, d.Hidden)
}

func TestReadOnlyGlobalEntities(t *testing.T) {
	for _, entity := range []Entity{EntityIdentity, EntityLecturer, EntityStudent, EntitySemester, EntityCourse} {
		for _, caller := range []Caller{lecturer, student} {
			assert.True(t, Decide(caller, OpRead, Target{Entity: entity}).Allow, "%s read %s", caller.Role, entity)
			assert.True(t, Decide(caller, OpList, Target{Entity: entity}).Allow, "%s list %s", caller.Role, entity)

			for _, op := range []Operation{OpCreate, OpUpdate, OpDelete} {
				d := Decide(caller, op, Target{Entity: entity})
				assert.False(t, d.Allow, "%s %s %s", caller.Role, op, entity)
				assert.False(t, d.Hidden, "mutation denial on %s should carry a reason", entity)
				assert.NotEmpty(t, d.Reason)
			}
		}
	}
}

func TestClassSectionMutationAdminOnly(t *testing.T) {
	// Any authenticated caller may read section metadata.
	assert.True(t, Decide(lecturer, OpRead, Target{Entity: EntityClassSection}).Allow)
	assert.True(t, Decide(student, OpRead, Target{Entity: EntityClassSection}).Allow)

	for _, op := range []Operation{OpCreate, OpUpdate, OpDelete} {
		assert.False(t, Decide(lecturer, op, Target{Entity: EntityClassSection}).Allow)
		assert.False(t, Decide(student, op, Target{Entity: EntityClassSection}).Allow)
	}
}

func TestCollegeDayLifecycleAdminOnly(t *testing.T) {
	facts := dayFacts(lecturer.ProfileID, student.ProfileID)

	for _, caller := range []Caller{lecturer, student} {
		for _, op := range []Operation{OpCreate, OpDelete} {
			d := Decide(caller, op, Target{Entity: EntityCollegeDay, CollegeDay: facts})
			assert.False(t, d.Allow, "%s %s college day", caller.Role, op)
			assert.False(t, d.Hidden)
			assert.NotEmpty(t, d.Reason)
		}
	}

	assert.True(t, Decide(admin, OpCreate, Target{Entity: EntityCollegeDay}).Allow)
	assert.True(t, Decide(admin, OpDelete, Target{Entity: EntityCollegeDay}).Allow)
}

func TestCollegeDayLecturerOwnership(t *testing.T) {
	own := dayFacts(lecturer.ProfileID)
	other := dayFacts(99)

	assert.True(t, Decide(lecturer, OpRead, Target{Entity: EntityCollegeDay, CollegeDay: own}).Allow)
	assert.True(t, Decide(lecturer, OpUpdate, Target{Entity: EntityCollegeDay, CollegeDay: own}).Allow)

	// A day of someone else's section must look absent, not forbidden.
	for _, op := range []Operation{OpRead, OpUpdate} {
		d := Decide(lecturer, op, Target{Entity: EntityCollegeDay, CollegeDay: other})
		assert.False(t, d.Allow)
		assert.True(t, d.Hidden)
	}
}

func TestCollegeDayStudentEnrollment(t *testing.T) {
	enrolled := dayFacts(lecturer.ProfileID, student.ProfileID, 21)
	notEnrolled := dayFacts(lecturer.ProfileID, 21, 22)

	assert.True(t, Decide(student, OpRead, Target{Entity: EntityCollegeDay, CollegeDay: enrolled}).Allow)

	d := Decide(student, OpRead, Target{Entity: EntityCollegeDay, CollegeDay: notEnrolled})
	assert.False(t, d.Allow)
	assert.True(t, d.Hidden)

	// Students never write attendance, even for sections they can read.
	d = Decide(student, OpUpdate, Target{Entity: EntityCollegeDay, CollegeDay: enrolled})
	assert.False(t, d.Allow)
	assert.False(t, d.Hidden)
	assert.NotEmpty(t, d.Reason)
}

func TestOrphanCollegeDayHiddenFromNonAdmins(t *testing.T) {
	orphan := &CollegeDayFacts{HasSection: false}

	for _, caller := range []Caller{lecturer, student} {
		d := Decide(caller, OpRead, Target{Entity: EntityCollegeDay, CollegeDay: orphan})
		assert.False(t, d.Allow)
		assert.True(t, d.Hidden)
	}

	assert.True(t, Decide(admin, OpRead, Target{Entity: EntityCollegeDay, CollegeDay: orphan}).Allow)
}

func TestVisibleCollegeDays(t *testing.T) {
	assert.Equal(t, CollegeDayFilter{Scope: ScopeAll}, VisibleCollegeDays(admin))
	assert.Equal(t, CollegeDayFilter{Scope: ScopeLecturer, ProfileID: 10}, VisibleCollegeDays(lecturer))
	assert.Equal(t, CollegeDayFilter{Scope: ScopeStudent, ProfileID: 20}, VisibleCollegeDays(student))
	assert.Equal(t, CollegeDayFilter{Scope: ScopeNone}, VisibleCollegeDays(nobody))
}
