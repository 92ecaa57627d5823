// Package authz decides, per request, whether a caller may perform an
// operation on a record, and how list results must be narrowed for them.
// It is a pure rule evaluation over the caller's resolved role; it performs
// no I/O, so callers must supply the relation facts a decision depends on.
package authz

import (
	"github.com/campushq/attendance-backend/internal/app/models"
)

// Operation is the verb being authorized.
type Operation string

const (
	OpRead   Operation = "read"
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Entity identifies the record type an operation targets.
type Entity string

const (
	EntityIdentity     Entity = "identity"
	EntityLecturer     Entity = "lecturer"
	EntityStudent      Entity = "student"
	EntitySemester     Entity = "semester"
	EntityCourse       Entity = "course"
	EntityClassSection Entity = "class_section"
	EntityCollegeDay   Entity = "college_day"
)

// Caller is the resolved principal. Role and profile link are fixed once at
// authentication time and never recomputed per rule.
type Caller struct {
	IdentityID int64
	Role       models.RoleType
	// ProfileID is the lecturer or student row linked to the identity,
	// depending on Role; zero for admins.
	ProfileID int64
}

// Authenticated reports whether the caller resolved to a known identity.
func (c Caller) Authenticated() bool {
	return c.IdentityID > 0 && c.Role.Valid()
}

// CollegeDayFacts carries the relation facts object-level college day
// decisions depend on: the bound section's lecturer and enrollment.
type CollegeDayFacts struct {
	HasSection         bool
	SectionLecturerID  int64
	EnrolledStudentIDs []int64
}

// Enrolled reports whether the given student profile is in the section's
// enrollment.
func (f CollegeDayFacts) Enrolled(studentID int64) bool {
	for _, id := range f.EnrolledStudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// Target is what an operation acts on. CollegeDay must be set for
// object-level college day checks; it is ignored for other entities.
type Target struct {
	Entity     Entity
	CollegeDay *CollegeDayFacts
}

// Decision is the outcome of a rule evaluation.
type Decision struct {
	Allow bool
	// Hidden marks denials that must be indistinguishable from a missing
	// record, so existence cannot be probed through the API.
	Hidden bool
	// Reason explains explicit denials; empty for hidden ones.
	Reason string
}

func allowed() Decision {
	return Decision{Allow: true}
}

func denied(reason string) Decision {
	return Decision{Reason: reason}
}

func hidden() Decision {
	return Decision{Hidden: true}
}

// Decide evaluates the prioritized rule sequence; the first matching rule
// wins. Callers translate Hidden denials to a not-found outcome and plain
// denials to a forbidden outcome.
func Decide(caller Caller, op Operation, target Target) Decision {
	if !caller.Authenticated() {
		return denied("authentication required")
	}

	// Rule 1: admins may do anything to anything.
	if caller.Role == models.RoleAdmin {
		return allowed()
	}

	switch target.Entity {
	case EntityIdentity, EntityLecturer, EntityStudent, EntitySemester, EntityCourse:
		// Rule 2: globally readable, admin-writable.
		if op == OpRead || op == OpList {
			return allowed()
		}
		return denied("only admins may modify " + string(target.Entity) + " records")

	case EntityClassSection:
		// Rule 3: section membership and assignment are admin concerns.
		if op == OpRead || op == OpList {
			return allowed()
		}
		return denied("only admins may manage class sections")

	case EntityCollegeDay:
		return decideCollegeDay(caller, op, target.CollegeDay)
	}

	return denied("unknown entity")
}

// decideCollegeDay applies rules 4 and 5 for a non-admin caller.
func decideCollegeDay(caller Caller, op Operation, facts *CollegeDayFacts) Decision {
	// Rule 5 outranks the object-level allowances: lifecycle is admin-only,
	// and the denial is explicit rather than hidden.
	if op == OpCreate {
		return denied("you have to be an admin to create a college day")
	}
	if op == OpDelete {
		return denied("you have to be an admin to delete a college day")
	}

	// Rule 4: object-level read/update. A day without facts (or without a
	// bound section) is an orphan only admins can see.
	if facts == nil || !facts.HasSection {
		return hidden()
	}

	switch caller.Role {
	case models.RoleLecturer:
		if facts.SectionLecturerID != caller.ProfileID {
			return hidden()
		}
		return allowed()

	case models.RoleStudent:
		if !facts.Enrolled(caller.ProfileID) {
			return hidden()
		}
		if op == OpUpdate {
			// Students may read attendance for their sections but never
			// rewrite it; this denial is explicit since the record is
			// already visible to them.
			return denied("students may not modify attendance records")
		}
		return allowed()
	}

	return hidden()
}

// Scope narrows which college days a list operation returns.
type Scope int

const (
	// ScopeNone yields an empty result set.
	ScopeNone Scope = iota
	// ScopeAll yields the full collection.
	ScopeAll
	// ScopeLecturer yields days of sections taught by the caller.
	ScopeLecturer
	// ScopeStudent yields days of sections the caller is enrolled in.
	ScopeStudent
)

// CollegeDayFilter is the visibility predicate for list operations; the
// storage layer translates it to a query.
type CollegeDayFilter struct {
	Scope Scope
	// ProfileID qualifies ScopeLecturer and ScopeStudent.
	ProfileID int64
}

// VisibleCollegeDays returns the visibility predicate for the caller
// (rule 6). Unauthenticated callers see nothing.
func VisibleCollegeDays(caller Caller) CollegeDayFilter {
	if !caller.Authenticated() {
		return CollegeDayFilter{Scope: ScopeNone}
	}

	switch caller.Role {
	case models.RoleAdmin:
		return CollegeDayFilter{Scope: ScopeAll}
	case models.RoleLecturer:
		return CollegeDayFilter{Scope: ScopeLecturer, ProfileID: caller.ProfileID}
	case models.RoleStudent:
		return CollegeDayFilter{Scope: ScopeStudent, ProfileID: caller.ProfileID}
	}

	return CollegeDayFilter{Scope: ScopeNone}
}
