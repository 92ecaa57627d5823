// Package services holds the business logic between HTTP controllers and
// the storage layer.
//
// Services defined in this package:
//   - AuthService: login, token refresh and caller introspection
//   - IdentityService: identity listing, contact updates and cascade delete
//   - LecturerService / StudentService: profile lifecycle with derived
//     credentials
//   - SemesterService / CourseService: catalog management
//   - SectionService: class section management and enrollment
//   - CollegeDayService: attendance records gated by the authz engine
package services
