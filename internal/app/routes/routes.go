package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/attendance-backend/internal/app/controllers"
	"github.com/campushq/attendance-backend/internal/app/models"
	"github.com/campushq/attendance-backend/internal/middleware"
)

// SetupRouter configures all application routes.
//
// The catalog entities (identities, lecturers, students, semesters, courses,
// class sections) are readable by any authenticated caller and writable only
// by admins, so their mutations are gated at the route level. College day
// routes carry no role gate: the service narrows and denies per record.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	identityController *controllers.IdentityController,
	lecturerController *controllers.LecturerController,
	studentController *controllers.StudentController,
	semesterController *controllers.SemesterController,
	courseController *controllers.CourseController,
	sectionController *controllers.SectionController,
	collegeDayController *controllers.CollegeDayController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.POST("/auth/logout", authController.Logout)
	authenticated.GET("/auth/me", authController.Me)

	adminOnly := authMiddleware.RoleRequired(models.RoleAdmin)

	identities := authenticated.Group("/identities")
	{
		identities.GET("", identityController.GetAllIdentities)
		identities.GET("/:id", identityController.GetIdentity)

		identitiesAdmin := identities.Group("")
		identitiesAdmin.Use(adminOnly)
		{
			identitiesAdmin.PUT("/:id", identityController.UpdateIdentity)
			identitiesAdmin.DELETE("/:id", identityController.DeleteIdentity)
		}
	}

	lecturers := authenticated.Group("/lecturers")
	{
		lecturers.GET("", lecturerController.GetAllLecturers)
		lecturers.GET("/:id", lecturerController.GetLecturer)

		lecturersAdmin := lecturers.Group("")
		lecturersAdmin.Use(adminOnly)
		{
			lecturersAdmin.POST("", lecturerController.CreateLecturer)
			lecturersAdmin.PUT("/:id", lecturerController.UpdateLecturer)
			lecturersAdmin.DELETE("/:id", lecturerController.DeleteLecturer)
		}
	}

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudent)

		studentsAdmin := students.Group("")
		studentsAdmin.Use(adminOnly)
		{
			studentsAdmin.POST("", studentController.CreateStudent)
			studentsAdmin.PUT("/:id", studentController.UpdateStudent)
			studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	semesters := authenticated.Group("/semesters")
	{
		semesters.GET("", semesterController.GetAllSemesters)
		semesters.GET("/:id", semesterController.GetSemester)

		semestersAdmin := semesters.Group("")
		semestersAdmin.Use(adminOnly)
		{
			semestersAdmin.POST("", semesterController.CreateSemester)
			semestersAdmin.PUT("/:id", semesterController.UpdateSemester)
			semestersAdmin.DELETE("/:id", semesterController.DeleteSemester)
		}
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourse)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(adminOnly)
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	sections := authenticated.Group("/class-sections")
	{
		sections.GET("", sectionController.GetAllSections)
		sections.GET("/:id", sectionController.GetSection)

		sectionsAdmin := sections.Group("")
		sectionsAdmin.Use(adminOnly)
		{
			sectionsAdmin.POST("", sectionController.CreateSection)
			sectionsAdmin.PUT("/:id", sectionController.UpdateSection)
			sectionsAdmin.DELETE("/:id", sectionController.DeleteSection)
		}
	}

	collegeDays := authenticated.Group("/college-days")
	{
		collegeDays.GET("", collegeDayController.ListCollegeDays)
		collegeDays.GET("/:id", collegeDayController.GetCollegeDay)
		collegeDays.POST("", collegeDayController.CreateCollegeDay)
		collegeDays.PUT("/:id", collegeDayController.UpdateCollegeDay)
		collegeDays.DELETE("/:id", collegeDayController.DeleteCollegeDay)
	}
}
