package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/services"
	"github.com/campushq/attendance-backend/internal/middleware"
)

// LecturerController handles lecturer profile endpoints. Reads are open to
// any authenticated caller; mutations are route-gated to admins.
type LecturerController struct {
	lecturerService *services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService *services.LecturerService) *LecturerController {
	return &LecturerController{
		lecturerService: lecturerService,
	}
}

// CreateLecturer provisions a lecturer profile
// @Summary Create a lecturer
// @Description Creates a lecturer profile with a derived username and initial password
// @Tags lecturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfileRequest true "Profile information"
// @Success 201 {object} dto.APIResponse{data=dto.ProfileResponse} "Lecturer created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Generated username already exists"
// @Router /lecturers [post]
func (c *LecturerController) CreateLecturer(ctx *gin.Context) {
	var req dto.CreateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	lecturer, err := c.lecturerService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(lecturer))
}

// GetLecturer retrieves a lecturer profile
// @Summary Get lecturer details
// @Tags lecturers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecturer ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Lecturer details"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Router /lecturers/{id} [get]
func (c *LecturerController) GetLecturer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	lecturer, err := c.lecturerService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lecturer))
}

// GetAllLecturers lists lecturer profiles
// @Summary List lecturers
// @Tags lecturers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ProfileResponse} "Lecturers"
// @Router /lecturers [get]
func (c *LecturerController) GetAllLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lecturers))
}

// UpdateLecturer updates a lecturer profile
// @Summary Update a lecturer
// @Tags lecturers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecturer ID"
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ProfileResponse} "Lecturer updated"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Router /lecturers/{id} [put]
func (c *LecturerController) UpdateLecturer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	lecturer, err := c.lecturerService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(lecturer))
}

// DeleteLecturer removes a lecturer profile and its identity
// @Summary Delete a lecturer
// @Tags lecturers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lecturer ID"
// @Success 200 {object} dto.APIResponse "Lecturer deleted"
// @Failure 404 {object} dto.ErrorResponse "Lecturer not found"
// @Router /lecturers/{id} [delete]
func (c *LecturerController) DeleteLecturer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.lecturerService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Lecturer deleted"))
}
