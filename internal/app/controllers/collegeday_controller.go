package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/services"
	"github.com/campushq/attendance-backend/internal/middleware"
)

// CollegeDayController handles attendance record endpoints. Unlike the
// catalog controllers these are not route-gated by role: every caller may
// hit them, and the service narrows or denies per record through the authz
// engine.
type CollegeDayController struct {
	collegeDayService *services.CollegeDayService
}

// NewCollegeDayController creates a new CollegeDayController
func NewCollegeDayController(collegeDayService *services.CollegeDayService) *CollegeDayController {
	return &CollegeDayController{
		collegeDayService: collegeDayService,
	}
}

// ListCollegeDays lists the attendance records visible to the caller
// @Summary List college days
// @Description Admins see every record, lecturers the records of their sections, students the records of sections they are enrolled in
// @Tags college-days
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.CollegeDayResponse} "College days"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /college-days [get]
func (c *CollegeDayController) ListCollegeDays(ctx *gin.Context) {
	caller, ok := middleware.GetCaller(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errUnauthenticated())
		return
	}

	days, err := c.collegeDayService.List(ctx.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(days))
}

// GetCollegeDay retrieves an attendance record
// @Summary Get college day details
// @Description Records outside the caller's scope read as not found
// @Tags college-days
// @Produce json
// @Security BearerAuth
// @Param id path int true "College day ID"
// @Success 200 {object} dto.APIResponse{data=dto.CollegeDayResponse} "College day details"
// @Failure 404 {object} dto.ErrorResponse "College day not found"
// @Router /college-days/{id} [get]
func (c *CollegeDayController) GetCollegeDay(ctx *gin.Context) {
	caller, ok := middleware.GetCaller(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errUnauthenticated())
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	day, err := c.collegeDayService.Get(ctx.Request.Context(), caller, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(day))
}

// CreateCollegeDay creates an attendance record
// @Summary Create a college day
// @Description Admin only; the present set must be a subset of the section's enrollment
// @Tags college-days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollegeDayRequest true "College day information"
// @Success 201 {object} dto.APIResponse{data=dto.CollegeDayResponse} "College day created"
// @Failure 400 {object} dto.ErrorResponse "Present student not enrolled"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Router /college-days [post]
func (c *CollegeDayController) CreateCollegeDay(ctx *gin.Context) {
	caller, ok := middleware.GetCaller(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errUnauthenticated())
		return
	}

	var req dto.CreateCollegeDayRequest
	if !bindJSON(ctx, &req) {
		return
	}

	day, err := c.collegeDayService.Create(ctx.Request.Context(), caller, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(day))
}

// UpdateCollegeDay rewrites an attendance record
// @Summary Update a college day
// @Description Admins and the section's lecturer may update; students get an explicit denial
// @Tags college-days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "College day ID"
// @Param request body dto.UpdateCollegeDayRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CollegeDayResponse} "College day updated"
// @Failure 403 {object} dto.ErrorResponse "Caller may read but not modify the record"
// @Failure 404 {object} dto.ErrorResponse "College day not found"
// @Router /college-days/{id} [put]
func (c *CollegeDayController) UpdateCollegeDay(ctx *gin.Context) {
	caller, ok := middleware.GetCaller(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errUnauthenticated())
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCollegeDayRequest
	if !bindJSON(ctx, &req) {
		return
	}

	day, err := c.collegeDayService.Update(ctx.Request.Context(), caller, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(day))
}

// DeleteCollegeDay removes an attendance record
// @Summary Delete a college day
// @Description Admin only; other roles get an explicit denial
// @Tags college-days
// @Produce json
// @Security BearerAuth
// @Param id path int true "College day ID"
// @Success 200 {object} dto.APIResponse "College day deleted"
// @Failure 403 {object} dto.ErrorResponse "Caller is not an admin"
// @Failure 404 {object} dto.ErrorResponse "College day not found"
// @Router /college-days/{id} [delete]
func (c *CollegeDayController) DeleteCollegeDay(ctx *gin.Context) {
	caller, ok := middleware.GetCaller(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, errUnauthenticated())
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.collegeDayService.Delete(ctx.Request.Context(), caller, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("College day deleted"))
}
