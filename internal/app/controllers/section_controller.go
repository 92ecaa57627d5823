package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/services"
	"github.com/campushq/attendance-backend/internal/middleware"
)

// SectionController handles class section endpoints
type SectionController struct {
	sectionService *services.SectionService
}

// NewSectionController creates a new SectionController
func NewSectionController(sectionService *services.SectionService) *SectionController {
	return &SectionController{sectionService: sectionService}
}

// CreateSection creates a class section
// @Summary Create a class section
// @Description Creates a class section binding a course, semester and lecturer, with optional enrollment
// @Tags class-sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSectionRequest true "Section information"
// @Success 201 {object} dto.APIResponse{data=dto.SectionResponse} "Section created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Referenced course, semester or lecturer not found"
// @Router /class-sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	section, err := c.sectionService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(section))
}

// GetSection retrieves a class section
// @Summary Get class section details
// @Tags class-sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=dto.SectionResponse} "Section details"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /class-sections/{id} [get]
func (c *SectionController) GetSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	section, err := c.sectionService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(section))
}

// GetAllSections lists class sections
// @Summary List class sections
// @Tags class-sections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SectionResponse} "Sections"
// @Router /class-sections [get]
func (c *SectionController) GetAllSections(ctx *gin.Context) {
	sections, err := c.sectionService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(sections))
}

// UpdateSection updates a class section and its enrollment
// @Summary Update a class section
// @Tags class-sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Param request body dto.UpdateSectionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.SectionResponse} "Section updated"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /class-sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSectionRequest
	if !bindJSON(ctx, &req) {
		return
	}

	section, err := c.sectionService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(section))
}

// DeleteSection deletes a class section
// @Summary Delete a class section
// @Tags class-sections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse "Section deleted"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Router /class-sections/{id} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.sectionService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Section deleted"))
}
