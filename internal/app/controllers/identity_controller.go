package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/attendance-backend/internal/app/models/dto"
	"github.com/campushq/attendance-backend/internal/app/services"
	"github.com/campushq/attendance-backend/internal/middleware"
)

// IdentityController handles identity endpoints. Identities are only created
// through profile provisioning; this controller covers listing, contact
// updates and identity-side deletion.
type IdentityController struct {
	identityService *services.IdentityService
}

// NewIdentityController creates a new IdentityController
func NewIdentityController(identityService *services.IdentityService) *IdentityController {
	return &IdentityController{
		identityService: identityService,
	}
}

// GetIdentity retrieves an identity
// @Summary Get identity details
// @Tags identities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Identity ID"
// @Success 200 {object} dto.APIResponse{data=models.Identity} "Identity details"
// @Failure 404 {object} dto.ErrorResponse "Identity not found"
// @Router /identities/{id} [get]
func (c *IdentityController) GetIdentity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	identity, err := c.identityService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(identity))
}

// GetAllIdentities lists identities
// @Summary List identities
// @Tags identities
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Identity} "Identities"
// @Router /identities [get]
func (c *IdentityController) GetAllIdentities(ctx *gin.Context) {
	identities, err := c.identityService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(identities))
}

// UpdateIdentity updates an identity's contact fields
// @Summary Update an identity
// @Tags identities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Identity ID"
// @Param request body dto.UpdateIdentityRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Identity} "Identity updated"
// @Failure 404 {object} dto.ErrorResponse "Identity not found"
// @Router /identities/{id} [put]
func (c *IdentityController) UpdateIdentity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateIdentityRequest
	if !bindJSON(ctx, &req) {
		return
	}

	identity, err := c.identityService.UpdateContact(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(identity))
}

// DeleteIdentity removes an identity together with its linked profile
// @Summary Delete an identity
// @Tags identities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Identity ID"
// @Success 200 {object} dto.APIResponse "Identity deleted"
// @Failure 404 {object} dto.ErrorResponse "Identity not found"
// @Router /identities/{id} [delete]
func (c *IdentityController) DeleteIdentity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.identityService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Identity deleted"))
}
