package handlers

import (
	"net/http"

	"crewboard_backend/internal/middleware"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/services"
	"crewboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	*BaseHandler
	orgService *services.OrganizationService
}

func NewOrganizationHandler(base *BaseHandler, orgService *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		BaseHandler: base,
		orgService:  orgService,
	}
}

func (h *OrganizationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orgs := rg.Group("/organizations")
	{
		orgs.GET("/:slug", h.GetBySlug)
	}

	me := rg.Group("/me/organization")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.RequireKind(models.ProfileKindOrg))
	{
		me.GET("", h.GetOwnOrganization)
		me.PATCH("", h.UpdateOrganization)
	}
}

func (h *OrganizationHandler) GetBySlug(c *gin.Context) {
	db := h.GetDB(c)

	org, err := h.orgService.GetBySlug(db, c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) GetOwnOrganization(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	org, err := h.orgService.GetOwnOrganization(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrganizationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	org, err := h.orgService.UpdateOrganization(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}
