package handlers

import (
	"net/http"

	"crewboard_backend/internal/middleware"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/services"
	"crewboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	appService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apply := rg.Group("/jobs/:id/applications")
	apply.Use(middleware.AuthMiddleware())
	apply.Use(middleware.RequireKind(models.ProfileKindPerson))
	{
		apply.POST("", h.Submit)
	}

	mine := rg.Group("/me/applications")
	mine.Use(middleware.AuthMiddleware())
	{
		mine.GET("", h.ListOwn)
	}

	org := rg.Group("/me/organization/applications")
	org.Use(middleware.AuthMiddleware())
	org.Use(middleware.RequireKind(models.ProfileKindOrg))
	{
		org.GET("", h.ListForOrganization)
	}

	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	apps.Use(middleware.RequireKind(models.ProfileKindOrg))
	{
		apps.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.appService.Submit(db, c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.appService.ListByCrew(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) ListForOrganization(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	apps, err := h.appService.ListByOrganization(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	app, err := h.appService.UpdateStatus(db, c.Param("id"), userID, req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}
