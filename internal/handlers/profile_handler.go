package handlers

import (
	"net/http"

	"crewboard_backend/internal/middleware"
	"crewboard_backend/internal/services"
	"crewboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService *services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	profiles.Use(middleware.OptionalAuthMiddleware())
	{
		profiles.GET("/:id", h.GetProfile)
		profiles.GET("/:id/pitch", h.GetPitch)
	}

	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", h.GetOwnProfile)
		me.PATCH("", h.UpdateProfile)
		me.GET("/pitch", h.GetOwnPitch)
		me.PUT("/pitch", h.UpsertPitch)
		me.DELETE("/pitch", h.DeletePitch)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	requesterID, _ := c.Get("userID")
	requester, _ := requesterID.(string)

	db := h.GetDB(c)

	profile, err := h.profileService.GetProfile(db, c.Param("id"), requester)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.GetOwnProfile(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	profile, err := h.profileService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpsertPitch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertPitchRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	pitch, err := h.profileService.UpsertPitch(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pitch)
}

func (h *ProfileHandler) DeletePitch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.profileService.DeletePitch(db, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pitch removed"})
}

func (h *ProfileHandler) GetOwnPitch(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	pitch, err := h.profileService.GetPitch(db, userID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pitch)
}

func (h *ProfileHandler) GetPitch(c *gin.Context) {
	requesterID, _ := c.Get("userID")
	requester, _ := requesterID.(string)

	db := h.GetDB(c)

	pitch, err := h.profileService.GetPitch(db, c.Param("id"), requester)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pitch)
}
