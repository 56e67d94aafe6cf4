package handlers

import (
	"net/http"

	"crewboard_backend/internal/jobfilter"
	"crewboard_backend/internal/middleware"
	"crewboard_backend/internal/models"
	"crewboard_backend/internal/services"
	"crewboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.OptionalAuthMiddleware())
	{
		jobs.GET("", h.BrowseJobs)
		jobs.GET("/:id", h.GetJob)
	}

	me := rg.Group("/me/jobs")
	me.Use(middleware.AuthMiddleware())
	me.Use(middleware.RequireKind(models.ProfileKindOrg))
	{
		me.GET("", h.GetOwnJobs)
		me.POST("", h.CreateJob)
		me.PATCH("/:id", h.UpdateJob)
		me.POST("/:id/close", h.CloseJob)
	}

	admin := rg.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/pending", h.GetPendingJobs)
		admin.POST("/:id/approve", h.ApproveJob)
		admin.POST("/:id/reject", h.RejectJob)
	}
}

// BrowseJobs lists active jobs narrowed by the filter query string. The query
// parameters are the same ones the client keeps in its URL bar, so a shared
// link reproduces the exact listing.
func (h *JobHandler) BrowseJobs(c *gin.Context) {
	state := jobfilter.DecodeQuery(c.Request.URL.RawQuery)
	page, pageSize := ParsePagination(c)

	db := h.GetDB(c)

	jobs, total, err := h.jobService.BrowseJobs(db, state, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	requesterID, _ := c.Get("userID")
	requester, _ := requesterID.(string)

	db := h.GetDB(c)

	job, err := h.jobService.GetJob(db, c.Param("id"), requester, IsAdmin(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) GetOwnJobs(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	jobs, err := h.jobService.GetOwnJobs(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.CreateJob(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.UpdateJob(db, c.Param("id"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.CloseJob(db, c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job closed"})
}

// Moderation

func (h *JobHandler) GetPendingJobs(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.GetPendingJobs(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) ApproveJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.ApproveJob(db, c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job approved"})
}

func (h *JobHandler) RejectJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.RejectJob(db, c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job rejected"})
}
