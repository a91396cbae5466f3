package handlers

import (
	"net/http"

	"talentcast_backend/internal/middleware"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/services"
	"talentcast_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/jobs")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/approved", h.ListApprovedJobs)
		public.GET("/:id", h.GetJob)
	}

	authed := rg.Group("/jobs")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.GET("", h.ListJobs)
		authed.POST("", middleware.RequireRoles(models.UserRoleRecruiter), h.CreateJob)
		authed.DELETE("/:id", middleware.RequireRoles(models.UserRoleRecruiter), h.DeleteJob)
		authed.GET("/:id/applicants", middleware.RequireRoles(models.UserRoleRecruiter, models.UserRoleAdmin), h.ListApplicants)
	}

	admin := rg.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PATCH("/:id/status", h.SetJobStatus)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.CreateJob(db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Job posted", "job": job})
}

// ListJobs is the authenticated listing: every posting in every moderation
// state.
func (h *JobHandler) ListJobs(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.ListJobs(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) ListApprovedJobs(c *gin.Context) {
	db := h.GetDB(c)

	jobs, err := h.jobService.ListApprovedJobs(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.GetJob(db, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) SetJobStatus(c *gin.Context) {
	jobID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.JobStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	job, err := h.jobService.SetJobStatus(db, jobID, models.ModerationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job status updated", "job": job})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.jobService.DeleteJob(db, user, jobID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) ListApplicants(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	jobID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	applicants, err := h.applicationService.ListJobApplicants(db, user, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applicants": applicants})
}
