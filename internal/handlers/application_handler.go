package handlers

import (
	"net/http"

	"talentcast_backend/internal/middleware"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/services"
	"talentcast_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	applications.Use(middleware.AuthMiddleware())
	{
		applications.POST("", middleware.RequireRoles(models.UserRoleArtist), h.Apply)
		applications.GET("/me", h.ListMine)
		applications.GET("/user/:userId", h.ListByUser)
	}
}

// Apply accepts a multipart form: the application fields plus an optional CV
// under "cv".
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	cv, _ := c.FormFile("cv")

	db := h.GetDB(c)

	application, err := h.applicationService.Apply(c.Request.Context(), db, user, &req, cv)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted", "application": application})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListApplicationsByUser(db, user, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// ListByUser serves the by-user-id view: self, or any user for admins.
func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	userID, ok := h.RequireParam(c, "userId")
	if !ok {
		return
	}

	db := h.GetDB(c)

	applications, err := h.applicationService.ListApplicationsByUser(db, user, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}
