package handlers

import (
	"net/http"

	"talentcast_backend/internal/middleware"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/services"
	"talentcast_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewMediaHandler(base *BaseHandler, userService services.UserService) *MediaHandler {
	return &MediaHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	media := rg.Group("/media")
	media.Use(middleware.AuthMiddleware())
	media.Use(middleware.RequireRoles(models.UserRoleArtist))
	{
		media.POST("", h.UploadMedia)
		media.DELETE("", h.RemoveMedia)
	}
}

// UploadMedia accepts a multipart form with a type field (photo or video) and
// files under "files".
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UploadMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}
	if req.Type == "" {
		req.Type = string(models.MediaKindPhoto)
	}

	files := formFiles(c, "files")

	db := h.GetDB(c)

	updated, err := h.userService.UploadMedia(c.Request.Context(), db, user, models.MediaKind(req.Type), files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media uploaded",
		"photos":  updated.Photos,
		"videos":  updated.Videos,
	})
}

func (h *MediaHandler) RemoveMedia(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.RemoveMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	updated, err := h.userService.RemoveMedia(c.Request.Context(), db, user, user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media removed",
		"photos":  updated.Photos,
		"videos":  updated.Videos,
	})
}
