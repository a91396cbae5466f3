package handlers

import (
	"net/http"

	"talentcast_backend/internal/middleware"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/services"
	"talentcast_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewArtistHandler(base *BaseHandler, userService services.UserService) *ArtistHandler {
	return &ArtistHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *ArtistHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.GET("/artists", h.ListArtists)
		public.GET("/artists/:id/gallery", h.GetGallery)
		public.GET("/recruiters", h.ListRecruiters)
	}

	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.PUT("", h.UpdateProfile)
	}

	admin := rg.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PATCH("/:id/status", h.SetModerationStatus)
		admin.PATCH("/:id/premium", h.SetPremiumStatus)
	}

	adminMedia := rg.Group("/artists")
	adminMedia.Use(middleware.AuthMiddleware())
	adminMedia.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		adminMedia.DELETE("/:id/media", h.RemoveArtistMedia)
	}
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	db := h.GetDB(c)

	artists, err := h.userService.ListArtists(db, h.CurrentUser(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

func (h *ArtistHandler) ListRecruiters(c *gin.Context) {
	db := h.GetDB(c)

	recruiters, err := h.userService.ListRecruiters(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recruiters": recruiters})
}

func (h *ArtistHandler) GetGallery(c *gin.Context) {
	artistID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	gallery, err := h.userService.GetGallery(db, h.CurrentUser(c), artistID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gallery)
}

// UpdateProfile accepts a multipart form: partial profile fields plus an
// optional replacement profilePic and additional portfolio files.
func (h *ArtistHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	profilePic, _ := c.FormFile("profilePic")
	files := formFiles(c, "files")

	db := h.GetDB(c)

	updated, err := h.userService.UpdateProfile(c.Request.Context(), db, user, &req, profilePic, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ArtistHandler) SetModerationStatus(c *gin.Context) {
	userID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.ModerationStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.SetModerationStatus(db, userID, models.ModerationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated", "user": user})
}

// RemoveArtistMedia lets an admin strip a URL from any artist's collection.
func (h *ArtistHandler) RemoveArtistMedia(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	artistID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.RemoveMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	updated, err := h.userService.RemoveMedia(c.Request.Context(), db, user, artistID, &req)
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

func (h *ArtistHandler) SetPremiumStatus(c *gin.Context) {
	userID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.PremiumStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.SetPremiumStatus(db, userID, models.PremiumStatus(req.PremiumStatus))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Premium status updated", "user": user})
}
