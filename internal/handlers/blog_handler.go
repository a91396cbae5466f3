package handlers

import (
	"net/http"

	"talentcast_backend/internal/middleware"
	"talentcast_backend/internal/models"
	"talentcast_backend/internal/services"
	"talentcast_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		BaseHandler: base,
		blogService: blogService,
	}
}

func (h *BlogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/blogs")
	{
		public.GET("", h.ListBlogs)
		public.GET("/:id", h.GetBlog)
	}

	admin := rg.Group("/blogs")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.CreateBlog)
		admin.PUT("/:id", h.UpdateBlog)
		admin.DELETE("/:id", h.DeleteBlog)
	}
}

// CreateBlog accepts a multipart form: title, content, an optional media file
// under "media" and its type (photo or video).
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateBlogRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	media, _ := c.FormFile("media")
	mediaKind := models.MediaKind(c.PostForm("type"))

	db := h.GetDB(c)

	blog, err := h.blogService.CreateBlog(c.Request.Context(), db, user, &req, mediaKind, media)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Blog created", "blog": blog})
}

func (h *BlogHandler) ListBlogs(c *gin.Context) {
	db := h.GetDB(c)

	blogs, err := h.blogService.ListBlogs(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs})
}

func (h *BlogHandler) GetBlog(c *gin.Context) {
	blogID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	blog, err := h.blogService.GetBlog(db, blogID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, blog)
}

func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	blogID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBlogRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	media, _ := c.FormFile("media")
	mediaKind := models.MediaKind(c.PostForm("type"))

	db := h.GetDB(c)

	blog, err := h.blogService.UpdateBlog(c.Request.Context(), db, blogID, &req, mediaKind, media)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog updated", "blog": blog})
}

func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	blogID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.blogService.DeleteBlog(c.Request.Context(), db, blogID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
}
