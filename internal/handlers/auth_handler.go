package handlers

import (
	"net/http"

	"talentcast_backend/internal/middleware"
	"talentcast_backend/internal/services"
	"talentcast_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewAuthHandler(base *BaseHandler, userService services.UserService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}

	me := rg.Group("/auth")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/me", h.Me)
		me.PUT("/change-password", h.ChangePassword)
	}
}

// Signup accepts a multipart form: the account fields plus an optional
// profilePic and portfolio files.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	profilePic, _ := c.FormFile("profilePic")
	portfolio := formFiles(c, "files")

	db := h.GetDB(c)

	response, err := h.userService.Register(c.Request.Context(), db, &req, profilePic, portfolio)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.userService.Login(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	profile, err := h.userService.GetMyProfile(db, user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db := h.GetDB(c)

	if err := h.userService.ChangePassword(db, user, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
