package v1

import (
	"net/http"

	"go-recruitment-tracker/internal/delivery/http/middleware"
	"go-recruitment-tracker/internal/delivery/http/response"
	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC       domain.AuthUsecase
	cookieSecure bool
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, loginLimiter gin.HandlerFunc, cookieSecure bool) {
	handler := &AuthHandler{
		authUC:       authUC,
		cookieSecure: cookieSecure,
	}

	publicAuth := public.Group("/auth")
	publicAuth.Use(loginLimiter)
	{
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/register", handler.Register)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.PUT("/profile", handler.UpdateProfile)
		protectedAuth.PUT("/password", handler.ChangePassword)
	}
}

type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"secreto123"`
}

type RegisterRequest struct {
	Nombre               string `json:"nombre" example:"Ana Lopez"`
	Email                string `json:"email" example:"ana@example.com"`
	Password             string `json:"password" example:"secreto123"`
	PasswordConfirmation string `json:"password_confirmation" example:"secreto123"`
}

type UpdateProfileRequest struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func clientInfo(c *gin.Context) domain.ClientInfo {
	return domain.ClientInfo{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: middleware.GetRequestID(c),
	}
}

// Register godoc
// @Summary      User registration
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration details"
// @Success      201       {object}  response.Response{data=domain.AuthResult}
// @Failure      422       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	result, err := h.authUC.Register(c.Request.Context(), input, clientInfo(c))
	if err != nil {
		c.Error(err)
		return
	}
	middleware.SetAuthCookie(c, result.Token, result.ExpiresAt, h.cookieSecure)
	response.Success(c, http.StatusCreated, "Registration successful", result)
}

// Login godoc
// @Summary      User login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=domain.AuthResult}
// @Failure      401    {object}  response.Response
// @Failure      422    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	result, err := h.authUC.Login(c.Request.Context(), input, clientInfo(c))
	if err != nil {
		c.Error(err)
		return
	}
	middleware.SetAuthCookie(c, result.Token, result.ExpiresAt, h.cookieSecure)
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Logout godoc
// @Summary      Revoke the current token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUC.Logout(c.Request.Context(), middleware.ExtractToken(c), clientInfo(c)); err != nil {
		c.Error(err)
		return
	}
	middleware.ClearAuthCookie(c, h.cookieSecure)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), c.GetString(string(domain.KeyUserID)))
	if err != nil {
		if apperror.IsNotFound(err) {
			c.Error(apperror.Unauthorized("User not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateProfile godoc
// @Summary      Update the current user's profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      422      {object}  response.Response
// @Router       /auth/profile [put]
// @Security     BearerAuth
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	user, err := h.authUC.UpdateProfile(c.Request.Context(), c.GetString(string(domain.KeyUserID)), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", user)
}

// ChangePassword godoc
// @Summary      Change the current user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        password  body      ChangePasswordRequest  true  "Passwords"
// @Success      200       {object}  response.Response
// @Failure      422       {object}  response.Response
// @Router       /auth/password [put]
// @Security     BearerAuth
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	input, err := readInput(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.authUC.ChangePassword(c.Request.Context(), c.GetString(string(domain.KeyUserID)), input); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}
