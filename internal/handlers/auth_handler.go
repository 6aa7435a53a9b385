package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "butce/internal/errors"
	"butce/internal/flash"
	"butce/internal/middleware"
	"butce/internal/services"
)

// AuthHandler handles login, registration and logout.
type AuthHandler struct {
	userService services.UserServicer
	sessions    *middleware.SessionManager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, sessions *middleware.SessionManager) *AuthHandler {
	return &AuthHandler{userService: userService, sessions: sessions}
}

// RegisterRequest represents the registration form
type RegisterRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email,max=255"`
	Password string `form:"password" json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest represents the login form
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// LoginPage renders the login page. Logged in users go straight to the dashboard.
// @Summary     Login page
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]interface{} "Pending flash messages"
// @Success     303 "Already logged in"
// @Router      /login [get]
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, ok := h.sessions.Current(c); ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	page(c, nil, nil)
}

// Login checks the credentials and starts a session.
// @Summary     Log in
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Param       email    formData string true "Email"
// @Param       password formData string true "Password"
// @Success     303 "Redirect to the dashboard, or back to /login with a warning"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, "/login", err)
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		redirectWithError(c, "/login", err)
		return
	}

	if _, err := h.sessions.Issue(c, user.ID); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	flash.Write(c, flash.To("/", flash.Success("Welcome back.")))
}

// RegisterPage renders the registration page.
// @Summary     Registration page
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]interface{} "Pending flash messages"
// @Router      /register [get]
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if _, ok := h.sessions.Current(c); ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	page(c, nil, nil)
}

// Register creates a user and logs them in.
// @Summary     Register
// @Tags        auth
// @Accept      x-www-form-urlencoded
// @Param       email    formData string true "Email"
// @Param       password formData string true "Password (at least 8 characters)"
// @Success     303 "Redirect to the dashboard, or back to /register with a warning"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		redirectWithError(c, "/register", err)
		return
	}

	user, err := h.userService.Register(req.Email, req.Password)
	if err != nil {
		redirectWithError(c, "/register", err)
		return
	}

	if _, err := h.sessions.Issue(c, user.ID); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}
	flash.Write(c, flash.To("/", flash.Success("Your account has been created.")))
}

// Logout ends the session.
// @Summary     Log out
// @Tags        auth
// @Success     303 "Redirect to /login"
// @Router      /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	flash.Write(c, flash.To("/login", flash.Info("You have been logged out.")))
}
