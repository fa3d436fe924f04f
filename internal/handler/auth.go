package handler

import (
	"net/http"

	"github.com/dhruv0307t-del/ERP-Farm/internal/dto"
	"github.com/dhruv0307t-del/ERP-Farm/internal/middleware"
	"github.com/dhruv0307t-del/ERP-Farm/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc           service.AuthService
	cookieMaxAge  int
	secureCookies bool
}

func NewAuthHandler(svc service.AuthService, cookieMaxAge int, secureCookies bool) *AuthHandler {
	return &AuthHandler{svc: svc, cookieMaxAge: cookieMaxAge, secureCookies: secureCookies}
}

// LoginForm godoc
// @Summary Login form descriptor
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /login [get]
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/login",
		"method": "POST",
		"fields": []string{"username", "password"},
	})
}

// Login godoc
// @Summary Authenticate and start a session
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 303
// @Failure 400 {object} apierror.APIError
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindForm(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, resp.AccessToken)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// SignupForm godoc
// @Summary Signup form descriptor
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /signup [get]
func (h *AuthHandler) SignupForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/signup",
		"method": "POST",
		"fields": []string{"farm_name", "farm_location", "full_name", "username", "password"},
	})
}

// Signup godoc
// @Summary Register a farm and its admin user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 303
// @Failure 400 {object} apierror.APIError
// @Router /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindForm(c, &req) {
		return
	}

	resp, err := h.svc.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, resp.AccessToken)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session cookie and sends the browser home.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, "/home")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.TokenCookie, token, h.cookieMaxAge, "/", "", h.secureCookies, true)
}
