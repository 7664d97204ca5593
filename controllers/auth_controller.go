// controllers/auth_controller.go
package controllers

import (
	"github.com/nanho-work/theUBoo/pkg/resp"
	"github.com/nanho-work/theUBoo/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{authService: service}
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		resp.BadRequest(c, "email and password are required")
		return
	}

	token, admin, err := ctl.authService.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "admin": admin})
}

// GET /auth/me
// The admin SPA polls this while its guard is in the checking state; 401
// resolves the guard to unauthenticated and redirects to login.
func (ctl *AuthController) Me(c *gin.Context) {
	adminIDAny, exists := c.Get("adminId")
	if !exists {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	adminID := adminIDAny.(uint)

	admin, err := ctl.authService.GetProfile(adminID)
	if err != nil {
		resp.NotFound(c, "admin not found")
		return
	}
	resp.OK(c, admin)
}
