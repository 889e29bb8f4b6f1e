package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/app/services"
	"github.com/jkta/athletereg/internal/middleware"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
)

// AuthController handles staff authentication requests
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController instance
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login godoc
// @Summary Staff login
// @Description Authenticates an admin account and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 401 {object} dto.APIResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
