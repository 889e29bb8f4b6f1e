package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/app/services"
	"github.com/jkta/athletereg/internal/middleware"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
	"github.com/jkta/athletereg/internal/pkg/logger"
)

// RegistrationController handles athlete registration requests
type RegistrationController struct {
	registrationService *services.RegistrationService
}

// NewRegistrationController creates a new RegistrationController instance
func NewRegistrationController(registrationService *services.RegistrationService) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
	}
}

// Register godoc
// @Summary Register an athlete
// @Description Accepts athlete details with document uploads, stores the registration and places a payment order
// @Tags registrations
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} dto.RegistrationOrderResponse
// @Failure 500 {object} dto.RegistrationErrorResponse
// @Router /registrations [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegistrationRequest
	if err := ctx.ShouldBind(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid registration form")
		ctx.JSON(http.StatusInternalServerError, dto.RegistrationErrorResponse{
			Error: "An error occurred while registering the user.",
		})
		return
	}

	files := make(map[string]*multipart.FileHeader, len(dto.DocumentFieldNames))
	for _, field := range dto.DocumentFieldNames {
		header, err := ctx.FormFile(field)
		if err != nil {
			continue
		}
		files[field] = header
	}

	resp, err := c.registrationService.Register(ctx, &req, files)
	if err != nil {
		logger.Error().Err(err).Str("email", req.Email).Msg("Registration failed")
		ctx.JSON(http.StatusInternalServerError, dto.RegistrationErrorResponse{
			Error: "An error occurred while registering the user.",
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListRegistrations godoc
// @Summary List registrations
// @Description Retrieves registrations with pagination, newest first
// @Tags registrations
// @Produce json
// @Param page query int false "Page number (0-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationListResponse}
// @Security Bearer
// @Router /registrations [get]
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))
	if page < 0 {
		page = 0
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	resp, err := c.registrationService.ListRegistrations(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetRegistration godoc
// @Summary Get a registration
// @Description Retrieves a single registration by ID
// @Tags registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} dto.APIResponse{data=models.Registration}
// @Failure 404 {object} dto.APIResponse
// @Security Bearer
// @Router /registrations/{id} [get]
func (c *RegistrationController) GetRegistration(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidFormat)
		return
	}

	registration, err := c.registrationService.GetRegistration(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(registration))
}
