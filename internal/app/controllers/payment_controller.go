package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jkta/athletereg/internal/app/models/dto"
	"github.com/jkta/athletereg/internal/app/services"
	"github.com/jkta/athletereg/internal/middleware"
	"github.com/jkta/athletereg/internal/pkg/apperrors"
	"github.com/jkta/athletereg/internal/pkg/logger"
)

// PaymentController handles payment gateway callbacks
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController instance
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Verify godoc
// @Summary Verify a payment
// @Description Verifies the gateway signature, marks the registration paid, enrolls the athlete and emails the ID card
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.PaymentVerificationRequest true "Payment callback"
// @Success 201 {object} dto.FulfillmentResponse
// @Failure 400 {object} dto.FulfillmentErrorResponse
// @Failure 500 {object} dto.FulfillmentErrorResponse
// @Router /payments/verify [post]
func (c *PaymentController) Verify(ctx *gin.Context) {
	var req dto.PaymentVerificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warn().Err(err).Msg("Invalid payment verification payload")
		ctx.JSON(http.StatusBadRequest, dto.FulfillmentErrorResponse{
			Success: false,
			Message: "Payment verification failed",
		})
		return
	}

	resp, err := c.paymentService.VerifyAndFulfill(ctx, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrSignatureMismatch) {
			ctx.JSON(http.StatusBadRequest, dto.FulfillmentErrorResponse{
				Success: false,
				Message: "Payment verification failed",
			})
			return
		}
		logger.Error().
			Err(err).
			Int64("registrationId", req.UserID).
			Str("paymentId", req.RazorpayPaymentID).
			Msg("Payment fulfillment failed")
		ctx.JSON(http.StatusInternalServerError, dto.FulfillmentErrorResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListEnrollments godoc
// @Summary List enrollments
// @Description Retrieves enrollments with pagination, newest first
// @Tags enrollments
// @Produce json
// @Param page query int false "Page number (0-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.APIResponse
// @Security Bearer
// @Router /enrollments [get]
func (c *PaymentController) ListEnrollments(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))
	if page < 0 {
		page = 0
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	enrollments, total, err := c.paymentService.ListEnrollments(ctx, page, pageSize)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"items": enrollments,
		"pagination": dto.PaginationInfo{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}))
}
