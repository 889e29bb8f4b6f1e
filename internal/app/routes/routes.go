package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jkta/athletereg/internal/app/controllers"
	"github.com/jkta/athletereg/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	registrationController *controllers.RegistrationController,
	paymentController *controllers.PaymentController,
	authController *controllers.AuthController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/registrations", registrationController.Register)

	payments := v1.Group("/payments")
	{
		payments.POST("/verify", paymentController.Verify)
	}

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Staff routes ---
	staff := v1.Group("")
	staff.Use(authMiddleware.JWTAuth())
	{
		staff.GET("/registrations", registrationController.ListRegistrations)
		staff.GET("/registrations/:id", registrationController.GetRegistration)
		staff.GET("/enrollments", paymentController.ListEnrollments)
	}
}
