// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	expenseController      *controller.ExpenseController
	fixedExpenseController *controller.FixedExpenseController
	categoryController     *controller.CategoryController
	transactionController  *controller.TransactionController
	dashboardController    *controller.DashboardController
	reportController       *controller.ReportController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	fixedExpenseController *controller.FixedExpenseController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		expenseController:      expenseController,
		fixedExpenseController: fixedExpenseController,
		categoryController:     categoryController,
		transactionController:  transactionController,
		dashboardController:    dashboardController,
		reportController:       reportController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Fixed expense routes (require authentication)
		if r.fixedExpenseController != nil && r.authMiddleware != nil {
			fixedExpenses := v1.Group("/fixed-expenses")
			fixedExpenses.Use(r.authMiddleware.Authenticate())
			{
				fixedExpenses.GET("", r.fixedExpenseController.List)
				fixedExpenses.POST("", r.fixedExpenseController.Create)
				fixedExpenses.GET("/:id", r.fixedExpenseController.Get)
				fixedExpenses.PUT("/:id", r.fixedExpenseController.Update)
				fixedExpenses.DELETE("/:id", r.fixedExpenseController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.POST("/suggest", r.categoryController.Suggest)
				categories.PUT("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/totals-per-month", r.dashboardController.TotalsPerMonth)
				dashboard.GET("/totals-per-category", r.dashboardController.TotalsPerCategory)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.POST("", r.reportController.Enqueue)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
