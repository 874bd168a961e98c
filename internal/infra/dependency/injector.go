// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/categorylink"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/fixedexpense"
	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/cache"
	"github.com/expense-tracker/backend/internal/integration/email"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router

	// ReportWorker drains the report email queue. Nil when the worker is
	// disabled by configuration.
	ReportWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, dbHealthChecker func() bool) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	expenseCategoryRepo := persistence.NewExpenseCategoryRepository(db)
	fixedExpenseRepo := persistence.NewFixedExpenseRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	reportQueueRepo := persistence.NewReportQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	geminiService := adapters.NewGeminiService(cfg.Gemini.APIKey)

	// Create the dashboard totals cache. A missing Redis connection degrades
	// to cache misses, it never blocks startup.
	totalsCache := cache.NewTotalsCache(newRedisClient(cfg.Redis.URL), cfg.Redis.TotalsTTL)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create expense use cases
	reconcileUseCase := categorylink.NewReconcileCategoriesUseCase(expenseCategoryRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, reconcileUseCase)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)

	// Create fixed expense use cases
	createFixedExpenseUseCase := fixedexpense.NewCreateFixedExpenseUseCase(fixedExpenseRepo)
	updateFixedExpenseUseCase := fixedexpense.NewUpdateFixedExpenseUseCase(fixedExpenseRepo)
	deleteFixedExpenseUseCase := fixedexpense.NewDeleteFixedExpenseUseCase(fixedExpenseRepo)
	getFixedExpenseUseCase := fixedexpense.NewGetFixedExpenseUseCase(fixedExpenseRepo)
	listFixedExpensesUseCase := fixedexpense.NewListFixedExpensesUseCase(fixedExpenseRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	suggestCategoryUseCase := category.NewSuggestCategoryUseCase(categoryRepo, geminiService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create dashboard use cases
	totalsPerMonthUseCase := dashboard.NewTotalsPerMonthUseCase(dashboardRepo, totalsCache)
	totalsPerCategoryUseCase := dashboard.NewTotalsPerCategoryUseCase(dashboardRepo)

	// Create report use cases
	enqueueReportUseCase := report.NewEnqueueReportUseCase(userRepo, reportQueueRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		listExpensesUseCase,
	)
	fixedExpenseController := controller.NewFixedExpenseController(
		createFixedExpenseUseCase,
		updateFixedExpenseUseCase,
		deleteFixedExpenseUseCase,
		getFixedExpenseUseCase,
		listFixedExpensesUseCase,
	)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		listCategoriesUseCase,
		suggestCategoryUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		listTransactionsUseCase,
	)
	dashboardController := controller.NewDashboardController(
		totalsPerMonthUseCase,
		totalsPerCategoryUseCase,
	)
	reportController := controller.NewReportController(enqueueReportUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create report email worker
	var reportWorker *email.Worker
	if cfg.Email.WorkerEnabled {
		renderer, err := templates.NewRenderer()
		if err != nil {
			return nil, err
		}
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		reportWorker = email.NewWorker(reportQueueRepo, sender, renderer, dashboardRepo, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
	} else {
		slog.Info("Report worker disabled by configuration")
	}

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		fixedExpenseController,
		categoryController,
		transactionController,
		dashboardController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:       cfg,
		DB:           db,
		Router:       r,
		ReportWorker: reportWorker,
	}, nil
}

// newRedisClient builds a Redis client from a connection URL. A malformed URL
// falls back to the default local address so the cache degrades instead of
// failing startup.
func newRedisClient(url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		slog.Warn("Invalid Redis URL, using default address", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	return redis.NewClient(opts)
}
