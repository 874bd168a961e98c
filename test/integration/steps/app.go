// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"time"

	"github.com/gin-gonic/gin"

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
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
	"github.com/expense-tracker/backend/test/integration/mock"
)

// newEngine wires the full API against the test database and cache. External
// services stay out of the loop: category suggestions report as unavailable
// and report jobs are queued without a delivery worker.
func newEngine(db *mock.Db) *gin.Engine {
	userRepo := persistence.NewUserRepository(db.Conn)
	expenseRepo := persistence.NewExpenseRepository(db.Conn)
	linkRepo := persistence.NewExpenseCategoryRepository(db.Conn)
	categoryRepo := persistence.NewCategoryRepository(db.Conn)
	fixedExpenseRepo := persistence.NewFixedExpenseRepository(db.Conn)
	transactionRepo := persistence.NewTransactionRepository(db.Conn)
	dashboardRepo := persistence.NewDashboardRepository(db.Conn)
	reportQueueRepo := persistence.NewReportQueueRepository(db.Conn)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("integration-test-secret")
	totalsCache := cache.NewTotalsCache(mock.NewRedis(), time.Minute)

	reconciler := categorylink.NewReconcileCategoriesUseCase(linkRepo)

	healthController := controller.NewHealthController(func() bool {
		return true
	})
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
	)
	expenseController := controller.NewExpenseController(
		expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo),
		expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, reconciler),
		expense.NewDeleteExpenseUseCase(expenseRepo),
		expense.NewListExpensesUseCase(expenseRepo),
	)
	fixedExpenseController := controller.NewFixedExpenseController(
		fixedexpense.NewCreateFixedExpenseUseCase(fixedExpenseRepo),
		fixedexpense.NewUpdateFixedExpenseUseCase(fixedExpenseRepo),
		fixedexpense.NewDeleteFixedExpenseUseCase(fixedExpenseRepo),
		fixedexpense.NewGetFixedExpenseUseCase(fixedExpenseRepo),
		fixedexpense.NewListFixedExpensesUseCase(fixedExpenseRepo),
	)
	categoryController := controller.NewCategoryController(
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewUpdateCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewSuggestCategoryUseCase(categoryRepo, nil),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewCreateTransactionUseCase(transactionRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewTotalsPerMonthUseCase(dashboardRepo, totalsCache),
		dashboard.NewTotalsPerCategoryUseCase(dashboardRepo),
	)
	reportController := controller.NewReportController(
		report.NewEnqueueReportUseCase(userRepo, reportQueueRepo),
	)

	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		fixedExpenseController,
		categoryController,
		transactionController,
		dashboardController,
		reportController,
		middleware.NewRateLimiterWithConfig(10000, time.Minute),
		middleware.NewAuthMiddleware(tokenService),
	)

	return r.Setup("test")
}
