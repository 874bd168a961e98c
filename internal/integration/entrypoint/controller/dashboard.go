// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// defaultMonthCount is the series length used when the query omits months.
const defaultMonthCount = 6

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	totalsPerMonthUseCase    *dashboard.TotalsPerMonthUseCase
	totalsPerCategoryUseCase *dashboard.TotalsPerCategoryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	totalsPerMonthUseCase *dashboard.TotalsPerMonthUseCase,
	totalsPerCategoryUseCase *dashboard.TotalsPerCategoryUseCase,
) *DashboardController {
	return &DashboardController{
		totalsPerMonthUseCase:    totalsPerMonthUseCase,
		totalsPerCategoryUseCase: totalsPerCategoryUseCase,
	}
}

// TotalsPerMonth handles GET /dashboard/totals-per-month requests.
// The series covers the months following start_date, one point per month.
func (c *DashboardController) TotalsPerMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate := time.Now()
	if raw := ctx.Query("start_date"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeMissingStartDate),
			})
			return
		}
		startDate = parsed
	}

	monthCount := defaultMonthCount
	if raw := ctx.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months must be an integer",
				Code:  string(domainerror.ErrCodeInvalidMonthCount),
			})
			return
		}
		monthCount = parsed
	}

	output, err := c.totalsPerMonthUseCase.Execute(ctx.Request.Context(), dashboard.TotalsPerMonthInput{
		UserID:     userID,
		StartDate:  startDate,
		MonthCount: monthCount,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalsPerMonthResponse(output))
}

// TotalsPerCategory handles GET /dashboard/totals-per-category requests.
func (c *DashboardController) TotalsPerCategory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "month must be an integer",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		month = parsed
	}
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "year must be an integer",
				Code:  string(domainerror.ErrCodeInvalidMonth),
			})
			return
		}
		year = parsed
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "limit must be an integer",
			})
			return
		}
		limit = parsed
	}

	// Links whose category was deleted carry no title and are dropped from
	// the chart.
	output, err := c.totalsPerCategoryUseCase.Execute(ctx.Request.Context(), dashboard.TotalsPerCategoryInput{
		UserID:       userID,
		Month:        time.Month(month),
		Year:         year,
		Limit:        limit,
		SkipOrphaned: true,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTotalsPerCategoryResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(dashErr.Code), dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidMonthCount,
		domainerror.ErrCodeMissingStartDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
