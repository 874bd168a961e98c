// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report queueing endpoints.
type ReportController struct {
	enqueueUseCase *report.EnqueueReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(enqueueUseCase *report.EnqueueReportUseCase) *ReportController {
	return &ReportController{enqueueUseCase: enqueueUseCase}
}

// Enqueue handles POST /reports requests. The report is generated and
// emailed asynchronously, so the endpoint answers with 202 Accepted.
func (c *ReportController) Enqueue(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.EnqueueReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return
	}

	output, err := c.enqueueUseCase.Execute(ctx.Request.Context(), report.EnqueueReportInput{
		UserID: userID,
		Month:  time.Month(req.Month),
		Year:   req.Year,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.ToReportJobResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
