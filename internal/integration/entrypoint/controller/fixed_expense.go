// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/fixedexpense"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// FixedExpenseController handles fixed expense endpoints.
type FixedExpenseController struct {
	createUseCase *fixedexpense.CreateFixedExpenseUseCase
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase
	getUseCase    *fixedexpense.GetFixedExpenseUseCase
	listUseCase   *fixedexpense.ListFixedExpensesUseCase
}

// NewFixedExpenseController creates a new fixed expense controller instance.
func NewFixedExpenseController(
	createUseCase *fixedexpense.CreateFixedExpenseUseCase,
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase,
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase,
	getUseCase *fixedexpense.GetFixedExpenseUseCase,
	listUseCase *fixedexpense.ListFixedExpensesUseCase,
) *FixedExpenseController {
	return &FixedExpenseController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /fixed-expenses requests.
func (c *FixedExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFixedExpenseFields),
		})
		return
	}

	input, err := c.buildInput(userID, req.Title, req.Date, req.Amount, req.VaryingCosts, req.AmountOfMonths, req.AmountPerMonth, req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeMissingFixedExpenseFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), *input)
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Update handles PUT /fixed-expenses/:id requests.
func (c *FixedExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fixedExpenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed expense ID format",
		})
		return
	}

	var req dto.UpdateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFixedExpenseFields),
		})
		return
	}

	input, err := c.buildInput(userID, req.Title, req.Date, req.Amount, req.VaryingCosts, req.AmountOfMonths, req.AmountPerMonth, req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
			Code:  string(domainerror.ErrCodeMissingFixedExpenseFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), fixedexpense.UpdateFixedExpenseInput{
		FixedExpenseID: fixedExpenseID,
		UserID:         input.UserID,
		Title:          input.Title,
		Date:           input.Date,
		AmountOfMonths: input.AmountOfMonths,
		VaryingCosts:   input.VaryingCosts,
		Amount:         input.Amount,
		AmountPerMonth: input.AmountPerMonth,
		CategoryID:     input.CategoryID,
	})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Delete handles DELETE /fixed-expenses/:id requests.
func (c *FixedExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fixedExpenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed expense ID format",
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedexpense.DeleteFixedExpenseInput{
		FixedExpenseID: fixedExpenseID,
		UserID:         userID,
	})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Get handles GET /fixed-expenses/:id requests.
func (c *FixedExpenseController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fixedExpenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed expense ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), fixedexpense.GetFixedExpenseInput{
		FixedExpenseID: fixedExpenseID,
		UserID:         userID,
	})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// List handles GET /fixed-expenses requests.
func (c *FixedExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), fixedexpense.ListFixedExpensesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve fixed expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseListResponse(output.FixedExpenses))
}

// buildInput converts validated request fields into a create input.
func (c *FixedExpenseController) buildInput(
	userID uuid.UUID,
	title, date string,
	amount *float64,
	varyingCosts bool,
	amountOfMonths int,
	amountPerMonth []float64,
	categoryID *string,
) (*fixedexpense.CreateFixedExpenseInput, error) {
	parsedDate, err := parseDate(date)
	if err != nil {
		return nil, errors.New("invalid date format, expected YYYY-MM-DD")
	}

	input := &fixedexpense.CreateFixedExpenseInput{
		UserID:         userID,
		Title:          title,
		Date:           parsedDate,
		AmountOfMonths: amountOfMonths,
		VaryingCosts:   varyingCosts,
	}

	if varyingCosts {
		if len(amountPerMonth) == 0 {
			return nil, errors.New("amount_per_month is required for varying costs")
		}
		input.AmountPerMonth = make([]decimal.Decimal, len(amountPerMonth))
		for i, a := range amountPerMonth {
			input.AmountPerMonth[i] = decimal.NewFromFloat(a)
		}
	} else {
		if amount == nil {
			return nil, errors.New("amount is required for flat costs")
		}
		input.Amount = decimal.NewFromFloat(*amount)
	}

	if categoryID != nil {
		id, err := uuid.Parse(*categoryID)
		if err != nil {
			return nil, errors.New("invalid category ID format")
		}
		input.CategoryID = &id
	}
	return input, nil
}

// handleFixedExpenseError handles fixed expense errors and returns appropriate HTTP responses.
func (c *FixedExpenseController) handleFixedExpenseError(ctx *gin.Context, err error) {
	var feErr *domainerror.FixedExpenseError
	if errors.As(err, &feErr) {
		ctx.JSON(c.getStatusCodeForFixedExpenseError(feErr.Code), dto.ErrorResponse{
			Error: feErr.Message,
			Code:  string(feErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFixedExpenseError maps fixed expense error codes to HTTP status codes.
func (c *FixedExpenseController) getStatusCodeForFixedExpenseError(code domainerror.FixedExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeFixedExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedFixedExpense:
		return http.StatusForbidden
	case domainerror.ErrCodeNotAParentFixedExpense,
		domainerror.ErrCodeInvalidAmountOfMonths,
		domainerror.ErrCodeVaryingCostsMismatch,
		domainerror.ErrCodeMissingFixedExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
