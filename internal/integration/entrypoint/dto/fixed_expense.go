// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/fixedexpense"
)

// CreateFixedExpenseRequest represents the request body for fixed expense creation.
// For varying costs, amount_per_month carries one amount per month, head first.
type CreateFixedExpenseRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=255"`
	Date           string    `json:"date" binding:"required"`
	Amount         *float64  `json:"amount,omitempty" binding:"omitempty,gt=0"`
	VaryingCosts   bool      `json:"varying_costs"`
	AmountOfMonths int       `json:"amount_of_months" binding:"required,min=1"`
	AmountPerMonth []float64 `json:"amount_per_month,omitempty" binding:"omitempty,dive,gt=0"`
	CategoryID     *string   `json:"category_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateFixedExpenseRequest represents the request body for fixed expense update.
type UpdateFixedExpenseRequest struct {
	Title          string    `json:"title" binding:"required,min=1,max=255"`
	Date           string    `json:"date" binding:"required"`
	Amount         *float64  `json:"amount,omitempty" binding:"omitempty,gt=0"`
	VaryingCosts   bool      `json:"varying_costs"`
	AmountOfMonths int       `json:"amount_of_months" binding:"required,min=1"`
	AmountPerMonth []float64 `json:"amount_per_month,omitempty" binding:"omitempty,dive,gt=0"`
	CategoryID     *string   `json:"category_id,omitempty" binding:"omitempty,uuid"`
}

// FixedExpenseResponse represents a single fixed expense in API responses.
type FixedExpenseResponse struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	Date           time.Time              `json:"date"`
	Amount         string                 `json:"amount"`
	VaryingCosts   bool                   `json:"varying_costs"`
	AmountOfMonths int                    `json:"amount_of_months"`
	CategoryID     *string                `json:"category_id,omitempty"`
	IsParent       bool                   `json:"is_parent"`
	Children       []FixedExpenseResponse `json:"children,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// FixedExpenseListResponse represents the response for listing fixed expenses.
type FixedExpenseListResponse struct {
	FixedExpenses []FixedExpenseResponse `json:"fixed_expenses"`
}

// ToFixedExpenseResponse converts a fixed expense output to a FixedExpenseResponse DTO.
func ToFixedExpenseResponse(output *fixedexpense.FixedExpenseOutput) FixedExpenseResponse {
	resp := FixedExpenseResponse{
		ID:             output.ID.String(),
		Title:          output.Title,
		Date:           output.Date,
		Amount:         output.Amount.StringFixed(2),
		VaryingCosts:   output.VaryingCosts,
		AmountOfMonths: output.AmountOfMonths,
		IsParent:       output.IsParent,
		CreatedAt:      output.CreatedAt,
		UpdatedAt:      output.UpdatedAt,
	}
	if output.CategoryID != nil {
		id := output.CategoryID.String()
		resp.CategoryID = &id
	}
	for _, child := range output.Children {
		resp.Children = append(resp.Children, ToFixedExpenseResponse(child))
	}
	return resp
}

// ToFixedExpenseListResponse converts a list of fixed expense outputs to a FixedExpenseListResponse.
func ToFixedExpenseListResponse(outputs []*fixedexpense.FixedExpenseOutput) FixedExpenseListResponse {
	fixedExpenses := make([]FixedExpenseResponse, len(outputs))
	for i, output := range outputs {
		fixedExpenses[i] = ToFixedExpenseResponse(output)
	}
	return FixedExpenseListResponse{
		FixedExpenses: fixedExpenses,
	}
}
