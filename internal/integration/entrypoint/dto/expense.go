// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=255"`
	Amount       float64  `json:"amount" binding:"required,gt=0"`
	Unit         *float64 `json:"unit,omitempty" binding:"omitempty,gt=0"`
	Installments int      `json:"installments" binding:"omitempty,min=1"`
	Date         string   `json:"date" binding:"required"`
	CategoryIDs  []string `json:"category_ids,omitempty" binding:"omitempty,max=3,dive,uuid"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=255"`
	Amount       float64  `json:"amount" binding:"required,gt=0"`
	Unit         *float64 `json:"unit,omitempty" binding:"omitempty,gt=0"`
	Installments int      `json:"installments" binding:"omitempty,min=1"`
	Date         string   `json:"date" binding:"required"`
	CategoryIDs  []string `json:"category_ids,omitempty" binding:"omitempty,max=3,dive,uuid"`
}

// ExpenseCategoryResponse represents a category attached to an expense.
type ExpenseCategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID              string                    `json:"id"`
	Title           string                    `json:"title"`
	Amount          string                    `json:"amount"`
	Unit            *string                   `json:"unit,omitempty"`
	Installments    int                       `json:"installments"`
	Date            time.Time                 `json:"date"`
	AmountEffective string                    `json:"amount_effective"`
	Categories      []ExpenseCategoryResponse `json:"categories"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an expense output to an ExpenseResponse DTO.
func ToExpenseResponse(output *expense.ExpenseOutput) ExpenseResponse {
	resp := ExpenseResponse{
		ID:              output.ID.String(),
		Title:           output.Title,
		Amount:          output.Amount.StringFixed(2),
		Installments:    output.Installments,
		Date:            output.Date,
		AmountEffective: output.AmountEffective.StringFixed(2),
		Categories:      make([]ExpenseCategoryResponse, 0, len(output.Categories)),
		CreatedAt:       output.CreatedAt,
		UpdatedAt:       output.UpdatedAt,
	}
	if output.Unit != nil {
		unit := output.Unit.StringFixed(2)
		resp.Unit = &unit
	}
	for _, c := range output.Categories {
		resp.Categories = append(resp.Categories, ExpenseCategoryResponse{
			ID:    c.ID.String(),
			Title: c.Title,
		})
	}
	return resp
}

// ToExpenseListResponse converts a list of expense outputs to an ExpenseListResponse.
func ToExpenseListResponse(outputs []*expense.ExpenseOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(outputs))
	for i, output := range outputs {
		expenses[i] = ToExpenseResponse(output)
	}
	return ExpenseListResponse{
		Expenses: expenses,
	}
}
