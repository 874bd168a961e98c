// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// MonthTotalResponse represents one point of the monthly totals series.
type MonthTotalResponse struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// TotalsPerMonthResponse represents the monthly totals series.
type TotalsPerMonthResponse struct {
	Totals []MonthTotalResponse `json:"totals"`
}

// CategoryTotalResponse represents one category's aggregated spending.
type CategoryTotalResponse struct {
	CategoryID string  `json:"category_id"`
	Title      string  `json:"title"`
	Total      float64 `json:"total"`
}

// TotalsPerCategoryResponse represents the per-category totals for one month.
type TotalsPerCategoryResponse struct {
	Totals []CategoryTotalResponse `json:"totals"`
}

// ToTotalsPerMonthResponse converts a monthly totals output to its response DTO.
func ToTotalsPerMonthResponse(output *dashboard.TotalsPerMonthOutput) TotalsPerMonthResponse {
	totals := make([]MonthTotalResponse, len(output.Totals))
	for i, t := range output.Totals {
		totals[i] = MonthTotalResponse{Period: t.Period, Total: t.Total}
	}
	return TotalsPerMonthResponse{Totals: totals}
}

// ToTotalsPerCategoryResponse converts a category totals output to its response DTO.
func ToTotalsPerCategoryResponse(output *dashboard.TotalsPerCategoryOutput) TotalsPerCategoryResponse {
	totals := make([]CategoryTotalResponse, len(output.Totals))
	for i, t := range output.Totals {
		totals[i] = CategoryTotalResponse{
			CategoryID: t.CategoryID.String(),
			Title:      t.Title,
			Total:      t.Total,
		}
	}
	return TotalsPerCategoryResponse{Totals: totals}
}
