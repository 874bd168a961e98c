// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
)

// TransactionItemRequest represents one item of a submitted transaction.
type TransactionItemRequest struct {
	Title  string   `json:"title" binding:"required,min=1,max=255"`
	Amount float64  `json:"amount" binding:"required,gt=0"`
	Unit   *float64 `json:"unit,omitempty" binding:"omitempty,gt=0"`
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Location string                   `json:"location" binding:"required,min=1,max=255"`
	Date     string                   `json:"date" binding:"required"`
	Items    []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Items is the complete replacement set.
type UpdateTransactionRequest struct {
	Location string                   `json:"location" binding:"required,min=1,max=255"`
	Date     string                   `json:"date" binding:"required"`
	Items    []TransactionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// TransactionItemResponse represents one constituent expense in API responses.
type TransactionItemResponse struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Amount string  `json:"amount"`
	Unit   *string `json:"unit,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string                    `json:"id"`
	Location  string                    `json:"location"`
	Date      time.Time                 `json:"date"`
	Total     string                    `json:"total"`
	Items     []TransactionItemResponse `json:"items"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a transaction output to a TransactionResponse DTO.
func ToTransactionResponse(output *transaction.TransactionOutput) TransactionResponse {
	resp := TransactionResponse{
		ID:        output.ID.String(),
		Location:  output.Location,
		Date:      output.Date,
		Total:     output.Total.StringFixed(2),
		Items:     make([]TransactionItemResponse, 0, len(output.Items)),
		CreatedAt: output.CreatedAt,
		UpdatedAt: output.UpdatedAt,
	}
	for _, item := range output.Items {
		itemResp := TransactionItemResponse{
			ID:     item.ID.String(),
			Title:  item.Title,
			Amount: item.Amount.StringFixed(2),
		}
		if item.Unit != nil {
			unit := item.Unit.StringFixed(2)
			itemResp.Unit = &unit
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}

// ToTransactionListResponse converts a list of transaction outputs to a TransactionListResponse.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
