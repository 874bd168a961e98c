// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/report"
)

// EnqueueReportRequest represents the request body for queueing a monthly report.
type EnqueueReportRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2200"`
}

// ReportJobResponse represents a queued report job in API responses.
type ReportJobResponse struct {
	JobID       string    `json:"job_id"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ToReportJobResponse converts an enqueue output to a ReportJobResponse DTO.
func ToReportJobResponse(output *report.EnqueueReportOutput) ReportJobResponse {
	return ReportJobResponse{
		JobID:       output.JobID.String(),
		Status:      string(output.Status),
		ScheduledAt: output.ScheduledAt,
	}
}
