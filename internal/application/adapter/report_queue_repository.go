// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ReportQueueRepository defines the interface for the monthly report email queue.
type ReportQueueRepository interface {
	// Enqueue adds a report job to the queue.
	Enqueue(ctx context.Context, job *entity.ReportJob) error

	// GetPendingJobs retrieves up to limit pending jobs whose scheduled time
	// has passed, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReportJob, error)

	// Update persists a job's state transition.
	Update(ctx context.Context, job *entity.ReportJob) error
}
