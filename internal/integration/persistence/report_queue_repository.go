// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// reportQueueRepository implements the adapter.ReportQueueRepository interface.
type reportQueueRepository struct {
	db *gorm.DB
}

// NewReportQueueRepository creates a new report queue repository instance.
func NewReportQueueRepository(db *gorm.DB) adapter.ReportQueueRepository {
	return &reportQueueRepository{
		db: db,
	}
}

// Enqueue adds a report job to the queue.
func (r *reportQueueRepository) Enqueue(ctx context.Context, job *entity.ReportJob) error {
	result := r.db.WithContext(ctx).Create(model.ReportJobFromEntity(job))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetPendingJobs retrieves up to limit pending jobs whose scheduled time has
// passed, oldest first.
func (r *reportQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.ReportJob, error) {
	var jobModels []model.ReportJobModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", string(entity.ReportStatusPending), time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.ReportJob, 0, len(jobModels))
	for _, jm := range jobModels {
		jobs = append(jobs, jm.ToEntity())
	}
	return jobs, nil
}

// Update persists a job's state transition.
func (r *reportQueueRepository) Update(ctx context.Context, job *entity.ReportJob) error {
	result := r.db.WithContext(ctx).Save(model.ReportJobFromEntity(job))
	if result.Error != nil {
		return result.Error
	}
	return nil
}
