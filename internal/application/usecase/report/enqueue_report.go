// Package report contains the monthly report email use case.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// EnqueueReportInput represents the input for queueing a monthly report email.
type EnqueueReportInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// EnqueueReportOutput represents the queued report job.
type EnqueueReportOutput struct {
	JobID       uuid.UUID
	Status      entity.ReportStatus
	ScheduledAt time.Time
}

// EnqueueReportUseCase queues a monthly spending report email for the
// authenticated user. Delivery happens asynchronously in the email worker.
type EnqueueReportUseCase struct {
	userRepo  adapter.UserRepository
	queueRepo adapter.ReportQueueRepository
}

// NewEnqueueReportUseCase creates a new EnqueueReportUseCase instance.
func NewEnqueueReportUseCase(
	userRepo adapter.UserRepository,
	queueRepo adapter.ReportQueueRepository,
) *EnqueueReportUseCase {
	return &EnqueueReportUseCase{
		userRepo:  userRepo,
		queueRepo: queueRepo,
	}
}

// Execute validates the period and queues the report job.
func (uc *EnqueueReportUseCase) Execute(ctx context.Context, input EnqueueReportInput) (*EnqueueReportOutput, error) {
	if _, err := dashboard.WindowForMonth(input.Month, input.Year); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	job := entity.NewReportJob(user.ID, user.Email, input.Month, input.Year)
	if err := uc.queueRepo.Enqueue(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to enqueue report job: %w", err)
	}

	slog.Info("Report job enqueued", "jobId", job.ID, "userId", user.ID, "period", fmt.Sprintf("%s %d", input.Month, input.Year))

	return &EnqueueReportOutput{
		JobID:       job.ID,
		Status:      job.Status,
		ScheduledAt: job.ScheduledAt,
	}, nil
}
