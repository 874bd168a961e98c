// Package email provides report email delivery via Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
)

// Worker drains the report job queue, builds each monthly report and sends it.
type Worker struct {
	queue        adapter.ReportQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	totals       *dashboard.TotalsPerCategoryUseCase
	dashRepo     dashboard.Repository
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the report email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new report email worker.
func NewWorker(
	queue adapter.ReportQueueRepository,
	sender adapter.EmailSender,
	renderer *templates.Renderer,
	dashRepo dashboard.Repository,
	config WorkerConfig,
) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		totals:       dashboard.NewTotalsPerCategoryUseCase(dashRepo),
		dashRepo:     dashRepo,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Report worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Report worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending report jobs.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending report jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing report batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob builds and sends a single monthly report.
func (w *Worker) processJob(ctx context.Context, job *entity.ReportJob) {
	logger := slog.With(
		"job_id", job.ID,
		"recipient", job.RecipientEmail,
		"period", fmt.Sprintf("%s %d", job.Month, job.Year),
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.buildReport(ctx, job)
	if err != nil {
		logger.Error("Failed to build report", "error", err)
		w.handleFailure(ctx, job, err, false)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Subject: fmt.Sprintf("Your spending report for %s %d", job.Month, job.Year),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send report email", "error", err)

		var reportErr *domainerror.ReportError
		isPermanent := errors.As(err, &reportErr) && reportErr.Code == domainerror.ErrCodePermanentReportFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Report email sent", "provider_id", result.ProviderID)
}

// buildReport aggregates the job's month and renders the report templates.
func (w *Worker) buildReport(ctx context.Context, job *entity.ReportJob) (html string, text string, err error) {
	window, err := dashboard.WindowForMonth(job.Month, job.Year)
	if err != nil {
		return "", "", err
	}

	sum, err := w.dashRepo.SumEffectiveByDateRange(ctx, job.UserID, window.Start, window.End)
	if err != nil {
		return "", "", fmt.Errorf("failed to sum month: %w", err)
	}

	categories, err := w.totals.Execute(ctx, dashboard.TotalsPerCategoryInput{
		UserID:       job.UserID,
		Month:        job.Month,
		Year:         job.Year,
		SkipOrphaned: true,
	})
	if err != nil {
		return "", "", err
	}

	data := templates.MonthlyReportData{
		Period: window.Label(),
		Total:  sum.Round(2).StringFixed(2),
	}
	for _, ct := range categories.Totals {
		data.Categories = append(data.Categories, templates.ReportCategoryLine{
			Title: ct.Title,
			Total: fmt.Sprintf("%.2f", ct.Total),
		})
	}

	return w.renderer.Render("monthly_report", data)
}

// handleFailure records a failed delivery attempt.
func (w *Worker) handleFailure(ctx context.Context, job *entity.ReportJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.ReportStatusFailed {
		slog.Warn("Report job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Report job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// ProcessNow processes all pending report jobs immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
