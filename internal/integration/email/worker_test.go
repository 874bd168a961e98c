// Package email provides report email delivery via Resend.
package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/email/templates"
)

// fakeReportQueue is an in-memory ReportQueueRepository.
type fakeReportQueue struct {
	jobs map[uuid.UUID]*entity.ReportJob
}

func newFakeReportQueue() *fakeReportQueue {
	return &fakeReportQueue{jobs: make(map[uuid.UUID]*entity.ReportJob)}
}

func (f *fakeReportQueue) Enqueue(_ context.Context, job *entity.ReportJob) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeReportQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.ReportJob, error) {
	now := time.Now().UTC()
	var pending []*entity.ReportJob
	for _, job := range f.jobs {
		if job.Status == entity.ReportStatusPending && !job.ScheduledAt.After(now) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (f *fakeReportQueue) Update(_ context.Context, job *entity.ReportJob) error {
	f.jobs[job.ID] = job
	return nil
}

// fixedSumRepository serves one flat sum and one category row.
type fixedSumRepository struct {
	sum decimal.Decimal
}

func (r *fixedSumRepository) SumEffectiveByDateRange(_ context.Context, _ uuid.UUID, _, _ time.Time) (decimal.Decimal, error) {
	return r.sum, nil
}

func (r *fixedSumRepository) GetCategoryTotals(_ context.Context, _ uuid.UUID, _, _ time.Time, _ int) ([]dashboard.RawCategoryTotal, error) {
	title := "Groceries"
	return []dashboard.RawCategoryTotal{
		{CategoryID: uuid.New(), Title: &title, Total: r.sum},
	}, nil
}

func newTestWorker(t *testing.T, queue *fakeReportQueue, sender *MockEmailSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	return NewWorker(queue, sender, renderer, &fixedSumRepository{
		sum: decimal.RequireFromString("312.10"),
	}, DefaultWorkerConfig())
}

func TestWorker_SendsPendingReport(t *testing.T) {
	queue := newFakeReportQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := entity.NewReportJob(uuid.New(), "user@example.com", time.February, 2024)
	require.NoError(t, queue.Enqueue(context.Background(), job))

	worker.ProcessNow(context.Background())

	require.Len(t, sender.SentEmails, 1)
	sent := sender.SentEmails[0]
	assert.Equal(t, "user@example.com", sent.To)
	assert.Contains(t, sent.Subject, "February 2024")
	assert.Contains(t, sent.HTML, "312.10")
	assert.Contains(t, sent.Text, "Groceries")

	assert.Equal(t, entity.ReportStatusSent, queue.jobs[job.ID].Status)
	assert.NotNil(t, queue.jobs[job.ID].SentAt)
}

func TestWorker_TemporaryFailureReschedules(t *testing.T) {
	queue := newFakeReportQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("rate limited"), false)
	worker := newTestWorker(t, queue, sender)

	job := entity.NewReportJob(uuid.New(), "user@example.com", time.March, 2024)
	require.NoError(t, queue.Enqueue(context.Background(), job))

	worker.ProcessNow(context.Background())

	stored := queue.jobs[job.ID]
	assert.Equal(t, entity.ReportStatusPending, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
	assert.True(t, stored.ScheduledAt.After(time.Now().UTC()), "retry must be scheduled in the future")
	assert.Contains(t, stored.LastError, "rate limited")
}

func TestWorker_PermanentFailureFailsImmediately(t *testing.T) {
	queue := newFakeReportQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("unauthorized"), true)
	worker := newTestWorker(t, queue, sender)

	job := entity.NewReportJob(uuid.New(), "user@example.com", time.March, 2024)
	require.NoError(t, queue.Enqueue(context.Background(), job))

	worker.ProcessNow(context.Background())

	stored := queue.jobs[job.ID]
	assert.Equal(t, entity.ReportStatusFailed, stored.Status)
	assert.Equal(t, 1, stored.Attempts)
}

func TestWorker_ExhaustedRetriesFailTheJob(t *testing.T) {
	queue := newFakeReportQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("server error"), false)
	worker := newTestWorker(t, queue, sender)

	job := entity.NewReportJob(uuid.New(), "user@example.com", time.April, 2024)
	require.NoError(t, queue.Enqueue(context.Background(), job))

	for i := 0; i < entity.MaxReportAttempts; i++ {
		// Pull the retry forward so the next batch picks it up.
		queue.jobs[job.ID].ScheduledAt = time.Now().UTC().Add(-time.Second)
		worker.ProcessNow(context.Background())
	}

	stored := queue.jobs[job.ID]
	assert.Equal(t, entity.ReportStatusFailed, stored.Status)
	assert.Equal(t, entity.MaxReportAttempts, stored.Attempts)
}

func TestReportJob_MarkFailedBackoffIsLinear(t *testing.T) {
	job := entity.NewReportJob(uuid.New(), "user@example.com", time.May, 2024)

	before := time.Now().UTC()
	job.MarkFailed(errors.New("boom"), false)

	assert.Equal(t, entity.ReportStatusPending, job.Status)
	delay := job.ScheduledAt.Sub(before)
	assert.GreaterOrEqual(t, delay, 50*time.Second)
	assert.LessOrEqual(t, delay, 70*time.Second)
}

func TestIsPermanentError(t *testing.T) {
	permanent := []string{"401 unauthorized", "validation failed", "403 forbidden"}
	for _, msg := range permanent {
		if !isPermanentError(errors.New(msg)) {
			t.Errorf("expected %q to be permanent", msg)
		}
	}

	temporary := []string{"429 too many requests", "500 internal server error"}
	for _, msg := range temporary {
		if isPermanentError(errors.New(msg)) {
			t.Errorf("expected %q to be temporary", msg)
		}
	}
}

func TestResendClient_ErrorClassification(t *testing.T) {
	// The worker relies on the error code to decide whether to retry.
	sendErr := domainerror.NewReportError(
		domainerror.ErrCodePermanentReportFailure,
		"permanent email failure",
		errors.New("422"),
	)

	var reportErr *domainerror.ReportError
	require.ErrorAs(t, sendErr, &reportErr)
	assert.Equal(t, domainerror.ErrCodePermanentReportFailure, reportErr.Code)
	assert.True(t, strings.Contains(sendErr.Error(), "permanent"))
}
