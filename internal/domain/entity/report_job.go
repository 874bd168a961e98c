// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus represents the lifecycle state of a queued report email.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "pending"
	ReportStatusProcessing ReportStatus = "processing"
	ReportStatusSent       ReportStatus = "sent"
	ReportStatusFailed     ReportStatus = "failed"
)

// MaxReportAttempts is the number of delivery attempts before a report job is
// marked permanently failed.
const MaxReportAttempts = 3

// ReportJob is a queued monthly spending report email. Jobs are written by the
// report use case and drained by the email worker.
type ReportJob struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RecipientEmail string
	Month          time.Month
	Year           int
	Status         ReportStatus
	Attempts       int
	LastError      string
	ScheduledAt    time.Time
	SentAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewReportJob creates a pending report job for the given period.
func NewReportJob(userID uuid.UUID, email string, month time.Month, year int) *ReportJob {
	now := time.Now().UTC()

	return &ReportJob{
		ID:             uuid.New(),
		UserID:         userID,
		RecipientEmail: email,
		Month:          month,
		Year:           year,
		Status:         ReportStatusPending,
		ScheduledAt:    now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// MarkProcessing transitions the job to the processing state.
func (j *ReportJob) MarkProcessing() {
	j.Status = ReportStatusProcessing
	j.UpdatedAt = time.Now().UTC()
}

// MarkSent transitions the job to the sent state.
func (j *ReportJob) MarkSent() {
	now := time.Now().UTC()
	j.Status = ReportStatusSent
	j.SentAt = &now
	j.UpdatedAt = now
}

// MarkFailed records a delivery failure. Transient failures are rescheduled
// with a linear backoff until MaxReportAttempts is reached; permanent failures
// fail the job immediately.
func (j *ReportJob) MarkFailed(err error, permanent bool) {
	now := time.Now().UTC()
	j.Attempts++
	if err != nil {
		j.LastError = err.Error()
	}

	if permanent || j.Attempts >= MaxReportAttempts {
		j.Status = ReportStatusFailed
	} else {
		j.Status = ReportStatusPending
		j.ScheduledAt = now.Add(time.Duration(j.Attempts) * time.Minute)
	}
	j.UpdatedAt = now
}
