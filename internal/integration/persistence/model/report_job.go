// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ReportJobModel represents the report_jobs queue table in the database.
type ReportJobModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipientEmail string     `gorm:"type:varchar(255);not null"`
	Month          int        `gorm:"not null"`
	Year           int        `gorm:"not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int        `gorm:"not null;default:0"`
	LastError      string     `gorm:"type:text"`
	ScheduledAt    time.Time  `gorm:"not null;index"`
	SentAt         *time.Time `gorm:"type:timestamptz"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for the ReportJobModel.
func (ReportJobModel) TableName() string {
	return "report_jobs"
}

// ToEntity converts a ReportJobModel to a domain ReportJob entity.
func (m *ReportJobModel) ToEntity() *entity.ReportJob {
	return &entity.ReportJob{
		ID:             m.ID,
		UserID:         m.UserID,
		RecipientEmail: m.RecipientEmail,
		Month:          time.Month(m.Month),
		Year:           m.Year,
		Status:         entity.ReportStatus(m.Status),
		Attempts:       m.Attempts,
		LastError:      m.LastError,
		ScheduledAt:    m.ScheduledAt,
		SentAt:         m.SentAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ReportJobFromEntity creates a ReportJobModel from a domain ReportJob entity.
func ReportJobFromEntity(job *entity.ReportJob) *ReportJobModel {
	return &ReportJobModel{
		ID:             job.ID,
		UserID:         job.UserID,
		RecipientEmail: job.RecipientEmail,
		Month:          int(job.Month),
		Year:           job.Year,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		LastError:      job.LastError,
		ScheduledAt:    job.ScheduledAt,
		SentAt:         job.SentAt,
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
	}
}
