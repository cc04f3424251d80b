package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice bills a job. The unique index on JobID enforces at most one
// invoice per job atomically at insert time.
type Invoice struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID       uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IsPaid      bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time

	Job *Job `gorm:"foreignKey:JobID"`
}
