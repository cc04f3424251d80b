package model

import (
	"time"

	"github.com/google/uuid"
)

// JobNote is an append-only progress entry on a job, immutable once created.
// WorkerID is always the authenticated author, never taken from the request.
type JobNote struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Note      string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Job    *Job  `gorm:"foreignKey:JobID"`
	Worker *User `gorm:"foreignKey:WorkerID"`
}
