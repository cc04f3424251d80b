package model

import (
	"time"

	"github.com/google/uuid"
)

// Job statuses. The set is flat: any status may be set from any other,
// there is no enforced transition order.
const (
	JobStatusCreated         = "created"
	JobStatusInProgress      = "in_progress"
	JobStatusWaitingForParts = "waiting_for_parts"
	JobStatusCompleted       = "completed"
	JobStatusCancelled       = "cancelled"
)

// Job is a work card for a vehicle. UpdatedAt is touched on every mutation.
type Job struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehicleID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedWorker *uuid.UUID `gorm:"type:uuid;index"`
	Description    string     `gorm:"not null"`
	Status         string     `gorm:"type:varchar(20);not null;default:'created'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
	Worker  *User    `gorm:"foreignKey:AssignedWorker"`
}
