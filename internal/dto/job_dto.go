package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	VehicleID      uuid.UUID  `json:"vehicle_id"      validate:"required"`
	Description    string     `json:"description"     validate:"required,min=1"`
	AssignedWorker *uuid.UUID `json:"assigned_worker"`
}

// UpdateJobRequest patches a job. Status accepts any member of the flat
// status set; no transition order is enforced.
type UpdateJobRequest struct {
	AssignedWorker *uuid.UUID `json:"assigned_worker"`
	Description    *string    `json:"description" validate:"omitempty,min=1"`
	Status         *string    `json:"status"      validate:"omitempty,oneof=created in_progress waiting_for_parts completed cancelled"`
}

type JobResponse struct {
	ID             string    `json:"id"`
	VehicleID      string    `json:"vehicle_id"`
	AssignedWorker *string   `json:"assigned_worker"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateJobNoteRequest struct {
	JobID uuid.UUID `json:"job_id" validate:"required"`
	Note  string    `json:"note"   validate:"required,min=1"`
}

type JobNoteResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	WorkerID  string    `json:"worker_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
