package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles understood by the access policies. Admin is a superset of worker.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// User stores workshop staff with role-based access.
// Users are never hard-deleted; IsActive=false deactivates the account and
// revokes access on the next authenticated request.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
}
