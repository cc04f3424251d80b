package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a workshop client. Soft-deactivatable, never hard-deleted.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName  string    `gorm:"not null"`
	Phone     *string
	Email     *string
	Address   *string
	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}
