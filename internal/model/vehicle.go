package model

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle belongs to exactly one customer. A customer owns zero or more
// vehicles; the FK makes an orphan vehicle impossible.
type Vehicle struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Make        string    `gorm:"not null"`
	Model       string    `gorm:"not null"`
	Year        int       `gorm:"not null"`
	PlateNumber string    `gorm:"not null;index"`
	CreatedAt   time.Time

	Customer *Customer `gorm:"foreignKey:CustomerID"`
}
