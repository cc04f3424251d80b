package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateVehicleRequest struct {
	CustomerID  uuid.UUID `json:"customer_id"  validate:"required"`
	Make        string    `json:"make"         validate:"required,min=1,max=100"`
	Model       string    `json:"model"        validate:"required,min=1,max=100"`
	Year        int       `json:"year"         validate:"required,gte=1900,lte=2100"`
	PlateNumber string    `json:"plate_number" validate:"required,min=1,max=20"`
}

type VehicleResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	PlateNumber string    `json:"plate_number"`
	CreatedAt   time.Time `json:"created_at"`
}
