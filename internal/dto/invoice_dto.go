package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	JobID       uuid.UUID       `json:"job_id"       validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"min=0"`
}

type UpdateInvoiceRequest struct {
	TotalAmount *decimal.Decimal `json:"total_amount"`
	IsPaid      *bool            `json:"is_paid"`
}

type InvoiceResponse struct {
	ID          string          `json:"id"`
	JobID       string          `json:"job_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsPaid      bool            `json:"is_paid"`
	CreatedAt   time.Time       `json:"created_at"`
}
