package dto

import "time"

type CreateCustomerRequest struct {
	FullName string  `json:"full_name" validate:"required,min=1,max=200"`
	Phone    *string `json:"phone"     validate:"omitempty,max=50"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Address  *string `json:"address"   validate:"omitempty,max=300"`
}

type UpdateCustomerRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Phone    *string `json:"phone"     validate:"omitempty,max=50"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Address  *string `json:"address"   validate:"omitempty,max=300"`
	IsActive *bool   `json:"is_active"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
