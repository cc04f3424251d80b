package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/model"
	"github.com/Ncongwana-808/autorepair-erp/internal/repository"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context, activeOnly bool) ([]dto.CustomerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func mapCustomer(c *model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID.String(),
		FullName:  c.FullName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := &model.Customer{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Address:  req.Address,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCustomer(c)
	return &resp, nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("customer not found")
		}
		return nil, err
	}
	resp := mapCustomer(c)
	return &resp, nil
}

func (s *customerService) List(ctx context.Context, activeOnly bool) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		resp[i] = mapCustomer(&customers[i])
	}
	return resp, nil
}

// Update patches only the supplied fields. Deactivation (is_active=false) is
// the only deletion mechanism for customers.
func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if req.FullName == nil && req.Phone == nil && req.Email == nil &&
		req.Address == nil && req.IsActive == nil {
		return nil, apierror.Validation("nothing to update")
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("customer not found")
		}
		return nil, err
	}
	if req.FullName != nil {
		c.FullName = *req.FullName
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCustomer(c)
	return &resp, nil
}
