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

type InvoiceService interface {
	Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetByJob(ctx context.Context, jobID uuid.UUID) (*dto.InvoiceResponse, error)
	List(ctx context.Context, unpaidOnly bool) ([]dto.InvoiceResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	repo repository.InvoiceRepository
}

func NewInvoiceService(repo repository.InvoiceRepository) InvoiceService {
	return &invoiceService{repo: repo}
}

func mapInvoice(inv *model.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:          inv.ID.String(),
		JobID:       inv.JobID.String(),
		TotalAmount: inv.TotalAmount,
		IsPaid:      inv.IsPaid,
		CreatedAt:   inv.CreatedAt,
	}
}

// Create bills a job. The unique index on job_id rejects a second invoice
// atomically; the first one is never overwritten. Jobs may be invoiced in
// any status; completion is not a precondition.
func (s *invoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.TotalAmount.IsNegative() {
		return nil, apierror.Validation("total_amount must be >= 0")
	}
	inv := &model.Invoice{
		JobID:       req.JobID,
		TotalAmount: req.TotalAmount,
		IsPaid:      false,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("job already has an invoice")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apierror.Referential("job does not exist")
		}
		return nil, err
	}
	resp := mapInvoice(inv)
	return &resp, nil
}

func (s *invoiceService) GetByJob(ctx context.Context, jobID uuid.UUID) (*dto.InvoiceResponse, error) {
	inv, err := s.repo.FindByJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("no invoice for this job")
		}
		return nil, err
	}
	resp := mapInvoice(inv)
	return &resp, nil
}

func (s *invoiceService) List(ctx context.Context, unpaidOnly bool) ([]dto.InvoiceResponse, error) {
	invoices, err := s.repo.List(ctx, unpaidOnly)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		resp[i] = mapInvoice(&invoices[i])
	}
	return resp, nil
}

// Update corrects the amount and/or flips is_paid; nothing else about an
// invoice is mutable.
func (s *invoiceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.TotalAmount == nil && req.IsPaid == nil {
		return nil, apierror.Validation("nothing to update")
	}
	if req.TotalAmount != nil && req.TotalAmount.IsNegative() {
		return nil, apierror.Validation("total_amount must be >= 0")
	}
	inv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("invoice not found")
		}
		return nil, err
	}
	if req.TotalAmount != nil {
		inv.TotalAmount = *req.TotalAmount
	}
	if req.IsPaid != nil {
		inv.IsPaid = *req.IsPaid
	}
	if err := s.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	resp := mapInvoice(inv)
	return &resp, nil
}
