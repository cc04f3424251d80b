package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error)
	FindByJob(ctx context.Context, jobID uuid.UUID) (*model.Invoice, error)
	List(ctx context.Context, unpaidOnly bool) ([]model.Invoice, error)
	Update(ctx context.Context, inv *model.Invoice) error
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

// Create relies on the unique index on job_id: a second invoice for the same
// job fails with gorm.ErrDuplicatedKey and the first row is untouched.
func (r *invoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).First(&inv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) FindByJob(ctx context.Context, jobID uuid.UUID) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepo) List(ctx context.Context, unpaidOnly bool) ([]model.Invoice, error) {
	var invoices []model.Invoice
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if unpaidOnly {
		q = q.Where("is_paid = false")
	}
	err := q.Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) Update(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Save(inv).Error
}
