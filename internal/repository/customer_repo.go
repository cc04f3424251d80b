package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context, activeOnly bool) ([]model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) List(ctx context.Context, activeOnly bool) ([]model.Customer, error) {
	var customers []model.Customer
	q := r.db.WithContext(ctx).Order("full_name")
	if activeOnly {
		q = q.Where("is_active = true")
	}
	err := q.Find(&customers).Error
	return customers, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}
