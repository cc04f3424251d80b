package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Vehicle, error)
}

type vehicleRepo struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) VehicleRepository { return &vehicleRepo{db: db} }

func (r *vehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehicle, error) {
	var v model.Vehicle
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vehicleRepo) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vehicles).Error
	return vehicles, err
}

func (r *vehicleRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&vehicles).Error
	return vehicles, err
}
