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

type VehicleService interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error)
	List(ctx context.Context) ([]dto.VehicleResponse, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.VehicleResponse, error)
}

type vehicleService struct {
	repo repository.VehicleRepository
}

func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func mapVehicle(v *model.Vehicle) dto.VehicleResponse {
	return dto.VehicleResponse{
		ID:          v.ID.String(),
		CustomerID:  v.CustomerID.String(),
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		PlateNumber: v.PlateNumber,
		CreatedAt:   v.CreatedAt,
	}
}

// Create rejects vehicles whose customer does not exist. The FK constraint
// makes the check atomic with the insert; no row is persisted on failure.
func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	v := &model.Vehicle{
		CustomerID:  req.CustomerID,
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		PlateNumber: req.PlateNumber,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apierror.Referential("customer does not exist")
		}
		return nil, err
	}
	resp := mapVehicle(v)
	return &resp, nil
}

func (s *vehicleService) Get(ctx context.Context, id uuid.UUID) (*dto.VehicleResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("vehicle not found")
		}
		return nil, err
	}
	resp := mapVehicle(v)
	return &resp, nil
}

func (s *vehicleService) List(ctx context.Context) ([]dto.VehicleResponse, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		resp[i] = mapVehicle(&vehicles[i])
	}
	return resp, nil
}

func (s *vehicleService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]dto.VehicleResponse, error) {
	vehicles, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		resp[i] = mapVehicle(&vehicles[i])
	}
	return resp, nil
}
