package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

type JobRepository interface {
	Create(ctx context.Context, j *model.Job) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	List(ctx context.Context, status string) ([]model.Job, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]model.Job, error)
	Update(ctx context.Context, j *model.Job) error
}

type jobRepo struct{ db *gorm.DB }

func NewJobRepository(db *gorm.DB) JobRepository { return &jobRepo{db: db} }

func (r *jobRepo) Create(ctx context.Context, j *model.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var j model.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jobRepo) List(ctx context.Context, status string) ([]model.Job, error) {
	var jobs []model.Job
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Where("assigned_worker = ?", workerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) Update(ctx context.Context, j *model.Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}
