package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

type JobNoteRepository interface {
	Create(ctx context.Context, n *model.JobNote) error
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.JobNote, error)
}

type jobNoteRepo struct{ db *gorm.DB }

func NewJobNoteRepository(db *gorm.DB) JobNoteRepository { return &jobNoteRepo{db: db} }

func (r *jobNoteRepo) Create(ctx context.Context, n *model.JobNote) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByJob returns notes oldest-first: a chronological work log.
func (r *jobNoteRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]model.JobNote, error) {
	var notes []model.JobNote
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&notes).Error
	return notes, err
}
