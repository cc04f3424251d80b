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

type JobService interface {
	Create(ctx context.Context, req dto.CreateJobRequest) (*dto.JobResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.JobResponse, error)
	List(ctx context.Context, status string) ([]dto.JobResponse, error)
	ListByWorker(ctx context.Context, workerID uuid.UUID) ([]dto.JobResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateJobRequest) (*dto.JobResponse, error)
	AddNote(ctx context.Context, workerID uuid.UUID, req dto.CreateJobNoteRequest) (*dto.JobNoteResponse, error)
	ListNotes(ctx context.Context, jobID uuid.UUID) ([]dto.JobNoteResponse, error)
}

type jobService struct {
	repo     repository.JobRepository
	noteRepo repository.JobNoteRepository
}

func NewJobService(repo repository.JobRepository, noteRepo repository.JobNoteRepository) JobService {
	return &jobService{repo: repo, noteRepo: noteRepo}
}

func mapJob(j *model.Job) dto.JobResponse {
	var worker *string
	if j.AssignedWorker != nil {
		w := j.AssignedWorker.String()
		worker = &w
	}
	return dto.JobResponse{
		ID:             j.ID.String(),
		VehicleID:      j.VehicleID.String(),
		AssignedWorker: worker,
		Description:    j.Description,
		Status:         j.Status,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

func mapJobNote(n *model.JobNote) dto.JobNoteResponse {
	return dto.JobNoteResponse{
		ID:        n.ID.String(),
		JobID:     n.JobID.String(),
		WorkerID:  n.WorkerID.String(),
		Note:      n.Note,
		CreatedAt: n.CreatedAt,
	}
}

// Create opens a job card in status "created". The vehicle FK (and the
// optional worker FK) are enforced atomically with the insert.
func (s *jobService) Create(ctx context.Context, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	j := &model.Job{
		VehicleID:      req.VehicleID,
		AssignedWorker: req.AssignedWorker,
		Description:    req.Description,
		Status:         model.JobStatusCreated,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apierror.Referential("vehicle or assigned worker does not exist")
		}
		return nil, err
	}
	resp := mapJob(j)
	return &resp, nil
}

func (s *jobService) Get(ctx context.Context, id uuid.UUID) (*dto.JobResponse, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("job not found")
		}
		return nil, err
	}
	resp := mapJob(j)
	return &resp, nil
}

func (s *jobService) List(ctx context.Context, status string) ([]dto.JobResponse, error) {
	jobs, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.JobResponse, len(jobs))
	for i := range jobs {
		resp[i] = mapJob(&jobs[i])
	}
	return resp, nil
}

func (s *jobService) ListByWorker(ctx context.Context, workerID uuid.UUID) ([]dto.JobResponse, error) {
	jobs, err := s.repo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.JobResponse, len(jobs))
	for i := range jobs {
		resp[i] = mapJob(&jobs[i])
	}
	return resp, nil
}

// Update patches only the supplied fields; omitted fields keep their values.
// An empty patch is reported as such before any store access, leaving
// updated_at untouched. Status moves are unconstrained within the status set.
func (s *jobService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if req.AssignedWorker == nil && req.Description == nil && req.Status == nil {
		return nil, apierror.Validation("nothing to update")
	}
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("job not found")
		}
		return nil, err
	}
	if req.AssignedWorker != nil {
		j.AssignedWorker = req.AssignedWorker
	}
	if req.Description != nil {
		j.Description = *req.Description
	}
	if req.Status != nil {
		j.Status = *req.Status
	}
	if err := s.repo.Update(ctx, j); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apierror.Referential("assigned worker does not exist")
		}
		return nil, err
	}
	resp := mapJob(j)
	return &resp, nil
}

// AddNote appends an immutable note authored by the authenticated worker.
func (s *jobService) AddNote(ctx context.Context, workerID uuid.UUID, req dto.CreateJobNoteRequest) (*dto.JobNoteResponse, error) {
	n := &model.JobNote{
		JobID:    req.JobID,
		WorkerID: workerID,
		Note:     req.Note,
	}
	if err := s.noteRepo.Create(ctx, n); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, apierror.Referential("job does not exist")
		}
		return nil, err
	}
	resp := mapJobNote(n)
	return &resp, nil
}

func (s *jobService) ListNotes(ctx context.Context, jobID uuid.UUID) ([]dto.JobNoteResponse, error) {
	notes, err := s.noteRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.JobNoteResponse, len(notes))
	for i := range notes {
		resp[i] = mapJobNote(&notes[i])
	}
	return resp, nil
}
