package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

// In-memory repository stubs. They reproduce the store contract the services
// rely on: gorm.ErrRecordNotFound for absent rows, gorm.ErrDuplicatedKey for
// unique violations and gorm.ErrForeignKeyViolated for dangling references.

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = uuid.New()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	c.ID = uuid.New()
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) List(_ context.Context, activeOnly bool) ([]model.Customer, error) {
	var out []model.Customer
	for _, c := range r.customers {
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

type stubJobRepo struct {
	jobs     map[uuid.UUID]*model.Job
	vehicles map[uuid.UUID]bool
	workers  map[uuid.UUID]bool
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{
		jobs:     make(map[uuid.UUID]*model.Job),
		vehicles: make(map[uuid.UUID]bool),
		workers:  make(map[uuid.UUID]bool),
	}
}

func (r *stubJobRepo) checkRefs(j *model.Job) error {
	if !r.vehicles[j.VehicleID] {
		return gorm.ErrForeignKeyViolated
	}
	if j.AssignedWorker != nil && !r.workers[*j.AssignedWorker] {
		return gorm.ErrForeignKeyViolated
	}
	return nil
}

func (r *stubJobRepo) Create(_ context.Context, j *model.Job) error {
	if err := r.checkRefs(j); err != nil {
		return err
	}
	j.ID = uuid.New()
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *stubJobRepo) List(_ context.Context, status string) ([]model.Job, error) {
	var out []model.Job
	for _, j := range r.jobs {
		if status != "" && j.Status != status {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (r *stubJobRepo) ListByWorker(_ context.Context, workerID uuid.UUID) ([]model.Job, error) {
	var out []model.Job
	for _, j := range r.jobs {
		if j.AssignedWorker != nil && *j.AssignedWorker == workerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

// Update touches UpdatedAt the way gorm's Save does in the real repository.
func (r *stubJobRepo) Update(_ context.Context, j *model.Job) error {
	if _, ok := r.jobs[j.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if err := r.checkRefs(j); err != nil {
		return err
	}
	j.UpdatedAt = time.Now()
	cp := *j
	r.jobs[j.ID] = &cp
	return nil
}

type stubJobNoteRepo struct {
	notes []model.JobNote
	jobs  *stubJobRepo
}

func newStubJobNoteRepo(jobs *stubJobRepo) *stubJobNoteRepo {
	return &stubJobNoteRepo{jobs: jobs}
}

func (r *stubJobNoteRepo) Create(_ context.Context, n *model.JobNote) error {
	if _, ok := r.jobs.jobs[n.JobID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	n.ID = uuid.New()
	r.notes = append(r.notes, *n)
	return nil
}

func (r *stubJobNoteRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]model.JobNote, error) {
	var out []model.JobNote
	for _, n := range r.notes {
		if n.JobID == jobID {
			out = append(out, n)
		}
	}
	return out, nil
}

type stubInvoiceRepo struct {
	invoices map[uuid.UUID]*model.Invoice
	jobs     *stubJobRepo
}

func newStubInvoiceRepo(jobs *stubJobRepo) *stubInvoiceRepo {
	return &stubInvoiceRepo{invoices: make(map[uuid.UUID]*model.Invoice), jobs: jobs}
}

func (r *stubInvoiceRepo) Create(_ context.Context, inv *model.Invoice) error {
	if _, ok := r.jobs.jobs[inv.JobID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	for _, existing := range r.invoices {
		if existing.JobID == inv.JobID {
			return gorm.ErrDuplicatedKey
		}
	}
	inv.ID = uuid.New()
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *stubInvoiceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *stubInvoiceRepo) FindByJob(_ context.Context, jobID uuid.UUID) (*model.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.JobID == jobID {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInvoiceRepo) List(_ context.Context, unpaidOnly bool) ([]model.Invoice, error) {
	var out []model.Invoice
	for _, inv := range r.invoices {
		if unpaidOnly && inv.IsPaid {
			continue
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (r *stubInvoiceRepo) Update(_ context.Context, inv *model.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}
