package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/model"
)

func newTestInvoiceService(t *testing.T) (InvoiceService, uuid.UUID, *stubInvoiceRepo) {
	t.Helper()
	jobRepo := newStubJobRepo()
	vehicleID := uuid.New()
	jobRepo.vehicles[vehicleID] = true

	job := &model.Job{VehicleID: vehicleID, Description: "brake check", Status: model.JobStatusCreated}
	require.NoError(t, jobRepo.Create(context.Background(), job))

	repo := newStubInvoiceRepo(jobRepo)
	return NewInvoiceService(repo), job.ID, repo
}

func TestCreateInvoiceStartsUnpaid(t *testing.T) {
	svc, jobID, _ := newTestInvoiceService(t)

	inv, err := svc.Create(context.Background(), dto.CreateInvoiceRequest{
		JobID: jobID, TotalAmount: decimal.RequireFromString("120.00"),
	})
	require.NoError(t, err)
	assert.False(t, inv.IsPaid)
	assert.True(t, inv.TotalAmount.Equal(decimal.RequireFromString("120.00")))
}

func TestSecondInvoiceForSameJobIsConflict(t *testing.T) {
	svc, jobID, repo := newTestInvoiceService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateInvoiceRequest{
		JobID: jobID, TotalAmount: decimal.RequireFromString("120.00"),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateInvoiceRequest{
		JobID: jobID, TotalAmount: decimal.RequireFromString("999.99"),
	})
	requireKind(t, err, apierror.KindConflict)

	// The original invoice is untouched
	stored := repo.invoices[uuid.MustParse(first.ID)]
	require.NotNil(t, stored)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("120.00")))
}

func TestCreateInvoiceUnknownJobIsReferentialFailure(t *testing.T) {
	svc, _, _ := newTestInvoiceService(t)

	_, err := svc.Create(context.Background(), dto.CreateInvoiceRequest{
		JobID: uuid.New(), TotalAmount: decimal.RequireFromString("50.00"),
	})
	requireKind(t, err, apierror.KindReferential)
}

func TestCreateInvoiceNegativeAmountRejected(t *testing.T) {
	svc, jobID, _ := newTestInvoiceService(t)

	_, err := svc.Create(context.Background(), dto.CreateInvoiceRequest{
		JobID: jobID, TotalAmount: decimal.RequireFromString("-1.00"),
	})
	requireKind(t, err, apierror.KindValidation)
}

func TestMarkInvoicePaid(t *testing.T) {
	svc, jobID, _ := newTestInvoiceService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, dto.CreateInvoiceRequest{
		JobID: jobID, TotalAmount: decimal.RequireFromString("120.00"),
	})
	require.NoError(t, err)

	paid := true
	updated, err := svc.Update(ctx, uuid.MustParse(inv.ID), dto.UpdateInvoiceRequest{IsPaid: &paid})
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("120.00")), "amount untouched")
}

func TestUpdateInvoiceEmptyPatchIsValidationError(t *testing.T) {
	svc, jobID, _ := newTestInvoiceService(t)
	ctx := context.Background()

	inv, err := svc.Create(ctx, dto.CreateInvoiceRequest{
		JobID: jobID, TotalAmount: decimal.RequireFromString("120.00"),
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.MustParse(inv.ID), dto.UpdateInvoiceRequest{})
	requireKind(t, err, apierror.KindValidation)
}

func TestGetInvoiceByJob(t *testing.T) {
	svc, jobID, _ := newTestInvoiceService(t)
	ctx := context.Background()

	_, err := svc.GetByJob(ctx, jobID)
	requireKind(t, err, apierror.KindNotFound)

	created, err := svc.Create(ctx, dto.CreateInvoiceRequest{
		JobID: jobID, TotalAmount: decimal.RequireFromString("120.00"),
	})
	require.NoError(t, err)

	found, err := svc.GetByJob(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestListInvoicesUnpaidOnly(t *testing.T) {
	jobRepo := newStubJobRepo()
	vehicleID := uuid.New()
	jobRepo.vehicles[vehicleID] = true
	ctx := context.Background()

	jobA := &model.Job{VehicleID: vehicleID, Description: "a", Status: model.JobStatusCreated}
	jobB := &model.Job{VehicleID: vehicleID, Description: "b", Status: model.JobStatusCreated}
	require.NoError(t, jobRepo.Create(ctx, jobA))
	require.NoError(t, jobRepo.Create(ctx, jobB))

	svc := NewInvoiceService(newStubInvoiceRepo(jobRepo))

	invA, err := svc.Create(ctx, dto.CreateInvoiceRequest{JobID: jobA.ID, TotalAmount: decimal.RequireFromString("10.00")})
	require.NoError(t, err)
	invB, err := svc.Create(ctx, dto.CreateInvoiceRequest{JobID: jobB.ID, TotalAmount: decimal.RequireFromString("20.00")})
	require.NoError(t, err)

	paid := true
	_, err = svc.Update(ctx, uuid.MustParse(invA.ID), dto.UpdateInvoiceRequest{IsPaid: &paid})
	require.NoError(t, err)

	unpaid, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, unpaid, 1)
	assert.Equal(t, invB.ID, unpaid[0].ID)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
