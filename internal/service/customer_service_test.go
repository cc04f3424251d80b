package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
)

func strPtr(s string) *string { return &s }

func TestCreateCustomerStartsActive(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	c, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		FullName: "Naledi Dlamini",
		Phone:    strPtr("+27115550101"),
	})
	require.NoError(t, err)
	assert.True(t, c.IsActive)
	assert.Equal(t, "Naledi Dlamini", c.FullName)
	require.NotNil(t, c.Phone)
	assert.Nil(t, c.Email)
}

func TestUpdateCustomerPatchesOnlySuppliedFields(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateCustomerRequest{
		FullName: "Naledi Dlamini",
		Phone:    strPtr("+27115550101"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	updated, err := svc.Update(ctx, id, dto.UpdateCustomerRequest{Email: strPtr("naledi@example.com")})
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "naledi@example.com", *updated.Email)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+27115550101", *updated.Phone, "untouched field keeps its value")
}

func TestDeactivateCustomerHidesFromActiveList(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	ctx := context.Background()

	keep, err := svc.Create(ctx, dto.CreateCustomerRequest{FullName: "Anele M"})
	require.NoError(t, err)
	gone, err := svc.Create(ctx, dto.CreateCustomerRequest{FullName: "Zodwa K"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, uuid.MustParse(gone.ID), dto.UpdateCustomerRequest{IsActive: &inactive})
	require.NoError(t, err)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)

	// Full list still returns the deactivated row
	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Direct fetch still works after deactivation
	fetched, err := svc.Get(ctx, uuid.MustParse(gone.ID))
	require.NoError(t, err)
	assert.False(t, fetched.IsActive)
}

func TestUpdateCustomerEmptyPatchIsValidationError(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateCustomerRequest{FullName: "Anele M"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, uuid.MustParse(created.ID), dto.UpdateCustomerRequest{})
	requireKind(t, err, apierror.KindValidation)
}

func TestGetUnknownCustomerIsNotFound(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	requireKind(t, err, apierror.KindNotFound)
}
