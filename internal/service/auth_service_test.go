package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
	"github.com/Ncongwana-808/autorepair-erp/internal/auth"
	"github.com/Ncongwana-808/autorepair-erp/internal/config"
	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
)

func newTestAuthService() (AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	codec := auth.NewCodec("test-secret", time.Hour)
	cfg := &config.Config{JWTExpirationHours: 24}
	return NewAuthService(repo, codec, cfg), repo
}

func requireKind(t *testing.T, err error, kind apierror.Kind) {
	t.Helper()
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, kind, apiErr.Kind)
}

func TestRegisterReturnsTokenForImmediateLogin(t *testing.T) {
	svc, _ := newTestAuthService()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "sipho", Password: "hunter22", Role: "worker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)
	assert.Equal(t, "sipho", resp.User.Username)
	assert.Equal(t, "worker", resp.User.Role)
	assert.True(t, resp.User.IsActive)
}

func TestRegisterDuplicateUsernameIsConflict(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "sipho", Password: "hunter22", Role: "worker"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "sipho", Password: "other-pass", Role: "admin"})
	requireKind(t, err, apierror.KindConflict)
}

func TestLoginFailureIsUniform(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, dto.RegisterRequest{Username: "sipho", Password: "hunter22", Role: "worker"})
	require.NoError(t, err)

	// Deactivate a second account to cover the inactive branch
	inactive, err := svc.Register(ctx, dto.RegisterRequest{Username: "dormant", Password: "hunter22", Role: "worker"})
	require.NoError(t, err)
	id := uuid.MustParse(inactive.User.ID)
	u := repo.users[id]
	u.IsActive = false

	cases := map[string]dto.LoginRequest{
		"unknown username": {Username: "nobody", Password: "hunter22"},
		"wrong password":   {Username: "sipho", Password: "wrong"},
		"inactive account": {Username: "dormant", Password: "hunter22"},
	}
	var details []string
	for name, req := range cases {
		_, err := svc.Login(ctx, req)
		var apiErr *apierror.Error
		require.ErrorAs(t, err, &apiErr, name)
		assert.Equal(t, apierror.KindUnauthorized, apiErr.Kind, name)
		details = append(details, apiErr.Detail)
	}
	// Same message for every failure mode
	assert.Equal(t, details[0], details[1])
	assert.Equal(t, details[1], details[2])

	// The valid account still logs in
	ok, err := svc.Login(ctx, dto.LoginRequest{Username: "sipho", Password: "hunter22"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, ok.User.ID)
}

func TestUpdateUserPatchesOnlySuppliedFields(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	created, err := svc.Register(ctx, dto.RegisterRequest{Username: "sipho", Password: "hunter22", Role: "worker"})
	require.NoError(t, err)
	id := uuid.MustParse(created.User.ID)

	role := "admin"
	updated, err := svc.UpdateUser(ctx, id, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)
	assert.True(t, updated.IsActive, "untouched field keeps its value")

	inactive := false
	updated, err = svc.UpdateUser(ctx, id, dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role, "untouched field keeps its value")
	assert.False(t, updated.IsActive)
}

func TestUpdateUserEmptyPatchIsValidationError(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	created, err := svc.Register(ctx, dto.RegisterRequest{Username: "sipho", Password: "hunter22", Role: "worker"})
	require.NoError(t, err)

	_, err = svc.UpdateUser(ctx, uuid.MustParse(created.User.ID), dto.UpdateUserRequest{})
	requireKind(t, err, apierror.KindValidation)
}

func TestUpdateUserUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestAuthService()

	role := "admin"
	_, err := svc.UpdateUser(context.Background(), uuid.New(), dto.UpdateUserRequest{Role: &role})
	requireKind(t, err, apierror.KindNotFound)
}

func TestDeactivatedLoginRejectedEvenWithCorrectPassword(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()

	created, err := svc.Register(ctx, dto.RegisterRequest{Username: "sipho", Password: "hunter22", Role: "worker"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateUser(ctx, uuid.MustParse(created.User.ID), dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "sipho", Password: "hunter22"})
	requireKind(t, err, apierror.KindUnauthorized)

	// Row still present, only flagged inactive
	u, err := repo.FindByUsername(ctx, "sipho")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
}
