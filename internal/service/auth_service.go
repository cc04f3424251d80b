package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ncongwana-808/autorepair-erp/internal/apierror"
	"github.com/Ncongwana-808/autorepair-erp/internal/auth"
	"github.com/Ncongwana-808/autorepair-erp/internal/config"
	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/model"
	"github.com/Ncongwana-808/autorepair-erp/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type authService struct {
	repo  repository.UserRepository
	codec *auth.Codec
	cfg   *config.Config
}

func NewAuthService(repo repository.UserRepository, codec *auth.Codec, cfg *config.Config) AuthService {
	return &authService{repo: repo, codec: codec, cfg: cfg}
}

func mapUser(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// authenticate is the single comparison point between a credential attempt
// and stored state. Unknown username, deactivated account and wrong password
// all collapse into the same Unauthorized result so nothing about account
// existence or state leaks to the caller.
func (s *authService) authenticate(ctx context.Context, username, password string) (*model.User, error) {
	invalid := apierror.Unauthorized("incorrect username or password")

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, invalid
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, invalid
	}
	return user, nil
}

func (s *authService) tokenResponse(user *model.User) (*dto.TokenResponse, error) {
	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        mapUser(user),
	}, nil
}

// Register creates a user and returns a token for immediate login.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("username already registered")
		}
		return nil, err
	}
	return s.tokenResponse(user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return s.tokenResponse(user)
}

func (s *authService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, len(users))
	for i := range users {
		resp[i] = mapUser(&users[i])
	}
	return resp, nil
}

func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("user not found")
		}
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}

// UpdateUser applies an admin patch: role and/or active flag. Deactivation
// (is_active=false) is the only deletion mechanism for users.
func (s *authService) UpdateUser(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if req.Role == nil && req.IsActive == nil {
		return nil, apierror.Validation("nothing to update")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("user not found")
		}
		return nil, err
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := mapUser(user)
	return &resp, nil
}
