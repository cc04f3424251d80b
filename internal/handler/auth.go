package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/middleware"
	"github.com/Ncongwana-808/autorepair-erp/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register godoc
// @Summary      Register a new staff account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Account details"
// @Success      201 {object} dto.TokenResponse
// @Failure      409 {object} apierror.APIError
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.TokenResponse
// @Failure      401 {object} apierror.APIError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary      Return the authenticated account
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.UserResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	})
}

type UsersHandler struct {
	svc service.AuthService
}

func NewUsersHandler(svc service.AuthService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

// List godoc
// @Summary      List all staff accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.UserResponse
// @Router       /users [get]
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary      Fetch one staff account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} apierror.APIError
// @Router       /users/{id} [get]
func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary      Change an account's role or active flag
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body dto.UpdateUserRequest true "Fields to change"
// @Success      200 {object} dto.UserResponse
// @Failure      404 {object} apierror.APIError
// @Router       /users/{id} [patch]
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user, err := h.svc.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
