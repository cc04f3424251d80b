package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/service"
)

type CustomersHandler struct {
	svc service.CustomerService
}

func NewCustomersHandler(svc service.CustomerService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// Create godoc
// @Summary      Register a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateCustomerRequest true "Customer details"
// @Success      201 {object} dto.CustomerResponse
// @Router       /customers [post]
func (h *CustomersHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        active_only query bool false "Only active customers"
// @Success      200 {array} dto.CustomerResponse
// @Router       /customers [get]
func (h *CustomersHandler) List(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"
	resp, err := h.svc.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one customer
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Success      200 {object} dto.CustomerResponse
// @Failure      404 {object} apierror.APIError
// @Router       /customers/{id} [get]
func (h *CustomersHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Patch customer contact details or deactivate the record
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Param        request body dto.UpdateCustomerRequest true "Fields to change"
// @Success      200 {object} dto.CustomerResponse
// @Failure      404 {object} apierror.APIError
// @Router       /customers/{id} [patch]
func (h *CustomersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
