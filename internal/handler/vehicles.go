package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/service"
)

type VehiclesHandler struct {
	svc service.VehicleService
}

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

// Create godoc
// @Summary      Register a vehicle for a customer
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateVehicleRequest true "Vehicle details"
// @Success      201 {object} dto.VehicleResponse
// @Failure      400 {object} apierror.APIError
// @Router       /vehicles [post]
func (h *VehiclesHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
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
// @Summary      List all vehicles
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.VehicleResponse
// @Router       /vehicles [get]
func (h *VehiclesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one vehicle
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Vehicle ID"
// @Success      200 {object} dto.VehicleResponse
// @Failure      404 {object} apierror.APIError
// @Router       /vehicles/{id} [get]
func (h *VehiclesHandler) Get(c *gin.Context) {
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

// ListByCustomer godoc
// @Summary      List a customer's vehicles
// @Tags         vehicles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Customer ID"
// @Success      200 {array} dto.VehicleResponse
// @Router       /customers/{id}/vehicles [get]
func (h *VehiclesHandler) ListByCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
