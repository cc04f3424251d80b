package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/service"
)

type InvoicesHandler struct {
	svc service.InvoiceService
}

func NewInvoicesHandler(svc service.InvoiceService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// Create godoc
// @Summary      Issue an invoice for a job
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateInvoiceRequest true "Invoice details"
// @Success      201 {object} dto.InvoiceResponse
// @Failure      409 {object} apierror.APIError
// @Router       /invoices [post]
func (h *InvoicesHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
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
// @Summary      List invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        unpaid_only query bool false "Only unpaid invoices"
// @Success      200 {array} dto.InvoiceResponse
// @Router       /invoices [get]
func (h *InvoicesHandler) List(c *gin.Context) {
	unpaidOnly := c.Query("unpaid_only") == "true"
	resp, err := h.svc.List(c.Request.Context(), unpaidOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByJob godoc
// @Summary      Fetch the invoice issued for a job
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /jobs/{id}/invoice [get]
func (h *InvoicesHandler) GetByJob(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByJob(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Correct an invoice amount or mark it paid
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Param        request body dto.UpdateInvoiceRequest true "Fields to change"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /invoices/{id} [patch]
func (h *InvoicesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
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
