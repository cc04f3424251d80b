package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ncongwana-808/autorepair-erp/internal/dto"
	"github.com/Ncongwana-808/autorepair-erp/internal/middleware"
	"github.com/Ncongwana-808/autorepair-erp/internal/service"
)

type JobsHandler struct {
	svc service.JobService
}

func NewJobsHandler(svc service.JobService) *JobsHandler {
	return &JobsHandler{svc: svc}
}

// Create godoc
// @Summary      Open a job card for a vehicle
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateJobRequest true "Job details"
// @Success      201 {object} dto.JobResponse
// @Failure      400 {object} apierror.APIError
// @Router       /jobs [post]
func (h *JobsHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
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
// @Summary      List jobs, optionally filtered by status
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Filter by status"
// @Success      200 {array} dto.JobResponse
// @Router       /jobs [get]
func (h *JobsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Fetch one job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200 {object} dto.JobResponse
// @Failure      404 {object} apierror.APIError
// @Router       /jobs/{id} [get]
func (h *JobsHandler) Get(c *gin.Context) {
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

// MyJobs godoc
// @Summary      List jobs assigned to the authenticated worker
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.JobResponse
// @Router       /my-jobs [get]
func (h *JobsHandler) MyJobs(c *gin.Context) {
	user := middleware.CurrentUser(c)
	resp, err := h.svc.ListByWorker(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Patch a job's worker, description or status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Param        request body dto.UpdateJobRequest true "Fields to change"
// @Success      200 {object} dto.JobResponse
// @Failure      404 {object} apierror.APIError
// @Router       /jobs/{id} [patch]
func (h *JobsHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
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

// AddNote godoc
// @Summary      Append a work note to a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateJobNoteRequest true "Note"
// @Success      201 {object} dto.JobNoteResponse
// @Failure      400 {object} apierror.APIError
// @Router       /job-notes [post]
func (h *JobsHandler) AddNote(c *gin.Context) {
	var req dto.CreateJobNoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user := middleware.CurrentUser(c)
	resp, err := h.svc.AddNote(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListNotes godoc
// @Summary      List a job's notes oldest first
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Job ID"
// @Success      200 {array} dto.JobNoteResponse
// @Router       /jobs/{id}/notes [get]
func (h *JobsHandler) ListNotes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListNotes(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
