package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// workerHandler handles HTTP requests related to workers.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

// registerWorkerRoutes registers routes related to workers.
func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := &workerHandler{workerService: workerService}

	workers := rg.Group("/workers")
	{
		workers.GET("", h.listWorkers)
		workers.POST("", h.createWorker)
		workers.GET("/:workerID", h.getWorker)
		workers.PUT("/:workerID", h.updateWorker)
		workers.DELETE("/:workerID", h.deleteWorker)
	}
}

// listWorkers godoc
// @Summary List workers
// @Tags workers
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} dto.ListWorkersResponse
// @Security BearerAuth
// @Router /workers [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	var params dto.ListWorkersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}
	workers, err := h.workerService.ListWorkers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list workers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkerResponse(workers))
}

// createWorker godoc
// @Summary Register a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.CreateWorkerRequest true "Worker details"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers [post]
func (h *workerHandler) createWorker(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "worker request", err)
		return
	}

	worker, err := h.workerService.CreateWorker(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create worker")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// getWorker godoc
// @Summary Get a worker
// @Tags workers
// @Produce json
// @Param workerID path string true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{workerID} [get]
func (h *workerHandler) getWorker(c *gin.Context) {
	worker, err := h.workerService.GetWorkerByID(c.Request.Context(), c.Param("workerID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve worker")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param workerID path string true "Worker ID"
// @Param worker body dto.UpdateWorkerRequest true "Fields to update"
// @Success 200 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{workerID} [put]
func (h *workerHandler) updateWorker(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "worker request", err)
		return
	}

	worker, err := h.workerService.UpdateWorker(c.Request.Context(), c.Param("workerID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update worker")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// deleteWorker godoc
// @Summary Delete a worker
// @Description Soft delete; existing work records keep the worker's name.
// @Tags workers
// @Param workerID path string true "Worker ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{workerID} [delete]
func (h *workerHandler) deleteWorker(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	if err := h.workerService.DeleteWorker(c.Request.Context(), c.Param("workerID"), userID); err != nil {
		respondError(c, err, "Failed to delete worker")
		return
	}
	c.Status(http.StatusNoContent)
}
