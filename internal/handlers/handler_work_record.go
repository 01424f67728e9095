package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/SscSPs/piecework_app/internal/middleware"
	"github.com/SscSPs/piecework_app/internal/utils"
	"github.com/SscSPs/piecework_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// workRecordHandler handles the ledger, the record dashboard and settlement.
type workRecordHandler struct {
	recordService     portssvc.WorkRecordSvcFacade
	settlementService portssvc.SettlementSvc
	limits            pagination.Limits
	posthog           *utils.PosthogClientWrapper
}

// registerWorkRecordRoutes registers /work_records and /apply_payments.
func registerWorkRecordRoutes(
	rg *gin.RouterGroup,
	recordService portssvc.WorkRecordSvcFacade,
	settlementService portssvc.SettlementSvc,
	limits pagination.Limits,
	posthog *utils.PosthogClientWrapper,
) {
	h := &workRecordHandler{
		recordService:     recordService,
		settlementService: settlementService,
		limits:            limits,
		posthog:           posthog,
	}

	records := rg.Group("/work_records")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.PUT("", h.updateRecord)
		records.DELETE("", h.deleteRecord)
		records.GET("/:recordID", h.getRecord)
	}
	rg.POST("/apply_payments", h.applyPayments)
}

// listRecords godoc
// @Summary List work records
// @Description Filtered, ordered by creation time then id, offset paged. hasMore is true whenever a full page was returned.
// @Tags work_records
// @Produce json
// @Param worker query string false "Worker ID"
// @Param payment_status query string false "PENDING or PAID"
// @Param fromDate query string false "First day, YYYY-MM-DD"
// @Param toDate query string false "Last day (inclusive), YYYY-MM-DD"
// @Param limit query int false "Page size" default(50)
// @Param skip query int false "Rows to skip" default(0)
// @Success 200 {object} dto.ListWorkRecordsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /work_records [get]
func (h *workRecordHandler) listRecords(c *gin.Context) {
	var params dto.ListWorkRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}
	limit, err := h.limits.ResolveLimit(params.Limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	query := params.ToQuery()
	query.Limit = limit
	query.Offset = params.Skip

	page, err := h.recordService.FindRecords(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Failed to list work records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkRecordsResponse(*page))
}

// getRecord godoc
// @Summary Get a work record
// @Tags work_records
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.WorkRecordResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /work_records/{recordID} [get]
func (h *workRecordHandler) getRecord(c *gin.Context) {
	record, err := h.recordService.GetRecord(c.Request.Context(), c.Param("recordID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve work record")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkRecordResponse(record))
}

// createRecord godoc
// @Summary Log completed work
// @Description amount = amount if given, else piece * itemRate. itemRate defaults to the item's rate.
// @Tags work_records
// @Accept json
// @Produce json
// @Param record body dto.CreateWorkRecordRequest true "Work record"
// @Success 201 {object} dto.WorkRecordResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /work_records [post]
func (h *workRecordHandler) createRecord(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "work record request", err)
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create work record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkRecordResponse(record))
}

// updateRecord godoc
// @Summary Edit a pending work record
// @Tags work_records
// @Accept json
// @Produce json
// @Param id query string false "Record ID, if not given in the body"
// @Param record body dto.UpdateWorkRecordRequest true "Fields to update"
// @Success 200 {object} dto.WorkRecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Record already paid"
// @Security BearerAuth
// @Router /work_records [put]
func (h *workRecordHandler) updateRecord(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.UpdateWorkRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "work record request", err)
		return
	}
	recordID, ok := targetID(c, req.ID)
	if !ok {
		return
	}

	record, err := h.recordService.UpdateRecord(c.Request.Context(), recordID, req, userID)
	if err != nil {
		respondError(c, err, "Failed to update work record")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a work record
// @Description Deleting an unknown id succeeds.
// @Tags work_records
// @Param id query string true "Record ID"
// @Success 204
// @Security BearerAuth
// @Router /work_records [delete]
func (h *workRecordHandler) deleteRecord(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	recordID, ok := deleteTargetID(c)
	if !ok {
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID, userID); err != nil {
		respondError(c, err, "Failed to delete work record")
		return
	}
	c.Status(http.StatusNoContent)
}

// applyPayments godoc
// @Summary Mark records as paid
// @Description Moves every PENDING record among recordIds to PAID with one shared payment date. Already paid ids are skipped.
// @Tags work_records
// @Accept json
// @Produce json
// @Param payment body dto.ApplyPaymentsRequest true "Records to settle"
// @Success 200 {object} domain.SettlementResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /apply_payments [post]
func (h *workRecordHandler) applyPayments(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	var req dto.ApplyPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "payment request", err)
		return
	}

	result, err := h.settlementService.ApplyPayment(c.Request.Context(), req.RecordIDs, domain.PaymentStatus(req.PaymentStatus), userID)
	if err != nil {
		respondError(c, err, "Failed to apply payment")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payment batch settled",
		slog.Int("updated", result.UpdatedCount),
		slog.Int("skipped", len(result.SkippedIDs)))
	middleware.PosthogEvent(c, h.posthog, "payment_applied", map[string]any{
		"updated_count": result.UpdatedCount,
		"skipped_count": len(result.SkippedIDs),
	})
	c.JSON(http.StatusOK, result)
}
