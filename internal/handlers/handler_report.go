package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/SscSPs/piecework_app/internal/export"
	"github.com/SscSPs/piecework_app/internal/middleware"
	"github.com/SscSPs/piecework_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// reportHandler renders reports as JSON, CSV or XLSX.
type reportHandler struct {
	reportingService portssvc.ReportingSvc
	exportOptions    export.Options
	posthog          *utils.PosthogClientWrapper
}

// registerReportRoutes registers the report routes.
func registerReportRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, opts export.Options, posthog *utils.PosthogClientWrapper) {
	h := &reportHandler{
		reportingService: reportingService,
		exportOptions:    opts,
		posthog:          posthog,
	}

	reports := rg.Group("/reports")
	{
		reports.GET("", h.generateReport)
		reports.POST("/selected", h.selectedReport)
	}
}

// generateReport godoc
// @Summary Report over filtered work records
// @Description Every matching record plus a Total row. With worker set, the worker's details head the report.
// @Tags reports
// @Produce json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param worker query string false "Worker ID"
// @Param payment_status query string false "PENDING or PAID"
// @Param fromDate query string false "First day, YYYY-MM-DD"
// @Param toDate query string false "Last day (inclusive), YYYY-MM-DD"
// @Param format query string false "json, csv or xlsx" default(json)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) generateReport(c *gin.Context) {
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}

	report, err := h.reportingService.GenerateReport(c.Request.Context(), params.ToQuery())
	if err != nil {
		respondError(c, err, "Failed to generate report")
		return
	}
	h.render(c, *report, params.Format)
}

// selectedReport godoc
// @Summary Report over client-held records
// @Description Builds the report from the supplied records only, keeping those in recordIds (all when recordIds is omitted, none when it is empty). No store query is made.
// @Tags reports
// @Accept json
// @Produce json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "json, csv or xlsx" default(json)
// @Param selection body dto.SelectedReportRequest true "Records and selected ids"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/selected [post]
func (h *reportHandler) selectedReport(c *gin.Context) {
	var params dto.ReportFormatParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, "query parameters", err)
		return
	}
	var req dto.SelectedReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "selection", err)
		return
	}

	records := make([]domain.WorkRecord, len(req.Records))
	for i, r := range req.Records {
		records[i] = r.ToDomainWorkRecord()
	}

	report, err := h.reportingService.BuildSelectedReport(c.Request.Context(), records, req.RecordIDs)
	if err != nil {
		respondError(c, err, "Failed to build report")
		return
	}
	h.render(c, *report, params.Format)
}

func (h *reportHandler) render(c *gin.Context, report domain.Report, format string) {
	var (
		buf         bytes.Buffer
		contentType string
		err         error
	)
	switch format {
	case dto.ReportFormatCSV:
		contentType = export.ContentTypeCSV
		err = export.WriteCSV(&buf, report, h.exportOptions)
	case dto.ReportFormatXLSX:
		contentType = export.ContentTypeXLSX
		err = export.WriteXLSX(&buf, report, h.exportOptions)
	default:
		c.JSON(http.StatusOK, dto.ToReportResponse(report))
		return
	}
	if err != nil {
		respondError(c, err, "Failed to write report")
		return
	}

	middleware.PosthogEvent(c, h.posthog, "report_exported", map[string]any{
		"format": format,
		"rows":   len(report.Rows),
	})
	fileName := export.FileName(report, format, time.Now())
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
