package dto

import (
	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Report output formats.
const (
	ReportFormatJSON = "json"
	ReportFormatCSV  = "csv"
	ReportFormatXLSX = "xlsx"
)

// ReportParams defines query parameters for a filtered report.
type ReportParams struct {
	WorkRecordFilterParams
	Format string `form:"format,default=json" binding:"oneof=json csv xlsx"`
}

// ReportFormatParams selects the output of a selected-records report.
type ReportFormatParams struct {
	Format string `form:"format,default=json" binding:"oneof=json csv xlsx"`
}

// SelectedReportRequest carries the records the client already holds and the ids to export.
// Omitting recordIds exports every supplied record; an empty list exports none.
type SelectedReportRequest struct {
	Records   []WorkRecordResponse `json:"records" binding:"required,dive"`
	RecordIDs []string             `json:"recordIds"`
}

// ReportWorkerResponse is the worker header of a per-worker report.
type ReportWorkerResponse struct {
	WorkerID string `json:"workerID"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	MobileNo string `json:"mobileNo"`
	Address  string `json:"address"`
}

// ReportResponse is the JSON rendering of a report.
type ReportResponse struct {
	Worker   *ReportWorkerResponse `json:"worker,omitempty"`
	FromDate string                `json:"fromDate,omitempty"`
	ToDate   string                `json:"toDate,omitempty"`
	Rows     []domain.ReportRow    `json:"rows"`
	TotalRow domain.ReportTotalRow `json:"totalRow"`
	Total    decimal.Decimal       `json:"total"`
}

// ToReportResponse converts a domain.Report to ReportResponse DTO
func ToReportResponse(r domain.Report) ReportResponse {
	resp := ReportResponse{
		FromDate: r.FromDate,
		ToDate:   r.ToDate,
		Rows:     r.Rows,
		TotalRow: r.TotalRow(),
		Total:    r.Total,
	}
	if r.Worker != nil {
		resp.Worker = &ReportWorkerResponse{
			WorkerID: r.Worker.WorkerID,
			Name:     r.Worker.Name,
			Lastname: r.Worker.Lastname,
			MobileNo: r.Worker.MobileNo,
			Address:  r.Worker.Address,
		}
	}
	return resp
}
