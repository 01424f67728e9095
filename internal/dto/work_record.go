package dto

import (
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkRecordRequest defines the data needed to log completed work.
// ItemRate defaults to the item's catalog rate; Amount, when present, overrides piece * rate.
type CreateWorkRecordRequest struct {
	WorkerID  string           `json:"workerID" binding:"required"`
	SectionID string           `json:"sectionID" binding:"required"`
	ItemID    string           `json:"itemID" binding:"required"`
	Piece     *decimal.Decimal `json:"piece" binding:"required"`
	ItemRate  *decimal.Decimal `json:"itemRate"`
	Amount    *decimal.Decimal `json:"amount"`
}

// UpdateWorkRecordRequest is a partial update; nil fields are left unchanged.
type UpdateWorkRecordRequest struct {
	ID        string           `json:"id"`
	WorkerID  *string          `json:"workerID" binding:"omitempty,min=1"`
	SectionID *string          `json:"sectionID" binding:"omitempty,min=1"`
	ItemID    *string          `json:"itemID" binding:"omitempty,min=1"`
	Piece     *decimal.Decimal `json:"piece"`
	ItemRate  *decimal.Decimal `json:"itemRate"`
	Amount    *decimal.Decimal `json:"amount"`
}

// WorkRecordFilterParams are the filters shared by listing and reports.
type WorkRecordFilterParams struct {
	WorkerID      string `form:"worker"`
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=PENDING PAID"`
	FromDate      string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate        string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListWorkRecordsParams defines query parameters for the record dashboard.
// Limit nil means the configured default page size.
type ListWorkRecordsParams struct {
	WorkRecordFilterParams
	Limit *int `form:"limit" binding:"omitempty,min=1"`
	Skip  int  `form:"skip,default=0" binding:"min=0"`
}

// WorkRecordQuery is the service-level query. Limit 0 means unbounded.
type WorkRecordQuery struct {
	WorkerID      string
	PaymentStatus string
	FromDate      string // YYYY-MM-DD, inclusive
	ToDate        string // YYYY-MM-DD, inclusive of the whole day
	Limit         int
	Offset        int
}

// ToQuery converts filter params to an unbounded service query.
func (p WorkRecordFilterParams) ToQuery() WorkRecordQuery {
	return WorkRecordQuery{
		WorkerID:      p.WorkerID,
		PaymentStatus: p.PaymentStatus,
		FromDate:      p.FromDate,
		ToDate:        p.ToDate,
	}
}

// WorkRecordResponse defines the data returned for a work record.
type WorkRecordResponse struct {
	RecordID         string               `json:"recordID"`
	WorkerID         string               `json:"workerID"`
	WorkerName       string               `json:"workerName"`
	SectionID        string               `json:"sectionID"`
	SectionName      string               `json:"sectionName"`
	ItemID           string               `json:"itemID"`
	ItemName         string               `json:"itemName"`
	Piece            decimal.Decimal      `json:"piece"`
	ItemRate         decimal.Decimal      `json:"itemRate"`
	Amount           decimal.Decimal      `json:"amount"`
	AmountOverridden bool                 `json:"amountOverridden"`
	PaymentStatus    domain.PaymentStatus `json:"paymentStatus"`
	PaymentDate      *time.Time           `json:"paymentDate,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
	CreatedBy        string               `json:"createdBy"`
	LastUpdatedAt    time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy    string               `json:"lastUpdatedBy"`
}

// ListWorkRecordsResponse wraps one dashboard page.
// Total is the sum of amounts on this page.
type ListWorkRecordsResponse struct {
	Records []WorkRecordResponse `json:"records"`
	HasMore bool                 `json:"hasMore"`
	Total   decimal.Decimal      `json:"total"`
}

// ApplyPaymentsRequest settles a batch of records.
type ApplyPaymentsRequest struct {
	RecordIDs     []string `json:"recordIds" binding:"required,min=1,dive,required"`
	PaymentStatus string   `json:"payment_status" binding:"required"`
}

// ToWorkRecordResponse converts a domain.WorkRecord to WorkRecordResponse DTO
func ToWorkRecordResponse(r *domain.WorkRecord) WorkRecordResponse {
	return WorkRecordResponse{
		RecordID:         r.RecordID,
		WorkerID:         r.WorkerID,
		WorkerName:       r.WorkerName,
		SectionID:        r.SectionID,
		SectionName:      r.SectionName,
		ItemID:           r.ItemID,
		ItemName:         r.ItemName,
		Piece:            r.Piece,
		ItemRate:         r.ItemRate,
		Amount:           r.Amount,
		AmountOverridden: r.AmountOverridden,
		PaymentStatus:    r.PaymentStatus,
		PaymentDate:      r.PaymentDate,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
		LastUpdatedAt:    r.LastUpdatedAt,
		LastUpdatedBy:    r.LastUpdatedBy,
	}
}

// ToDomainWorkRecord converts a client-held record back into the domain type.
func (r WorkRecordResponse) ToDomainWorkRecord() domain.WorkRecord {
	return domain.WorkRecord{
		RecordID:         r.RecordID,
		WorkerID:         r.WorkerID,
		WorkerName:       r.WorkerName,
		SectionID:        r.SectionID,
		SectionName:      r.SectionName,
		ItemID:           r.ItemID,
		ItemName:         r.ItemName,
		Piece:            r.Piece,
		ItemRate:         r.ItemRate,
		Amount:           r.Amount,
		AmountOverridden: r.AmountOverridden,
		PaymentStatus:    r.PaymentStatus,
		PaymentDate:      r.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     r.CreatedAt,
			CreatedBy:     r.CreatedBy,
			LastUpdatedAt: r.LastUpdatedAt,
			LastUpdatedBy: r.LastUpdatedBy,
		},
	}
}

// ToListWorkRecordsResponse converts a domain.RecordPage to ListWorkRecordsResponse DTO
func ToListWorkRecordsResponse(page domain.RecordPage) ListWorkRecordsResponse {
	res := make([]WorkRecordResponse, len(page.Records))
	for i := range page.Records {
		res[i] = ToWorkRecordResponse(&page.Records[i])
	}
	return ListWorkRecordsResponse{
		Records: res,
		HasMore: page.HasMore,
		Total:   domain.SumAmount(page.Records),
	}
}
