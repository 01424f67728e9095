package services

import (
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/dto"
	"github.com/SscSPs/piecework_app/internal/utils/daterange"
)

// recordFilterFromQuery validates the query filters and resolves calendar days in loc.
func recordFilterFromQuery(query dto.WorkRecordQuery, loc *time.Location) (domain.RecordFilter, error) {
	filter := domain.RecordFilter{WorkerID: query.WorkerID}

	if query.PaymentStatus != "" {
		status := domain.PaymentStatus(query.PaymentStatus)
		if !status.IsValid() {
			return filter, validationErrorf("unknown payment status %q", query.PaymentStatus)
		}
		filter.PaymentStatus = status
	}

	from, before, err := daterange.Bounds(query.FromDate, query.ToDate, loc)
	if err != nil {
		return filter, validationErrorf("%s", err.Error())
	}
	filter.CreatedFrom = from
	filter.CreatedBefore = before
	return filter, nil
}
