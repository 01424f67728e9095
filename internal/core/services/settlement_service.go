package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/piecework_app/internal/core/domain"
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
)

type settlementService struct {
	BaseService
	recordRepo portsrepo.WorkRecordSettler
}

// NewSettlementService creates the batch payment service.
func NewSettlementService(recordRepo portsrepo.WorkRecordSettler, options ...ServiceOption) *settlementService {
	return &settlementService{
		BaseService: newBaseService(options...),
		recordRepo:  recordRepo,
	}
}

func (s *settlementService) ApplyPayment(ctx context.Context, recordIDs []string, newStatus domain.PaymentStatus, actorID string) (*domain.SettlementResult, error) {
	switch newStatus {
	case domain.PaymentPaid:
	case domain.PaymentPending:
		return nil, validationErrorf("paid records cannot be moved back to PENDING")
	default:
		return nil, validationErrorf("unknown payment status %q", newStatus)
	}

	ids := dedupeIDs(recordIDs)
	if len(ids) == 0 {
		return nil, validationErrorf("at least one record id is required")
	}

	paidAt := s.Now()
	updated, err := s.recordRepo.MarkRecordsPaid(ctx, ids, paidAt, actorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to apply payment", slog.Int("requested", len(ids)))
		return nil, err
	}

	updatedSet := make(map[string]struct{}, len(updated))
	for _, id := range updated {
		updatedSet[id] = struct{}{}
	}
	skipped := make([]string, 0, len(ids)-len(updated))
	for _, id := range ids {
		if _, ok := updatedSet[id]; !ok {
			skipped = append(skipped, id)
		}
	}

	s.LogInfo(ctx, "Payment applied",
		slog.Int("requested", len(ids)),
		slog.Int("updated", len(updated)),
		slog.Int("skipped", len(skipped)),
		slog.Time("payment_date", paidAt))

	return &domain.SettlementResult{
		UpdatedCount: len(updated),
		UpdatedIDs:   updated,
		SkippedIDs:   skipped,
		PaymentDate:  paidAt,
	}, nil
}

// dedupeIDs drops empty and repeated ids, keeping first-seen order.
func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
