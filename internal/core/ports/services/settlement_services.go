package services

import (
	"context"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// SettlementSvc marks batches of records paid
type SettlementSvc interface {
	// ApplyPayment moves every PENDING record in recordIDs to newStatus (only PAID
	// is accepted) in one atomic step with one shared payment date.
	ApplyPayment(ctx context.Context, recordIDs []string, newStatus domain.PaymentStatus, actorID string) (*domain.SettlementResult, error)
}
