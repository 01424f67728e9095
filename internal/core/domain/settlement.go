package domain

import "time"

// SettlementResult describes one batch payment.
// SkippedIDs lists requested ids that were already paid or do not exist.
type SettlementResult struct {
	UpdatedCount int       `json:"updatedCount"`
	UpdatedIDs   []string  `json:"updatedIDs"`
	SkippedIDs   []string  `json:"skippedIDs"`
	PaymentDate  time.Time `json:"paymentDate"`
}
