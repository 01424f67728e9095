package mapping

import (
	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/models"
)

// ToModelWorkRecord converts a domain WorkRecord to a model WorkRecord
func ToModelWorkRecord(d domain.WorkRecord) models.WorkRecord {
	return models.WorkRecord{
		RecordID:         d.RecordID,
		WorkerID:         d.WorkerID,
		WorkerName:       d.WorkerName,
		SectionID:        d.SectionID,
		SectionName:      d.SectionName,
		ItemID:           d.ItemID,
		ItemName:         d.ItemName,
		Piece:            d.Piece,
		ItemRate:         d.ItemRate,
		Amount:           d.Amount,
		AmountOverridden: d.AmountOverridden,
		PaymentStatus:    models.PaymentStatus(d.PaymentStatus),
		PaymentDate:      d.PaymentDate,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkRecord converts a model WorkRecord to a domain WorkRecord
func ToDomainWorkRecord(m models.WorkRecord) domain.WorkRecord {
	return domain.WorkRecord{
		RecordID:         m.RecordID,
		WorkerID:         m.WorkerID,
		WorkerName:       m.WorkerName,
		SectionID:        m.SectionID,
		SectionName:      m.SectionName,
		ItemID:           m.ItemID,
		ItemName:         m.ItemName,
		Piece:            m.Piece,
		ItemRate:         m.ItemRate,
		Amount:           m.Amount,
		AmountOverridden: m.AmountOverridden,
		PaymentStatus:    domain.PaymentStatus(m.PaymentStatus),
		PaymentDate:      m.PaymentDate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkRecordSlice converts a slice of model WorkRecords to a slice of domain WorkRecords
func ToDomainWorkRecordSlice(ms []models.WorkRecord) []domain.WorkRecord {
	ds := make([]domain.WorkRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkRecord(m)
	}
	return ds
}
