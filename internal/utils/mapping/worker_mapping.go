package mapping

import (
	"github.com/SscSPs/piecework_app/internal/core/domain"
	"github.com/SscSPs/piecework_app/internal/models"
)

// ToModelWorker converts a domain Worker to a model Worker
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:    d.WorkerID,
		Name:        d.Name,
		Lastname:    d.Lastname,
		MobileNo:    d.MobileNo,
		Address:     d.Address,
		IsDeleted:   d.IsDeleted,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorker converts a model Worker to a domain Worker
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:    m.WorkerID,
		Name:        m.Name,
		Lastname:    m.Lastname,
		MobileNo:    m.MobileNo,
		Address:     m.Address,
		IsDeleted:   m.IsDeleted,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkerSlice converts a slice of model Workers to a slice of domain Workers
func ToDomainWorkerSlice(ms []models.Worker) []domain.Worker {
	ds := make([]domain.Worker, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorker(m)
	}
	return ds
}
