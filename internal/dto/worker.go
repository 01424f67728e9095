package dto

import (
	"time"

	"github.com/SscSPs/piecework_app/internal/core/domain"
)

// CreateWorkerRequest defines the data needed to register a worker.
type CreateWorkerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Lastname string `json:"lastname" binding:"max=100"`
	MobileNo string `json:"mobileNo" binding:"omitempty,max=20"`
	Address  string `json:"address" binding:"max=500"`
}

// UpdateWorkerRequest defines the data allowed for updating a worker.
type UpdateWorkerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Lastname *string `json:"lastname" binding:"omitempty,max=100"`
	MobileNo *string `json:"mobileNo" binding:"omitempty,max=20"`
	Address  *string `json:"address" binding:"omitempty,max=500"`
}

// ListWorkersParams defines query parameters for listing workers.
type ListWorkersParams struct {
	Limit  int `form:"limit,default=50" binding:"min=0,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// WorkerResponse defines the data returned for a worker.
type WorkerResponse struct {
	WorkerID      string    `json:"workerID"`
	Name          string    `json:"name"`
	Lastname      string    `json:"lastname"`
	MobileNo      string    `json:"mobileNo"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListWorkersResponse wraps the list of workers.
type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
}

// ToWorkerResponse converts a domain.Worker to WorkerResponse DTO
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:      w.WorkerID,
		Name:          w.Name,
		Lastname:      w.Lastname,
		MobileNo:      w.MobileNo,
		Address:       w.Address,
		CreatedAt:     w.CreatedAt,
		CreatedBy:     w.CreatedBy,
		LastUpdatedAt: w.LastUpdatedAt,
		LastUpdatedBy: w.LastUpdatedBy,
	}
}

// ToListWorkerResponse converts a slice of domain.Worker to ListWorkersResponse DTO
func ToListWorkerResponse(workers []domain.Worker) ListWorkersResponse {
	res := make([]WorkerResponse, len(workers))
	for i := range workers {
		res[i] = ToWorkerResponse(&workers[i])
	}
	return ListWorkersResponse{Workers: res}
}
