package domain

import "strings"

// Worker performs piece-rate work. Deletion is soft; records keep the worker name snapshot.
type Worker struct {
	WorkerID  string `json:"workerID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	MobileNo  string `json:"mobileNo"`
	Address   string `json:"address"`
	IsDeleted bool   `json:"isDeleted"`
	AuditFields
}

// FullName joins name and lastname for report headers.
func (w Worker) FullName() string {
	return strings.TrimSpace(w.Name + " " + w.Lastname)
}
