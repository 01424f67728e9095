package models

// Worker is a row of the workers table.
type Worker struct {
	WorkerID  string `db:"worker_id"`
	Name      string `db:"name"`
	Lastname  string `db:"lastname"`
	MobileNo  string `db:"mobile_no"`
	Address   string `db:"address"`
	IsDeleted bool   `db:"is_deleted"`
	AuditFields
}
