package models

// Section is a row of the sections table.
type Section struct {
	SectionID     string `db:"section_id"`
	Name          string `db:"name"`
	OwnerUserID   string `db:"owner_user_id"`
	OwnerUserName string `db:"owner_user_name"` // Snapshot of the owner's display name
	IsDeleted     bool   `db:"is_deleted"`
	AuditFields
}
