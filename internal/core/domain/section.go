package domain

// OwnerRef is the denormalized owner of a section, captured from the acting user.
type OwnerRef struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
}

// Section is a work category grouping Items. Sections are only ever soft-deleted
// because historical items and work records reference them.
type Section struct {
	SectionID string   `json:"sectionID"` // Primary Key (UUID)
	Name      string   `json:"name"`
	Owner     OwnerRef `json:"owner"`
	IsDeleted bool     `json:"isDeleted"`
	AuditFields
}
