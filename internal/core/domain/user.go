package domain

// UserRole is the role of a back-office user.
type UserRole string

const (
	RoleManager UserRole = "manager"
	RoleAdmin   UserRole = "admin"
)

// User is a manager or admin who operates the ledger. Workers are not users.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	MobileNumber string   `json:"mobileNumber,omitempty"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}

// Owner returns the reference stamped on sections this user creates.
func (u User) Owner() OwnerRef {
	return OwnerRef{UserID: u.UserID, Name: u.Name}
}
