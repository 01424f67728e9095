package models

// User is a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	MobileNumber string `db:"mobile_number"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	AuditFields
}
