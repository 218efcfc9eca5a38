package models

// User represents a row in the users table.
// Password is opaque; hashing is out of scope for this service.
type User struct {
	UserID   string `db:"user_id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Points   int64  `db:"points"`
	AuditFields
}
