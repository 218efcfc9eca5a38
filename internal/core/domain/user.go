package domain

// WelcomePoints is the point grant credited to every newly registered user.
const WelcomePoints int64 = 100

// User represents a registered marketplace user in the domain.
// Points is the user's spendable balance; every change to it is mirrored by
// an append-only Transaction entry.
type User struct {
	UserID   string `json:"userID"` // Primary Key (UUID)
	Username string `json:"username"`
	// Password is stored as an opaque string and compared verbatim.
	// Hashing is deliberately out of scope for this service.
	Password string `json:"-"`
	Points   int64  `json:"points"`
	AuditFields
}
