package domain

// DocumentStatus indicates the moderation state of a document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// MinDocumentPrice is the lowest price (in points) a document may be listed at.
const MinDocumentPrice int64 = 100

// DefaultDocumentPrice is applied when a submitted price cannot be parsed.
const DefaultDocumentPrice int64 = 100

// Document represents a technical document listed on the marketplace.
// Price is fixed at creation; settlement never mutates it. ReadCount
// increments once per distinct successful purchase and drives milestone
// bonus eligibility.
type Document struct {
	DocumentID string         `json:"documentID"` // Primary Key (UUID)
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Price      int64          `json:"price"`
	Status     DocumentStatus `json:"status"`
	AuthorID   string         `json:"authorID"` // FK -> User.userID
	ReadCount  int64          `json:"readCount"`
	AuditFields
}

// IsPurchasable reports whether the document can currently be bought.
func (d Document) IsPurchasable() bool {
	return d.Status == DocumentApproved
}
