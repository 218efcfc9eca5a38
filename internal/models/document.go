package models

// Document represents a row in the documents table.
type Document struct {
	DocumentID string `db:"document_id"`
	Title      string `db:"title"`
	Content    string `db:"content"`
	Price      int64  `db:"price"`
	Status     string `db:"status"` // pending/approved/rejected
	AuthorID   string `db:"author_id"`
	ReadCount  int64  `db:"read_count"`
	AuditFields
}
