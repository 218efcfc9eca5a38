package dto

import (
	"time"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
)

// SubmitDocumentRequest carries a new document submission. Price arrives as
// the raw form string; non-numeric input is coerced to the default price
// rather than rejected.
type SubmitDocumentRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	Price   string `json:"price"`
}

// DocumentResponse is the API representation of a document listing. Content
// is omitted; it is only returned through DocumentDetailResponse once the
// caller is entitled to it.
type DocumentResponse struct {
	DocumentID string                `json:"documentID"`
	Title      string                `json:"title"`
	Price      int64                 `json:"price"`
	Status     domain.DocumentStatus `json:"status"`
	AuthorID   string                `json:"authorID"`
	ReadCount  int64                 `json:"readCount"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// DocumentDetailResponse adds the gated content and engagement counts.
// Content is nil until the requesting user owns the document or authored it.
type DocumentDetailResponse struct {
	DocumentResponse
	Content   *string               `json:"content,omitempty"`
	Owned     bool                  `json:"owned"`
	Reactions domain.ReactionCounts `json:"reactions"`
}

// ToDocumentResponse converts a domain Document to a DocumentResponse
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID: d.DocumentID,
		Title:      d.Title,
		Price:      d.Price,
		Status:     d.Status,
		AuthorID:   d.AuthorID,
		ReadCount:  d.ReadCount,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDocumentResponses converts a slice of domain Documents
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i := range docs {
		out[i] = ToDocumentResponse(&docs[i])
	}
	return out
}
