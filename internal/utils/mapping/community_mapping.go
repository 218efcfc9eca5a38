package mapping

import (
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	"github.com/docmarket/docmarket_backend/internal/models"
)

// ToModelComment converts a domain Comment to a model Comment
func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment{
		CommentID:  d.CommentID,
		DocumentID: d.DocumentID,
		UserID:     d.UserID,
		Content:    d.Content,
		Type:       string(d.Type),
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainComment converts a model Comment to a domain Comment
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID:  m.CommentID,
		DocumentID: m.DocumentID,
		UserID:     m.UserID,
		Content:    m.Content,
		Type:       domain.CommentType(m.Type),
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainCommentSlice converts a slice of model Comments to domain Comments
func ToDomainCommentSlice(ms []models.Comment) []domain.Comment {
	ds := make([]domain.Comment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainComment(m)
	}
	return ds
}

// ToModelDemand converts a domain Demand to a model Demand
func ToModelDemand(d domain.Demand) models.Demand {
	return models.Demand{
		DemandID:       d.DemandID,
		Title:          d.Title,
		Description:    d.Description,
		Type:           string(d.Type),
		PointsRequired: d.PointsRequired,
		Status:         string(d.Status),
		ContactInfo:    d.ContactInfo,
		UserID:         d.UserID,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainDemand converts a model Demand to a domain Demand
func ToDomainDemand(m models.Demand) domain.Demand {
	return domain.Demand{
		DemandID:       m.DemandID,
		Title:          m.Title,
		Description:    m.Description,
		Type:           domain.DemandType(m.Type),
		PointsRequired: m.PointsRequired,
		Status:         domain.DemandStatus(m.Status),
		ContactInfo:    m.ContactInfo,
		UserID:         m.UserID,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainDemandSlice converts a slice of model Demands to domain Demands
func ToDomainDemandSlice(ms []models.Demand) []domain.Demand {
	ds := make([]domain.Demand, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDemand(m)
	}
	return ds
}

// ToModelCommunityPost converts a domain CommunityPost to a model CommunityPost
func ToModelCommunityPost(d domain.CommunityPost) models.CommunityPost {
	return models.CommunityPost{
		PostID:    d.PostID,
		UserID:    d.UserID,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainCommunityPost converts a model CommunityPost to a domain CommunityPost
func ToDomainCommunityPost(m models.CommunityPost) domain.CommunityPost {
	return domain.CommunityPost{
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainCommunityPostSlice converts a slice of model CommunityPosts to domain CommunityPosts
func ToDomainCommunityPostSlice(ms []models.CommunityPost) []domain.CommunityPost {
	ds := make([]domain.CommunityPost, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommunityPost(m)
	}
	return ds
}
