package services_test

import (
	"context"
	"testing"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/core/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CommentServiceTestSuite struct {
	suite.Suite
	mockCommentRepo *MockCommentRepository
	mockDocRepo     *MockDocumentRepository
	service         portssvc.CommentSvcFacade

	documentID string
	userID     string
}

func (s *CommentServiceTestSuite) SetupTest() {
	s.mockCommentRepo = new(MockCommentRepository)
	s.mockDocRepo = new(MockDocumentRepository)
	s.service = services.NewCommentService(s.mockCommentRepo, s.mockDocRepo)
	s.documentID = uuid.NewString()
	s.userID = uuid.NewString()
}

func (s *CommentServiceTestSuite) document() *domain.Document {
	return &domain.Document{DocumentID: s.documentID, Status: domain.DocumentApproved}
}

func (s *CommentServiceTestSuite) TestAddComment_PlainComment() {
	ctx := context.Background()
	req := dto.AddCommentRequest{Content: "very useful"}

	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(s.document(), nil).Once()
	s.mockCommentRepo.On("SaveComment", ctx, mock.AnythingOfType("domain.Comment")).Return(nil).Once()

	comment, err := s.service.AddComment(ctx, s.documentID, req, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.CommentPlain, comment.Type)
	s.Equal("very useful", comment.Content)
	// Plain comments are not deduplicated
	s.mockCommentRepo.AssertNotCalled(s.T(), "HasReaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CommentServiceTestSuite) TestAddComment_PlainCommentRequiresContent() {
	ctx := context.Background()
	req := dto.AddCommentRequest{Content: "   "}

	comment, err := s.service.AddComment(ctx, s.documentID, req, s.userID)

	s.Require().Error(err)
	s.Nil(comment)
	s.ErrorIs(err, services.ErrCommentContentMissing)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CommentServiceTestSuite) TestAddComment_Like() {
	ctx := context.Background()
	req := dto.AddCommentRequest{Type: domain.CommentLike}

	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(s.document(), nil).Once()
	s.mockCommentRepo.On("HasReaction", ctx, s.userID, s.documentID, domain.CommentLike).Return(false, nil).Once()
	s.mockCommentRepo.On("SaveComment", ctx, mock.AnythingOfType("domain.Comment")).Return(nil).Once()

	comment, err := s.service.AddComment(ctx, s.documentID, req, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.CommentLike, comment.Type)
}

func (s *CommentServiceTestSuite) TestAddComment_DuplicateLikeRejected() {
	ctx := context.Background()
	req := dto.AddCommentRequest{Type: domain.CommentLike}

	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(s.document(), nil).Once()
	s.mockCommentRepo.On("HasReaction", ctx, s.userID, s.documentID, domain.CommentLike).Return(true, nil).Once()

	comment, err := s.service.AddComment(ctx, s.documentID, req, s.userID)

	s.Require().Error(err)
	s.Nil(comment)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockCommentRepo.AssertNotCalled(s.T(), "SaveComment", mock.Anything, mock.Anything)
}

func (s *CommentServiceTestSuite) TestListComments() {
	ctx := context.Background()
	comments := []domain.Comment{{CommentID: uuid.NewString(), DocumentID: s.documentID, Content: "nice"}}
	s.mockCommentRepo.On("ListCommentsByDocument", ctx, s.documentID).Return(comments, nil).Once()

	got, err := s.service.ListComments(ctx, s.documentID)

	s.Require().NoError(err)
	s.Len(got, 1)
}

func TestCommentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommentServiceTestSuite))
}
