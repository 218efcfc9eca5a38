package services_test

import (
	"context"
	"testing"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/core/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CommunityServiceTestSuite struct {
	suite.Suite
	mockPostRepo *MockPostRepository
	mockUserRepo *MockUserRepository
	service      portssvc.CommunitySvcFacade

	userID string
}

func (s *CommunityServiceTestSuite) SetupTest() {
	s.mockPostRepo = new(MockPostRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewCommunityService(s.mockPostRepo, s.mockUserRepo)
	s.userID = uuid.NewString()
}

func (s *CommunityServiceTestSuite) TestCreatePost_PlainPost() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Content: "hello everyone"}

	s.mockPostRepo.On("SavePost", ctx, mock.AnythingOfType("domain.CommunityPost"), (*domain.Demand)(nil)).
		Return(nil).Once()

	post, demandCreated, err := s.service.CreatePost(ctx, req, s.userID)

	s.Require().NoError(err)
	s.False(demandCreated)
	s.Equal("hello everyone", post.Content)
	s.mockUserRepo.AssertNotCalled(s.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (s *CommunityServiceTestSuite) TestCreatePost_KeywordSpawnsDemand() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Content: "Looking for a hydraulics expert"}
	user := &domain.User{UserID: s.userID, Username: "poster"}

	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(user, nil).Once()

	var savedDemand *domain.Demand
	s.mockPostRepo.On("SavePost", ctx, mock.AnythingOfType("domain.CommunityPost"), mock.AnythingOfType("*domain.Demand")).
		Run(func(args mock.Arguments) { savedDemand = args.Get(2).(*domain.Demand) }).
		Return(nil).Once()

	post, demandCreated, err := s.service.CreatePost(ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(demandCreated)
	s.Require().NotNil(savedDemand)
	s.Equal(domain.DemandService, savedDemand.Type)
	s.Equal(domain.DemandActive, savedDemand.Status)
	s.Equal(domain.DefaultDemandPoints, savedDemand.PointsRequired)
	s.Equal("poster", savedDemand.ContactInfo)
	s.Equal(req.Content, savedDemand.Description)
	s.Equal(post.UserID, savedDemand.UserID)
}

func (s *CommunityServiceTestSuite) TestCreatePost_KeywordMatchIsCaseInsensitive() {
	ctx := context.Background()
	req := dto.CreatePostRequest{Content: "WANTED: someone who knows PLC ladder logic"}
	user := &domain.User{UserID: s.userID, Username: "poster"}

	s.mockUserRepo.On("FindUserByID", ctx, s.userID).Return(user, nil).Once()
	s.mockPostRepo.On("SavePost", ctx, mock.AnythingOfType("domain.CommunityPost"), mock.AnythingOfType("*domain.Demand")).
		Return(nil).Once()

	_, demandCreated, err := s.service.CreatePost(ctx, req, s.userID)

	s.Require().NoError(err)
	s.True(demandCreated)
}

func (s *CommunityServiceTestSuite) TestListRecentPosts_CapsFeed() {
	ctx := context.Background()
	posts := []domain.CommunityPost{{PostID: uuid.NewString(), Content: "hi"}}
	s.mockPostRepo.On("ListRecentPosts", ctx, 10).Return(posts, nil).Once()

	got, err := s.service.ListRecentPosts(ctx)

	s.Require().NoError(err)
	s.Len(got, 1)
	s.mockPostRepo.AssertExpectations(s.T())
}

func TestCommunityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommunityServiceTestSuite))
}
