package services_test

import (
	"context"
	"fmt"
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

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockDocRepo     *MockDocumentRepository
	mockCommentRepo *MockCommentRepository
	service         portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockDocRepo = new(MockDocumentRepository)
	s.mockCommentRepo = new(MockCommentRepository)
	s.service = services.NewUserService(s.mockUserRepo, s.mockDocRepo, s.mockCommentRepo)
}

func (s *UserServiceTestSuite) TestRegisterUser_GrantsWelcomePoints() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "newbie", Password: "secret"}

	s.mockUserRepo.On("FindUserByUsername", ctx, "newbie").
		Return(nil, fmt.Errorf("%w: no such user", apperrors.ErrNotFound)).Once()

	var savedUser domain.User
	var savedWelcome domain.Transaction
	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User"), mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			savedUser = args.Get(1).(domain.User)
			savedWelcome = args.Get(2).(domain.Transaction)
		}).Return(nil).Once()

	user, err := s.service.RegisterUser(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal(domain.WelcomePoints, user.Points)
	s.Equal("newbie", savedUser.Username)
	s.Equal(domain.WelcomePoints, savedWelcome.Amount)
	s.Equal(domain.TxReward, savedWelcome.Type)
	s.Equal(savedUser.UserID, savedWelcome.UserID)
	s.Nil(savedWelcome.DocumentID)
}

func (s *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "taken"}
	s.mockUserRepo.On("FindUserByUsername", ctx, "taken").Return(existing, nil).Once()

	user, err := s.service.RegisterUser(ctx, dto.RegisterRequest{Username: "taken", Password: "pw"})

	s.Require().Error(err)
	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "alice", Password: "pw", Points: 100}
	s.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()

	got, err := s.service.AuthenticateUser(ctx, "alice", "pw")

	s.Require().NoError(err)
	s.Equal(user.UserID, got.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "alice", Password: "pw"}
	s.mockUserRepo.On("FindUserByUsername", ctx, "alice").Return(user, nil).Once()

	got, err := s.service.AuthenticateUser(ctx, "alice", "wrong")

	s.Require().Error(err)
	s.Nil(got)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestAuthenticateUser_UnknownUserSameError() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByUsername", ctx, "ghost").
		Return(nil, fmt.Errorf("%w: no such user", apperrors.ErrNotFound)).Once()

	got, err := s.service.AuthenticateUser(ctx, "ghost", "pw")

	s.Require().Error(err)
	s.Nil(got)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestGetDashboard_AggregatesReadsAndLikes() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Username: "author", Points: 250}
	docs := []domain.Document{
		{DocumentID: uuid.NewString(), AuthorID: userID, ReadCount: 40},
		{DocumentID: uuid.NewString(), AuthorID: userID, ReadCount: 2},
	}

	s.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	s.mockDocRepo.On("ListDocumentsByAuthor", ctx, userID).Return(docs, nil).Once()
	s.mockCommentRepo.On("CountLikesForAuthor", ctx, userID).Return(int64(5), nil).Once()

	dashboard, err := s.service.GetDashboard(ctx, userID)

	s.Require().NoError(err)
	s.Equal(int64(42), dashboard.TotalReads)
	s.Equal(int64(5), dashboard.TotalLikes)
	s.Len(dashboard.Documents, 2)
	s.Equal(int64(250), dashboard.User.Points)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
