package services_test

import (
	"context"

	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SumUserPoints(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, welcome domain.Transaction) error {
	args := m.Called(ctx, user, welcome)
	return args.Error(0)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) ([]domain.Document, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListApprovedExcludingAuthor(ctx context.Context, authorID string) ([]domain.Document, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByAuthor(ctx context.Context, authorID string) ([]domain.Document, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) CountDocumentsByStatus(ctx context.Context, status domain.DocumentStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) HasEntitlement(ctx context.Context, userID, documentID string) (bool, error) {
	args := m.Called(ctx, userID, documentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SettlePurchase(ctx context.Context, buyerID, documentID string) (*domain.PurchaseReceipt, error) {
	args := m.Called(ctx, buyerID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseReceipt), args.Error(1)
}

func (m *MockLedgerRepository) SettleApproval(ctx context.Context, documentID, moderatorID string) (*domain.ApprovalReceipt, error) {
	args := m.Called(ctx, documentID, moderatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalReceipt), args.Error(1)
}

func (m *MockLedgerRepository) SettleRejection(ctx context.Context, documentID, moderatorID string) error {
	args := m.Called(ctx, documentID, moderatorID)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetSystemStats(ctx context.Context) (*domain.SystemStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemStats), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

var _ portsrepo.CommentRepositoryFacade = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) ListCommentsByDocument(ctx context.Context, documentID string) ([]domain.Comment, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountReactions(ctx context.Context, documentID string) (*domain.ReactionCounts, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReactionCounts), args.Error(1)
}

func (m *MockCommentRepository) HasReaction(ctx context.Context, userID, documentID string, kind domain.CommentType) (bool, error) {
	args := m.Called(ctx, userID, documentID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) CountLikesForAuthor(ctx context.Context, authorID string) (int64, error) {
	args := m.Called(ctx, authorID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock DemandRepository ---
type MockDemandRepository struct {
	mock.Mock
}

var _ portsrepo.DemandRepositoryFacade = (*MockDemandRepository)(nil)

func (m *MockDemandRepository) SaveDemand(ctx context.Context, demand domain.Demand) error {
	args := m.Called(ctx, demand)
	return args.Error(0)
}

func (m *MockDemandRepository) FindDemandByID(ctx context.Context, demandID string) (*domain.Demand, error) {
	args := m.Called(ctx, demandID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Demand), args.Error(1)
}

func (m *MockDemandRepository) ListActiveDemands(ctx context.Context, limit int) ([]domain.Demand, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Demand), args.Error(1)
}

func (m *MockDemandRepository) CountActiveDemandsByType(ctx context.Context, demandType domain.DemandType) (int64, error) {
	args := m.Called(ctx, demandType)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PostRepository ---
type MockPostRepository struct {
	mock.Mock
}

var _ portsrepo.PostRepositoryFacade = (*MockPostRepository)(nil)

func (m *MockPostRepository) SavePost(ctx context.Context, post domain.CommunityPost, demand *domain.Demand) error {
	args := m.Called(ctx, post, demand)
	return args.Error(0)
}

func (m *MockPostRepository) ListRecentPosts(ctx context.Context, limit int) ([]domain.CommunityPost, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommunityPost), args.Error(1)
}
