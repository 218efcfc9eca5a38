package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SettlementServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	mockDocRepo    *MockDocumentRepository
	mockUserRepo   *MockUserRepository
	service        portssvc.SettlementSvcFacade

	buyerID    string
	authorID   string
	documentID string
}

func (s *SettlementServiceTestSuite) SetupTest() {
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockDocRepo = new(MockDocumentRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewSettlementService(s.mockLedgerRepo, s.mockDocRepo, s.mockUserRepo)

	s.buyerID = uuid.NewString()
	s.authorID = uuid.NewString()
	s.documentID = uuid.NewString()
}

func (s *SettlementServiceTestSuite) buyer(points int64) *domain.User {
	return &domain.User{UserID: s.buyerID, Username: "buyer", Points: points}
}

func (s *SettlementServiceTestSuite) approvedDoc(price int64) *domain.Document {
	return &domain.Document{
		DocumentID: s.documentID,
		Title:      "Pump maintenance guide",
		Price:      price,
		Status:     domain.DocumentApproved,
		AuthorID:   s.authorID,
	}
}

func (s *SettlementServiceTestSuite) TestPurchaseDocument_Success() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, s.buyerID).Return(s.buyer(500), nil).Once()
	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(s.approvedDoc(150), nil).Once()
	s.mockLedgerRepo.On("SettlePurchase", ctx, s.buyerID, s.documentID).Return(&domain.PurchaseReceipt{
		DocumentID:     s.documentID,
		PaidAmount:     150,
		FeeAmount:      15,
		AuthorEarnings: 135,
		ReadCount:      1,
	}, nil).Once()

	receipt, err := s.service.PurchaseDocument(ctx, s.buyerID, s.documentID)

	s.Require().NoError(err)
	s.Require().NotNil(receipt)
	s.Equal(int64(150), receipt.PaidAmount)
	s.Equal(int64(15), receipt.FeeAmount)
	s.Equal(int64(135), receipt.AuthorEarnings)
	s.False(receipt.AlreadyOwned)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *SettlementServiceTestSuite) TestPurchaseDocument_InsufficientPoints() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, s.buyerID).Return(s.buyer(100), nil).Once()
	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(s.approvedDoc(150), nil).Once()

	receipt, err := s.service.PurchaseDocument(ctx, s.buyerID, s.documentID)

	s.Require().Error(err)
	s.Nil(receipt)
	s.ErrorIs(err, apperrors.ErrInsufficientPoints)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SettlePurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SettlementServiceTestSuite) TestPurchaseDocument_NotApproved() {
	ctx := context.Background()
	doc := s.approvedDoc(150)
	doc.Status = domain.DocumentPending
	s.mockUserRepo.On("FindUserByID", ctx, s.buyerID).Return(s.buyer(500), nil).Once()
	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(doc, nil).Once()

	receipt, err := s.service.PurchaseDocument(ctx, s.buyerID, s.documentID)

	s.Require().Error(err)
	s.Nil(receipt)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SettlePurchase", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SettlementServiceTestSuite) TestPurchaseDocument_DocumentNotFound() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, s.buyerID).Return(s.buyer(500), nil).Once()
	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(nil, fmt.Errorf("%w: no such document", apperrors.ErrNotFound)).Once()

	receipt, err := s.service.PurchaseDocument(ctx, s.buyerID, s.documentID)

	s.Require().Error(err)
	s.Nil(receipt)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SettlementServiceTestSuite) TestPurchaseDocument_AlreadyOwnedIsNotAnError() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, s.buyerID).Return(s.buyer(500), nil).Once()
	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(s.approvedDoc(150), nil).Once()
	s.mockLedgerRepo.On("SettlePurchase", ctx, s.buyerID, s.documentID).
		Return(nil, fmt.Errorf("%w: already owned", apperrors.ErrDuplicate)).Once()

	receipt, err := s.service.PurchaseDocument(ctx, s.buyerID, s.documentID)

	s.Require().NoError(err)
	s.Require().NotNil(receipt)
	s.True(receipt.AlreadyOwned)
	s.Equal(int64(0), receipt.PaidAmount)
}

func (s *SettlementServiceTestSuite) TestPurchaseDocument_MilestoneBonusPassedThrough() {
	ctx := context.Background()
	s.mockUserRepo.On("FindUserByID", ctx, s.buyerID).Return(s.buyer(500), nil).Once()
	s.mockDocRepo.On("FindDocumentByID", ctx, s.documentID).Return(s.approvedDoc(150), nil).Once()
	s.mockLedgerRepo.On("SettlePurchase", ctx, s.buyerID, s.documentID).Return(&domain.PurchaseReceipt{
		DocumentID:     s.documentID,
		PaidAmount:     150,
		FeeAmount:      15,
		AuthorEarnings: 135,
		MilestoneBonus: 11,
		ReadCount:      100,
	}, nil).Once()

	receipt, err := s.service.PurchaseDocument(ctx, s.buyerID, s.documentID)

	s.Require().NoError(err)
	s.Equal(int64(11), receipt.MilestoneBonus)
	s.Equal(int64(100), receipt.ReadCount)
}

func (s *SettlementServiceTestSuite) TestApproveDocument_Success() {
	ctx := context.Background()
	moderatorID := uuid.NewString()
	s.mockLedgerRepo.On("SettleApproval", ctx, s.documentID, moderatorID).Return(&domain.ApprovalReceipt{
		DocumentID:   s.documentID,
		RewardAmount: 50,
		Source:       domain.SourceFeePool,
	}, nil).Once()

	receipt, err := s.service.ApproveDocument(ctx, s.documentID, moderatorID)

	s.Require().NoError(err)
	s.Equal(int64(50), receipt.RewardAmount)
	s.Equal(domain.SourceFeePool, receipt.Source)
}

func (s *SettlementServiceTestSuite) TestApproveDocument_MintedReward() {
	ctx := context.Background()
	moderatorID := uuid.NewString()
	s.mockLedgerRepo.On("SettleApproval", ctx, s.documentID, moderatorID).Return(&domain.ApprovalReceipt{
		DocumentID:   s.documentID,
		RewardAmount: 10,
		Source:       domain.SourceMinted,
	}, nil).Once()

	receipt, err := s.service.ApproveDocument(ctx, s.documentID, moderatorID)

	s.Require().NoError(err)
	s.Equal(int64(10), receipt.RewardAmount)
	s.Equal(domain.SourceMinted, receipt.Source)
}

func (s *SettlementServiceTestSuite) TestApproveDocument_AlreadyApproved() {
	ctx := context.Background()
	moderatorID := uuid.NewString()
	s.mockLedgerRepo.On("SettleApproval", ctx, s.documentID, moderatorID).
		Return(nil, fmt.Errorf("%w: not pending", apperrors.ErrInvalidTransition)).Once()

	receipt, err := s.service.ApproveDocument(ctx, s.documentID, moderatorID)

	s.Require().Error(err)
	s.Nil(receipt)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (s *SettlementServiceTestSuite) TestRejectDocument_Success() {
	ctx := context.Background()
	moderatorID := uuid.NewString()
	s.mockLedgerRepo.On("SettleRejection", ctx, s.documentID, moderatorID).Return(nil).Once()

	err := s.service.RejectDocument(ctx, s.documentID, moderatorID)

	s.Require().NoError(err)
	s.mockLedgerRepo.AssertExpectations(s.T())
}

func (s *SettlementServiceTestSuite) TestGetSystemStats_AssemblesView() {
	ctx := context.Background()
	s.mockLedgerRepo.On("GetSystemStats", ctx).Return(&domain.SystemStats{
		TotalPointsCreated: 400,
		TotalFeesCollected: 300,
		TotalRewardsGiven:  120,
	}, nil).Once()
	s.mockUserRepo.On("SumUserPoints", ctx).Return(int64(980), nil).Once()
	s.mockUserRepo.On("CountUsers", ctx).Return(int64(7), nil).Once()
	s.mockDocRepo.On("CountDocumentsByStatus", ctx, domain.DocumentApproved).Return(int64(3), nil).Once()

	stats, err := s.service.GetSystemStats(ctx)

	s.Require().NoError(err)
	s.Equal(int64(400), stats.TotalPointsCreated)
	s.Equal(int64(300), stats.TotalFeesCollected)
	s.Equal(int64(120), stats.TotalRewardsGiven)
	s.Equal(int64(980), stats.TotalPointsInCirculation)
	s.Equal(int64(7), stats.Users)
	s.Equal(int64(3), stats.ApprovedDocuments)
	s.Equal("42.86", stats.DependencyRatio)
}

func (s *SettlementServiceTestSuite) TestListUserTransactions() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), UserID: s.buyerID, Amount: -15, Type: domain.TxFee},
		{TransactionID: uuid.NewString(), UserID: s.buyerID, Amount: 100, Type: domain.TxReward},
	}
	s.mockLedgerRepo.On("ListTransactionsByUser", ctx, s.buyerID).Return(txns, nil).Once()

	got, err := s.service.ListUserTransactions(ctx, s.buyerID)

	s.Require().NoError(err)
	s.Len(got, 2)
	s.Equal(domain.TxFee, got[0].Type)
}

func TestSettlementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettlementServiceTestSuite))
}
