package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/handlers"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

func (m *MockDocumentService) GetDocument(ctx context.Context, documentID string, requestingUserID string) (*dto.DocumentDetailResponse, error) {
	args := m.Called(ctx, documentID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DocumentDetailResponse), args.Error(1)
}

func (m *MockDocumentService) ListApproved(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListPlatformDocuments(ctx context.Context, requestingUserID string) ([]domain.Document, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListPending(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Document, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentService) SubmitDocument(ctx context.Context, req dto.SubmitDocumentRequest, authorID string) (*domain.Document, error) {
	args := m.Called(ctx, req, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

// --- Mock SettlementService ---
type MockSettlementService struct {
	mock.Mock
}

var _ portssvc.SettlementSvcFacade = (*MockSettlementService)(nil)

func (m *MockSettlementService) PurchaseDocument(ctx context.Context, buyerID, documentID string) (*domain.PurchaseReceipt, error) {
	args := m.Called(ctx, buyerID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseReceipt), args.Error(1)
}

func (m *MockSettlementService) ApproveDocument(ctx context.Context, documentID, moderatorID string) (*domain.ApprovalReceipt, error) {
	args := m.Called(ctx, documentID, moderatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalReceipt), args.Error(1)
}

func (m *MockSettlementService) RejectDocument(ctx context.Context, documentID, moderatorID string) error {
	args := m.Called(ctx, documentID, moderatorID)
	return args.Error(0)
}

func (m *MockSettlementService) GetSystemStats(ctx context.Context) (*dto.SystemStatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SystemStatsResponse), args.Error(1)
}

func (m *MockSettlementService) ListUserTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// --- Mock CommentService ---
type MockCommentService struct {
	mock.Mock
}

var _ portssvc.CommentSvcFacade = (*MockCommentService)(nil)

func (m *MockCommentService) AddComment(ctx context.Context, documentID string, req dto.AddCommentRequest, userID string) (*domain.Comment, error) {
	args := m.Called(ctx, documentID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) ListComments(ctx context.Context, documentID string) ([]domain.Comment, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockDocumentService   *MockDocumentService
	mockSettlementService *MockSettlementService
	mockCommentService    *MockCommentService
	jwtSecret             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *DocumentHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "docmarket-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockDocumentService = new(MockDocumentService)
	suite.mockSettlementService = new(MockSettlementService)
	suite.mockCommentService = new(MockCommentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDocumentRoutes(v1, suite.mockDocumentService, suite.mockSettlementService, suite.mockCommentService)
}

func (suite *DocumentHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DocumentHandlerTestSuite) TestPurchaseDocument_Success() {
	buyerID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockSettlementService.On("PurchaseDocument", mock.Anything, buyerID, documentID).
		Return(&domain.PurchaseReceipt{
			DocumentID:     documentID,
			PaidAmount:     150,
			FeeAmount:      15,
			AuthorEarnings: 135,
			ReadCount:      1,
		}, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/purchase", documentID), buyerID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PurchaseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(150), resp.PaidAmount)
	suite.Equal(int64(15), resp.FeeAmount)
	suite.False(resp.AlreadyOwned)
	suite.mockSettlementService.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestPurchaseDocument_InsufficientPoints() {
	buyerID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockSettlementService.On("PurchaseDocument", mock.Anything, buyerID, documentID).
		Return(nil, fmt.Errorf("%w: need 150, have 10", apperrors.ErrInsufficientPoints)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/purchase", documentID), buyerID, nil)

	suite.Equal(http.StatusPaymentRequired, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestPurchaseDocument_NotApproved() {
	buyerID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockSettlementService.On("PurchaseDocument", mock.Anything, buyerID, documentID).
		Return(nil, fmt.Errorf("%w: pending", apperrors.ErrInvalidTransition)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/purchase", documentID), buyerID, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestPurchaseDocument_AlreadyOwned() {
	buyerID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockSettlementService.On("PurchaseDocument", mock.Anything, buyerID, documentID).
		Return(&domain.PurchaseReceipt{DocumentID: documentID, AlreadyOwned: true}, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/purchase", documentID), buyerID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PurchaseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.AlreadyOwned)
	suite.Equal(int64(0), resp.PaidAmount)
}

func (suite *DocumentHandlerTestSuite) TestPurchaseDocument_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/some-id/purchase", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSettlementService.AssertNotCalled(suite.T(), "PurchaseDocument", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_Success() {
	authorID := uuid.NewString()
	reqBody := dto.SubmitDocumentRequest{Title: "Valve tuning", Content: "steps", Price: "200"}

	suite.mockDocumentService.On("SubmitDocument", mock.Anything, reqBody, authorID).
		Return(&domain.Document{
			DocumentID: uuid.NewString(),
			Title:      reqBody.Title,
			Price:      200,
			Status:     domain.DocumentPending,
			AuthorID:   authorID,
		}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/documents", authorID, reqBody)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DocumentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.DocumentPending, resp.Status)
}

func (suite *DocumentHandlerTestSuite) TestSubmitDocument_PriceBelowMinimum() {
	authorID := uuid.NewString()
	reqBody := dto.SubmitDocumentRequest{Title: "t", Content: "c", Price: "50"}

	suite.mockDocumentService.On("SubmitDocument", mock.Anything, reqBody, authorID).
		Return(nil, fmt.Errorf("%w: too cheap", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/documents", authorID, reqBody)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestGetDocument_NotFound() {
	userID := uuid.NewString()
	documentID := uuid.NewString()

	suite.mockDocumentService.On("GetDocument", mock.Anything, documentID, userID).
		Return(nil, fmt.Errorf("%w: gone", apperrors.ErrNotFound)).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/documents/"+documentID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DocumentHandlerTestSuite) TestAddComment_DuplicateReaction() {
	userID := uuid.NewString()
	documentID := uuid.NewString()
	reqBody := dto.AddCommentRequest{Type: domain.CommentLike}

	suite.mockCommentService.On("AddComment", mock.Anything, documentID, reqBody, userID).
		Return(nil, fmt.Errorf("%w: already liked", apperrors.ErrDuplicate)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/documents/%s/comments", documentID), userID, reqBody)

	suite.Equal(http.StatusConflict, w.Code)
}

func TestDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
