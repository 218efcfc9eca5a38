package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for documents, purchases and comments.
type documentHandler struct {
	documentService   portssvc.DocumentSvcFacade
	settlementService portssvc.SettlementSvcFacade
	commentService    portssvc.CommentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade, ss portssvc.SettlementSvcFacade, cs portssvc.CommentSvcFacade) *documentHandler {
	return &documentHandler{
		documentService:   ds,
		settlementService: ss,
		commentService:    cs,
	}
}

// RegisterDocumentRoutes registers all document-related routes.
func RegisterDocumentRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvcFacade, ss portssvc.SettlementSvcFacade, cs portssvc.CommentSvcFacade) {
	h := newDocumentHandler(ds, ss, cs)

	docs := rg.Group("/documents")
	{
		docs.POST("", h.submitDocument)
		docs.GET("", h.listPlatformDocuments)
		docs.GET("/mine", h.listMyDocuments)
		docs.GET("/:id", h.getDocument)
		docs.POST("/:id/purchase", h.purchaseDocument)
		docs.POST("/:id/comments", h.addComment)
		docs.GET("/:id/comments", h.listComments)
	}
}

// submitDocument godoc
// @Summary Submit a new document
// @Description Creates a pending document. A non-numeric price is coerced to the default; a numeric price below the minimum is rejected.
// @Tags documents
// @Accept json
// @Produce json
// @Param document body dto.SubmitDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} ErrorResponse "Invalid input or price below minimum"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to submit document"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) submitDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SubmitDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.SubmitDocument(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to submit document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit document"})
		return
	}

	logger.Info("Document submitted", slog.String("document_id", doc.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listPlatformDocuments godoc
// @Summary List purchasable documents
// @Description Retrieves approved documents authored by others, newest first. Pass include_mine=true for all approved documents.
// @Tags documents
// @Produce json
// @Param include_mine query bool false "Include the caller's own approved documents"
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list documents"
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listPlatformDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var docs []domain.Document
	var err error
	if c.Query("include_mine") == "true" {
		docs, err = h.documentService.ListApproved(c.Request.Context())
	} else {
		docs, err = h.documentService.ListPlatformDocuments(c.Request.Context(), userID)
	}
	if err != nil {
		logger.Error("Failed to list documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

// listMyDocuments godoc
// @Summary List the caller's documents
// @Description Retrieves all documents authored by the caller, any status.
// @Tags documents
// @Produce json
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list documents"
// @Security BearerAuth
// @Router /documents/mine [get]
func (h *documentHandler) listMyDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	docs, err := h.documentService.ListByAuthor(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list own documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list documents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

// getDocument godoc
// @Summary Get a document
// @Description Retrieves a document. Content is included only when the caller authored or purchased it.
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentDetailResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve document"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	detail, err := h.documentService.GetDocument(c.Request.Context(), documentID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
			return
		}
		logger.Error("Failed to retrieve document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve document"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// purchaseDocument godoc
// @Summary Purchase a document
// @Description Settles a purchase: debits the buyer, credits the author minus the platform fee, grants read access and pays any milestone bonus. Buying an already-owned document succeeds without moving points.
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Insufficient points"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Document not approved"
// @Failure 500 {object} ErrorResponse "Failed to settle purchase"
// @Security BearerAuth
// @Router /documents/{id}/purchase [post]
func (h *documentHandler) purchaseDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipt, err := h.settlementService.PurchaseDocument(c.Request.Context(), userID, documentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
		case errors.Is(err, apperrors.ErrInsufficientPoints):
			c.JSON(http.StatusPaymentRequired, ErrorResponse{Error: "Insufficient points"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Document is not approved for purchase"})
		default:
			logger.Error("Failed to settle purchase", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle purchase"})
		}
		return
	}

	resp := dto.PurchaseResponse{
		DocumentID:     receipt.DocumentID,
		PaidAmount:     receipt.PaidAmount,
		FeeAmount:      receipt.FeeAmount,
		MilestoneBonus: receipt.MilestoneBonus,
		AlreadyOwned:   receipt.AlreadyOwned,
	}
	if receipt.AlreadyOwned {
		resp.Message = "Document already owned"
	} else {
		resp.Message = fmt.Sprintf("Purchase complete, %d points paid", receipt.PaidAmount)
		logger.Info("Purchase settled",
			slog.String("document_id", documentID),
			slog.Int64("paid", receipt.PaidAmount),
			slog.Int64("fee", receipt.FeeAmount),
		)
	}
	c.JSON(http.StatusOK, resp)
}

// addComment godoc
// @Summary Comment on or react to a document
// @Description Records a comment, like or dislike. A user may react to each document only once per kind.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param comment body dto.AddCommentRequest true "Comment or reaction"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Already reacted"
// @Failure 500 {object} ErrorResponse "Failed to add comment"
// @Security BearerAuth
// @Router /documents/{id}/comments [post]
func (h *documentHandler) addComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.AddComment(c.Request.Context(), documentID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Already reacted to this document"})
		default:
			logger.Error("Failed to add comment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CommentResponse{
		CommentID:  comment.CommentID,
		DocumentID: comment.DocumentID,
		UserID:     comment.UserID,
		Content:    comment.Content,
		Type:       comment.Type,
		CreatedAt:  comment.CreatedAt,
	})
}

// listComments godoc
// @Summary List a document's comments
// @Description Retrieves plain comments on a document, newest first. Reactions are excluded.
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list comments"
// @Security BearerAuth
// @Router /documents/{id}/comments [get]
func (h *documentHandler) listComments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")

	comments, err := h.commentService.ListComments(c.Request.Context(), documentID)
	if err != nil {
		logger.Error("Failed to list comments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}
