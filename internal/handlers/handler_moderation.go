package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// moderationHandler handles the moderation queue: listing pending documents
// and settling approvals and rejections.
type moderationHandler struct {
	documentService   portssvc.DocumentSvcFacade
	settlementService portssvc.SettlementSvcFacade
}

func newModerationHandler(ds portssvc.DocumentSvcFacade, ss portssvc.SettlementSvcFacade) *moderationHandler {
	return &moderationHandler{
		documentService:   ds,
		settlementService: ss,
	}
}

// registerModerationRoutes registers the moderation routes.
func registerModerationRoutes(rg *gin.RouterGroup, ds portssvc.DocumentSvcFacade, ss portssvc.SettlementSvcFacade) {
	h := newModerationHandler(ds, ss)

	moderation := rg.Group("/moderation")
	{
		moderation.GET("/documents", h.listPending)
		moderation.POST("/documents/:id/approve", h.approveDocument)
		moderation.POST("/documents/:id/reject", h.rejectDocument)
	}
}

// listPending godoc
// @Summary List the moderation queue
// @Description Retrieves all pending documents, newest first.
// @Tags moderation
// @Produce json
// @Success 200 {array} dto.DocumentResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list pending documents"
// @Security BearerAuth
// @Router /moderation/documents [get]
func (h *moderationHandler) listPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	docs, err := h.documentService.ListPending(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list pending documents", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list pending documents"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponses(docs))
}

// approveDocument godoc
// @Summary Approve a pending document
// @Description Marks the document approved and pays the author the moderation reward, funded from the fee pool or minted when the pool cannot cover it.
// @Tags moderation
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.ApprovalResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Document not pending"
// @Failure 500 {object} ErrorResponse "Failed to settle approval"
// @Security BearerAuth
// @Router /moderation/documents/{id}/approve [post]
func (h *moderationHandler) approveDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")
	moderatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipt, err := h.settlementService.ApproveDocument(c.Request.Context(), documentID, moderatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Only pending documents can be approved"})
		default:
			logger.Error("Failed to settle approval", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle approval"})
		}
		return
	}

	logger.Info("Document approved",
		slog.String("document_id", documentID),
		slog.Int64("reward", receipt.RewardAmount),
		slog.String("source", string(receipt.Source)),
	)
	c.JSON(http.StatusOK, dto.ApprovalResponse{
		DocumentID:    receipt.DocumentID,
		RewardAmount:  receipt.RewardAmount,
		FundingSource: receipt.Source,
		Message:       fmt.Sprintf("Document approved, author rewarded %d points", receipt.RewardAmount),
	})
}

// rejectDocument godoc
// @Summary Reject a pending document
// @Description Marks the document rejected. No points move.
// @Tags moderation
// @Produce json
// @Param id path string true "Document ID"
// @Success 204 "Rejected"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Document not found"
// @Failure 409 {object} ErrorResponse "Document not pending"
// @Failure 500 {object} ErrorResponse "Failed to settle rejection"
// @Security BearerAuth
// @Router /moderation/documents/{id}/reject [post]
func (h *moderationHandler) rejectDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("id")
	moderatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.settlementService.RejectDocument(c.Request.Context(), documentID, moderatorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Document not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Only pending documents can be rejected"})
		default:
			logger.Error("Failed to settle rejection", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to settle rejection"})
		}
		return
	}

	logger.Info("Document rejected", slog.String("document_id", documentID))
	c.Status(http.StatusNoContent)
}
