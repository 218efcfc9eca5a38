package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to the authenticated user.
type userHandler struct {
	userService       portssvc.UserSvcFacade
	settlementService portssvc.SettlementSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ss portssvc.SettlementSvcFacade) *userHandler {
	return &userHandler{
		userService:       us,
		settlementService: ss,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, settlementService portssvc.SettlementSvcFacade) {
	h := newUserHandler(userService, settlementService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.GET("/me/dashboard", h.getDashboard)
		users.GET("/me/transactions", h.listTransactions)
	}
}

// getMe godoc
// @Summary Get the authenticated user
// @Description Retrieves the profile and current points balance of the caller.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to retrieve user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve user"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// getDashboard godoc
// @Summary Get the authenticated user's dashboard
// @Description Retrieves the caller's documents, cumulative reads and likes, and balance.
// @Tags users
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to assemble dashboard"
// @Security BearerAuth
// @Router /users/me/dashboard [get]
func (h *userHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dashboard, err := h.userService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to assemble dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to assemble dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// listTransactions godoc
// @Summary List the authenticated user's ledger history
// @Description Retrieves the caller's ledger entries, newest first.
// @Tags users
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /users/me/transactions [get]
func (h *userHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.settlementService.ListUserTransactions(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}
