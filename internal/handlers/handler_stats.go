package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// statsHandler exposes the system-wide ledger statistics.
type statsHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newStatsHandler(ss portssvc.SettlementSvcFacade) *statsHandler {
	return &statsHandler{settlementService: ss}
}

// registerStatsRoutes registers the statistics routes.
func registerStatsRoutes(rg *gin.RouterGroup, ss portssvc.SettlementSvcFacade) {
	h := newStatsHandler(ss)
	rg.GET("/stats", h.getSystemStats)
}

// getSystemStats godoc
// @Summary Get system-wide ledger statistics
// @Description Retrieves minted supply, fee pool, rewards given, points in circulation and the dependency ratio.
// @Tags stats
// @Produce json
// @Success 200 {object} dto.SystemStatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to retrieve stats"
// @Security BearerAuth
// @Router /stats [get]
func (h *statsHandler) getSystemStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.settlementService.GetSystemStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to retrieve system stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
