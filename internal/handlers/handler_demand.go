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

// demandHandler handles HTTP requests for demand want-ads.
type demandHandler struct {
	demandService portssvc.DemandSvcFacade
}

func newDemandHandler(ds portssvc.DemandSvcFacade) *demandHandler {
	return &demandHandler{demandService: ds}
}

// registerDemandRoutes registers all demand-related routes.
func registerDemandRoutes(rg *gin.RouterGroup, ds portssvc.DemandSvcFacade) {
	h := newDemandHandler(ds)

	demands := rg.Group("/demands")
	{
		demands.POST("", h.createDemand)
		demands.GET("", h.listActiveDemands)
		demands.GET("/:id", h.getDemand)
	}
}

// createDemand godoc
// @Summary Post a new demand
// @Description Creates a demand want-ad. A non-numeric points offer is coerced to the default; a numeric offer below the minimum is rejected.
// @Tags demands
// @Accept json
// @Produce json
// @Param demand body dto.CreateDemandRequest true "Demand details"
// @Success 201 {object} dto.DemandResponse
// @Failure 400 {object} ErrorResponse "Invalid input or points below minimum"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create demand"
// @Security BearerAuth
// @Router /demands [post]
func (h *demandHandler) createDemand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateDemandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	demand, err := h.demandService.CreateDemand(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create demand", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create demand"})
		return
	}

	logger.Info("Demand created", slog.String("demand_id", demand.DemandID))
	c.JSON(http.StatusCreated, dto.ToDemandResponse(demand))
}

// listActiveDemands godoc
// @Summary List active demands
// @Description Retrieves active demands, newest first, with per-type counts.
// @Tags demands
// @Produce json
// @Success 200 {object} dto.DemandListResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list demands"
// @Security BearerAuth
// @Router /demands [get]
func (h *demandHandler) listActiveDemands(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	list, err := h.demandService.ListActiveDemands(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list demands", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list demands"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// getDemand godoc
// @Summary Get a demand
// @Description Retrieves a specific demand with its contact details.
// @Tags demands
// @Produce json
// @Param id path string true "Demand ID"
// @Success 200 {object} dto.DemandResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Demand not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve demand"
// @Security BearerAuth
// @Router /demands/{id} [get]
func (h *demandHandler) getDemand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	demandID := c.Param("id")

	demand, err := h.demandService.GetDemand(c.Request.Context(), demandID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Demand not found"})
			return
		}
		logger.Error("Failed to retrieve demand", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve demand"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDemandResponse(demand))
}
