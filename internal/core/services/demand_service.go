package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docmarket/docmarket_backend/internal/apperrors"
	"github.com/docmarket/docmarket_backend/internal/core/domain"
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
	"github.com/docmarket/docmarket_backend/internal/dto"
	"github.com/docmarket/docmarket_backend/internal/middleware"
	"github.com/docmarket/docmarket_backend/internal/utils"
)

var (
	ErrDemandPointsBelowMinimum = fmt.Errorf("%w: demand points offer below minimum", apperrors.ErrValidation)
)

// demandService provides want-ad operations. Demands are settled
// off-platform and never touch the ledger.
type demandService struct {
	demandRepo portsrepo.DemandRepositoryFacade
}

// NewDemandService creates a new DemandService.
func NewDemandService(demandRepo portsrepo.DemandRepositoryFacade) portssvc.DemandSvcFacade {
	return &demandService{demandRepo: demandRepo}
}

var _ portssvc.DemandSvcFacade = (*demandService)(nil)

// CreateDemand creates a new active demand. The submitted points string is
// coerced permissively before the minimum-offer rule is enforced.
func (s *demandService) CreateDemand(ctx context.Context, req dto.CreateDemandRequest, userID string) (*domain.Demand, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	points := utils.CoercePoints(req.Points, domain.DefaultDemandPoints)
	if points < domain.MinDemandPoints {
		return nil, fmt.Errorf("%w: %d is below the minimum of %d", ErrDemandPointsBelowMinimum, points, domain.MinDemandPoints)
	}

	demandType := req.Type
	if demandType == "" {
		demandType = domain.DemandService
	}

	demand := domain.Demand{
		DemandID:       uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Type:           demandType,
		PointsRequired: points,
		Status:         domain.DemandActive,
		ContactInfo:    req.ContactInfo,
		UserID:         userID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.demandRepo.SaveDemand(ctx, demand); err != nil {
		logger.Error("Failed to save demand", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save demand: %w", err)
	}

	logger.Info("Demand created", slog.String("demand_id", demand.DemandID), slog.String("type", string(demandType)))
	return &demand, nil
}

// GetDemand retrieves a specific demand.
func (s *demandService) GetDemand(ctx context.Context, demandID string) (*domain.Demand, error) {
	demand, err := s.demandRepo.FindDemandByID(ctx, demandID)
	if err != nil {
		return nil, fmt.Errorf("failed to find demand %s: %w", demandID, err)
	}
	return demand, nil
}

// ListActiveDemands lists active demands together with per-type counts.
func (s *demandService) ListActiveDemands(ctx context.Context) (*dto.DemandListResponse, error) {
	demands, err := s.demandRepo.ListActiveDemands(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list demands: %w", err)
	}

	serviceCount, err := s.demandRepo.CountActiveDemandsByType(ctx, domain.DemandService)
	if err != nil {
		return nil, fmt.Errorf("failed to count service demands: %w", err)
	}
	partsCount, err := s.demandRepo.CountActiveDemandsByType(ctx, domain.DemandParts)
	if err != nil {
		return nil, fmt.Errorf("failed to count parts demands: %w", err)
	}

	resp := &dto.DemandListResponse{
		Demands:        make([]dto.DemandResponse, len(demands)),
		ServiceDemands: serviceCount,
		PartsDemands:   partsCount,
	}
	for i := range demands {
		resp.Demands[i] = dto.ToDemandResponse(&demands[i])
	}
	return resp, nil
}
