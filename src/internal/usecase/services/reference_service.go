package services

import (
	"context"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.ReferenceService = (*ReferenceService)(nil)

type ReferenceService struct {
	referenceRepo domain.ReferenceDataRepository
}

func NewReferenceService(referenceRepo domain.ReferenceDataRepository) *ReferenceService {
	return &ReferenceService{referenceRepo: referenceRepo}
}

func (s *ReferenceService) GetReferenceData(ctx context.Context) (commons.Response[models.ReferenceDataResponse], error) {
	logger.Info("reference service get reference data request", nil)

	institutions, err := s.referenceRepo.GetInstitutions(ctx)
	if err != nil {
		logger.Error("reference service get institutions failed", err, nil)
		return commons.ErrorResponse[models.ReferenceDataResponse]("failed to fetch reference data", "Unable to fetch reference data right now"), err
	}
	routes, err := s.referenceRepo.GetRoutes(ctx)
	if err != nil {
		logger.Error("reference service get routes failed", err, nil)
		return commons.ErrorResponse[models.ReferenceDataResponse]("failed to fetch reference data", "Unable to fetch reference data right now"), err
	}

	resp := models.ReferenceDataResponse{
		Institutions: institutions,
		Routes:       make([]models.RouteResponse, 0, len(routes)),
	}
	for _, coin := range domain.SupportedStablecoins() {
		resp.Stablecoins = append(resp.Stablecoins, string(coin))
	}
	for _, corridor := range domain.SupportedCorridors() {
		resp.Corridors = append(resp.Corridors, string(corridor))
	}
	for _, priority := range domain.SupportedPriorities() {
		resp.Priorities = append(resp.Priorities, string(priority))
	}
	for _, route := range routes {
		corridors := make([]string, 0, len(route.Corridors))
		for _, corridor := range route.Corridors {
			corridors = append(corridors, string(corridor))
		}
		resp.Routes = append(resp.Routes, models.RouteResponse{
			Institution: route.Institution,
			Stablecoin:  string(route.Stablecoin),
			Corridors:   corridors,
		})
	}

	logger.Info("reference service get reference data success", logger.Fields{
		"institutions": len(resp.Institutions),
		"routes":       len(resp.Routes),
	})

	return commons.SuccessResponse("reference data fetched successfully", resp), nil
}
