package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/domain"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.ComplianceService = (*ComplianceService)(nil)

const complianceNote = "All transactions undergo simulated AML/CFT checks for regulatory compliance."

type ComplianceService struct {
	complianceRepo domain.ComplianceRepository
}

func NewComplianceService(complianceRepo domain.ComplianceRepository) *ComplianceService {
	return &ComplianceService{complianceRepo: complianceRepo}
}

// RunAnalysis returns one canned analytics view for a corridor.
func (s *ComplianceService) RunAnalysis(ctx context.Context, req models.ComplianceRequest) (commons.Response[models.ComplianceResponse], error) {
	logger.Info("compliance service run analysis request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("compliance service run analysis validation failed", err, nil)
		return commons.ValidationFailedResponse[models.ComplianceResponse](err), err
	}

	corridor := req.CorridorValue()
	resp := models.ComplianceResponse{
		Corridor:     string(corridor),
		AnalysisType: req.AnalysisValue(),
		Note:         complianceNote,
	}

	var err error
	switch resp.AnalysisType {
	case models.AnalysisTransactionVolume:
		err = s.volume(ctx, corridor, &resp)
	case models.AnalysisComplianceAlerts:
		err = s.alerts(ctx, corridor, &resp)
	case models.AnalysisInstitutionActivity:
		err = s.activity(ctx, corridor, &resp)
	}
	if err != nil {
		logger.Error("compliance service run analysis failed", err, logger.Fields{
			"analysisType": resp.AnalysisType,
		})
		return commons.ErrorResponse[models.ComplianceResponse]("failed to run analysis", "Unable to run compliance analysis right now"), err
	}

	return commons.SuccessResponse("analysis completed successfully", resp), nil
}

func (s *ComplianceService) volume(ctx context.Context, corridor domain.Corridor, resp *models.ComplianceResponse) error {
	volume, err := s.complianceRepo.GetDailyVolume(ctx, corridor)
	if err != nil {
		return fmt.Errorf("get daily volume: %w", err)
	}
	resp.Volume = make([]models.DailyVolumeResponse, 0, len(volume))
	for i, transactions := range volume {
		resp.Volume = append(resp.Volume, models.DailyVolumeResponse{
			Day:          fmt.Sprintf("Day %d", i+1),
			Transactions: transactions,
		})
	}
	return nil
}

// alerts keeps the alerts whose details mention the corridor.
func (s *ComplianceService) alerts(ctx context.Context, corridor domain.Corridor, resp *models.ComplianceResponse) error {
	alerts, err := s.complianceRepo.GetAlerts(ctx)
	if err != nil {
		return fmt.Errorf("get alerts: %w", err)
	}
	for _, alert := range alerts {
		if !strings.Contains(alert.Details, string(corridor)) {
			continue
		}
		resp.Alerts = append(resp.Alerts, models.AlertResponse{
			AlertID:     alert.AlertID,
			Timestamp:   alert.Timestamp.Format(domain.LedgerTimestampLayout),
			Institution: alert.Institution,
			Details:     alert.Details,
			Status:      string(alert.Status),
		})
	}
	if len(resp.Alerts) == 0 {
		resp.Message = fmt.Sprintf("No simulated compliance alerts for %s at this time.", corridor)
	}
	return nil
}

func (s *ComplianceService) activity(ctx context.Context, corridor domain.Corridor, resp *models.ComplianceResponse) error {
	shares, err := s.complianceRepo.GetInstitutionActivity(ctx, corridor)
	if err != nil {
		return fmt.Errorf("get institution activity: %w", err)
	}
	for _, share := range shares {
		resp.Activity = append(resp.Activity, models.InstitutionShareResponse{
			Institution: share.Institution,
			Share:       share.Share,
		})
	}
	if len(resp.Activity) == 0 {
		resp.Message = fmt.Sprintf("No simulated institution activity data for %s.", corridor)
	}
	return nil
}
