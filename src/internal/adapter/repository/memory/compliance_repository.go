package memory

import (
	"context"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
)

var _ domain.ComplianceRepository = (*ComplianceRepository)(nil)

type ComplianceRepository struct {
	alerts   []domain.ComplianceAlert
	volumes  map[domain.Corridor][]int
	activity map[domain.Corridor][]domain.InstitutionShare
}

// NewComplianceRepository builds the canned analytics data set. Alert
// timestamps are relative to now.
func NewComplianceRepository(now time.Time) *ComplianceRepository {
	return &ComplianceRepository{
		alerts: []domain.ComplianceAlert{
			{
				AlertID:     "ALERT001",
				Timestamp:   now.Add(-48 * time.Hour),
				Institution: "FinTech A",
				Details:     "High-value transaction (1M USDC) flagged for review in USD-MXN corridor.",
				Status:      domain.AlertStatusPending,
			},
			{
				AlertID:     "ALERT002",
				Timestamp:   now.Add(-24 * time.Hour),
				Institution: "PSP Alpha",
				Details:     "Multiple small transactions from new counterparty in EUR-NGN corridor.",
				Status:      domain.AlertStatusReviewed,
			},
			{
				AlertID:     "ALERT003",
				Timestamp:   now.Add(-5 * time.Hour),
				Institution: "Bank B Mexico",
				Details:     "Unusual transaction pattern detected in EUR-USD corridor.",
				Status:      domain.AlertStatusPending,
			},
		},
		volumes: map[domain.Corridor][]int{
			domain.CorridorUSDMXN: {50, 60, 45, 70, 55, 80, 65},
			domain.CorridorEURNGN: {30, 35, 28, 40, 33, 45, 38},
		},
		activity: map[domain.Corridor][]domain.InstitutionShare{
			domain.CorridorUSDMXN: {
				{Institution: "FinTech A", Share: 40},
				{Institution: "PSP Alpha", Share: 30},
				{Institution: "Bank B Mexico", Share: 20},
				{Institution: "Others", Share: 10},
			},
			domain.CorridorEURNGN: {
				{Institution: "FinTech Omega Nigeria", Share: 50},
				{Institution: "Bank B Mexico", Share: 25},
				{Institution: "PSP Alpha", Share: 15},
				{Institution: "Others", Share: 10},
			},
		},
	}
}

func (r *ComplianceRepository) GetAlerts(_ context.Context) ([]domain.ComplianceAlert, error) {
	return append([]domain.ComplianceAlert(nil), r.alerts...), nil
}

// GetDailyVolume returns seven daily transaction counts, zeros for corridors
// without data.
func (r *ComplianceRepository) GetDailyVolume(_ context.Context, corridor domain.Corridor) ([]int, error) {
	volume, ok := r.volumes[corridor]
	if !ok {
		return make([]int, 7), nil
	}
	return append([]int(nil), volume...), nil
}

func (r *ComplianceRepository) GetInstitutionActivity(_ context.Context, corridor domain.Corridor) ([]domain.InstitutionShare, error) {
	return append([]domain.InstitutionShare(nil), r.activity[corridor]...), nil
}
