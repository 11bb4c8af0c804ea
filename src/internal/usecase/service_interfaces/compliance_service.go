package service_interfaces

import (
	"context"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
)

type ComplianceService interface {
	RunAnalysis(ctx context.Context, req models.ComplianceRequest) (commons.Response[models.ComplianceResponse], error)
}
