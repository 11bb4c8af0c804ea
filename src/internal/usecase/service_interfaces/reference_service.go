package service_interfaces

import (
	"context"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
)

type ReferenceService interface {
	GetReferenceData(ctx context.Context) (commons.Response[models.ReferenceDataResponse], error)
}
