package service_interfaces

import (
	"context"
	"io"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/session"
)

type LedgerService interface {
	GetLedger(ctx context.Context, sess *session.Session, req models.GetLedgerRequest) (commons.Response[models.GetLedgerResponse], error)
	ExportCSV(ctx context.Context, sess *session.Session, req models.GetLedgerRequest, w io.Writer) (int, error)
}
