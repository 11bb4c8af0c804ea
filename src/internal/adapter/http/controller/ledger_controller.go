package controller

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/api-sage/stablenet-ledger/src/internal/adapter/http/models"
	"github.com/api-sage/stablenet-ledger/src/internal/commons"
	"github.com/api-sage/stablenet-ledger/src/internal/logger"
	"github.com/api-sage/stablenet-ledger/src/internal/usecase/service_interfaces"
	"github.com/go-chi/chi/v5"
)

const ledgerExportFilename = "stablenet_ledger.csv"

type LedgerController struct {
	service service_interfaces.LedgerService
}

func NewLedgerController(service service_interfaces.LedgerService) *LedgerController {
	return &LedgerController{service: service}
}

func (c *LedgerController) RegisterRoutes(r chi.Router) {
	r.Get("/ledger", c.getLedger)
	r.Get("/ledger/export", c.exportLedger)
}

func (c *LedgerController) getLedger(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sess, ok := requireSession[models.GetLedgerResponse](w, r, start)
	if !ok {
		return
	}

	req := ledgerRequest(r)
	logRequest(r, req)

	response, err := c.service.GetLedger(r.Context(), sess, req)
	respond(w, r, response, err, http.StatusOK, start)
}

func (c *LedgerController) exportLedger(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sess, ok := requireSession[struct{}](w, r, start)
	if !ok {
		return
	}

	req := ledgerRequest(r)
	logRequest(r, req)

	var buf bytes.Buffer
	rows, err := c.service.ExportCSV(r.Context(), sess, req, &buf)
	if err != nil {
		response := commons.ErrorResponse[struct{}]("failed to export ledger", "Unable to export ledger right now")
		if statusFor(err) == http.StatusBadRequest {
			response = commons.ValidationFailedResponse[struct{}](err)
		}
		respond(w, r, response, err, http.StatusOK, start)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ledgerExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logError(r, err, logger.Fields{"rows": rows})
		return
	}
	logResponse(r, http.StatusOK, logger.Fields{"rows": rows, "bytes": buf.Len()}, start)
}

func ledgerRequest(r *http.Request) models.GetLedgerRequest {
	return models.GetLedgerRequest{
		Institutions: queryList(r, "institution"),
		Corridors:    queryList(r, "corridor"),
	}
}

// queryList accepts repeated and comma separated values.
func queryList(r *http.Request, key string) []string {
	var out []string
	for _, raw := range r.URL.Query()[key] {
		for _, value := range strings.Split(raw, ",") {
			if value = strings.TrimSpace(value); value != "" {
				out = append(out, value)
			}
		}
	}
	return out
}
