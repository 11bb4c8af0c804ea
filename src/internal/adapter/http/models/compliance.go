package models

import (
	"strings"

	"github.com/api-sage/stablenet-ledger/src/internal/domain"
)

const (
	AnalysisTransactionVolume   = "Transaction Volume"
	AnalysisComplianceAlerts    = "Compliance Alerts"
	AnalysisInstitutionActivity = "Institution Activity"
)

type ComplianceRequest struct {
	Corridor     string `json:"corridor"`
	AnalysisType string `json:"analysisType"`
}

func (r ComplianceRequest) Validate() error {
	var errs []string

	if !r.CorridorValue().IsValid() {
		errs = append(errs, "Invalid Corridor selected.")
	}
	if r.AnalysisValue() == "" {
		errs = append(errs, "analysisType must be one of Transaction Volume, Compliance Alerts, Institution Activity")
	}

	if len(errs) > 0 {
		return domain.NewValidationError(errs...)
	}
	return nil
}

func (r ComplianceRequest) CorridorValue() domain.Corridor {
	return domain.Corridor(strings.ToUpper(strings.TrimSpace(r.Corridor)))
}

// AnalysisValue normalises the analysis type; short forms like "volume" are
// accepted. Unknown types yield "".
func (r ComplianceRequest) AnalysisValue() string {
	switch strings.ToLower(strings.TrimSpace(r.AnalysisType)) {
	case "transaction volume", "volume":
		return AnalysisTransactionVolume
	case "compliance alerts", "alerts":
		return AnalysisComplianceAlerts
	case "institution activity", "activity":
		return AnalysisInstitutionActivity
	default:
		return ""
	}
}

type DailyVolumeResponse struct {
	Day          string `json:"day"`
	Transactions int    `json:"transactions"`
}

type AlertResponse struct {
	AlertID     string `json:"alertId"`
	Timestamp   string `json:"timestamp"`
	Institution string `json:"institution"`
	Details     string `json:"details"`
	Status      string `json:"status"`
}

type InstitutionShareResponse struct {
	Institution string `json:"institution"`
	Share       int    `json:"share"`
}

type ComplianceResponse struct {
	Corridor     string                     `json:"corridor"`
	AnalysisType string                     `json:"analysisType"`
	Volume       []DailyVolumeResponse      `json:"volume,omitempty"`
	Alerts       []AlertResponse            `json:"alerts,omitempty"`
	Activity     []InstitutionShareResponse `json:"activity,omitempty"`
	Message      string                     `json:"message,omitempty"`
	Note         string                     `json:"note"`
}
