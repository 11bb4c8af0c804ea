package domain

import (
	"context"
	"time"
)

type AlertStatus string

const (
	AlertStatusPending  AlertStatus = "Pending"
	AlertStatusReviewed AlertStatus = "Reviewed"
)

type ComplianceAlert struct {
	AlertID     string
	Timestamp   time.Time
	Institution string
	Details     string
	Status      AlertStatus
}

type InstitutionShare struct {
	Institution string
	Share       int
}

type ComplianceRepository interface {
	GetAlerts(ctx context.Context) ([]ComplianceAlert, error)
	GetDailyVolume(ctx context.Context, corridor Corridor) ([]int, error)
	GetInstitutionActivity(ctx context.Context, corridor Corridor) ([]InstitutionShare, error)
}
