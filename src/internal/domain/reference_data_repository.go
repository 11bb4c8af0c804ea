package domain

import "context"

type ReferenceDataRepository interface {
	RateRepository
	GetInstitutions(ctx context.Context) ([]string, error)
	GetRoutes(ctx context.Context) ([]InstitutionRoute, error)
	GetSeriesKeys(ctx context.Context) ([]SeriesKey, error)
	GetPositionProfile(ctx context.Context, key SeriesKey) (PositionProfile, error)
}
