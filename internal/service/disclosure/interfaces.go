package disclosure

import (
	"context"

	"github.com/google/uuid"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/emissions"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/energy"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/intensity"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/offsets"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/target"
)

// ActivityRecordSource provides the per-activity emission records produced by
// the upstream factor-calculation layer.
type ActivityRecordSource interface {
	RecordsForPeriod(ctx context.Context, periodID uuid.UUID) ([]emissions.ActivityEmissionRecord, error)
}

// CompanyProfileSource provides the optional business metrics intensity
// ratios are derived from.
type CompanyProfileSource interface {
	MetricsForPeriod(ctx context.Context, companyID, periodID uuid.UUID) (intensity.CompanyMetrics, error)
}

// EnergyRecordSource provides energy consumption lines derived from the
// activity sub-tables.
type EnergyRecordSource interface {
	EnergyForPeriod(ctx context.Context, periodID uuid.UUID) ([]energy.Record, error)
}

// TargetSource provides a company's registered reduction targets.
type TargetSource interface {
	TargetsForCompany(ctx context.Context, companyID uuid.UUID) ([]target.ClimateTarget, error)
}

// OffsetSource provides the period's purchased credits.
type OffsetSource interface {
	OffsetsForPeriod(ctx context.Context, periodID uuid.UUID) ([]offsets.OffsetRecord, error)
}
