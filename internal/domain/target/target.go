package target

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
)

// ClimateTarget is a registered emission reduction commitment together with
// the most recent measurement against it.
type ClimateTarget struct {
	ID        uuid.UUID
	CompanyID uuid.UUID

	BaseYear          int
	BaseYearEmissions values.CO2e

	TargetYear              int
	TargetReductionPercent  decimal.Decimal
	TargetAbsoluteEmissions values.CO2e

	LastMeasuredYear      int
	LastMeasuredEmissions values.CO2e
}

// NewClimateTarget derives the absolute target from the reduction percentage
// when only the percentage is registered.
func NewClimateTarget(
	companyID uuid.UUID,
	baseYear int,
	baseEmissions values.CO2e,
	targetYear int,
	reductionPercent decimal.Decimal,
) (*ClimateTarget, error) {
	if reductionPercent.IsNegative() || reductionPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("target reduction percentage must be within [0, 100], got %s", reductionPercent)
	}

	retained := decimal.NewFromInt(100).Sub(reductionPercent).Div(decimal.NewFromInt(100))
	absolute, err := values.NewCO2e(baseEmissions.Tonnes().Mul(retained))
	if err != nil {
		return nil, err
	}

	return &ClimateTarget{
		ID:                      uuid.New(),
		CompanyID:               companyID,
		BaseYear:                baseYear,
		BaseYearEmissions:       baseEmissions,
		TargetYear:              targetYear,
		TargetReductionPercent:  reductionPercent,
		TargetAbsoluteEmissions: absolute,
	}, nil
}

// WithMeasurement returns a copy of the target carrying a measured value.
func (t ClimateTarget) WithMeasurement(year int, emissions values.CO2e) ClimateTarget {
	t.LastMeasuredYear = year
	t.LastMeasuredEmissions = emissions
	return t
}
