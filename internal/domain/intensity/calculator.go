package intensity

import (
	"github.com/shopspring/decimal"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
)

// Ratio is one intensity figure. A missing or unusable denominator produces a
// nil Value with an explanatory note — a reporting gap, never an error and
// never a zero masquerading as a measurement.
type Ratio struct {
	Value *decimal.Decimal `json:"value"`
	Unit  string           `json:"unit"`
	Note  string           `json:"note,omitempty"`
}

// Report carries the intensity ratios for one reporting period.
type Report struct {
	PerRevenue        Ratio `json:"per_revenue"`
	PerEmployee       Ratio `json:"per_employee"`
	PerFloorArea      Ratio `json:"per_floor_area"`
	PerProductionUnit Ratio `json:"per_production_unit"`
}

const (
	noteMetricUnavailable = "metric not reported or not positive; ratio omitted"
)

// Compute derives intensity ratios for every available company metric.
// Revenue ratios round to 6 decimals (large denominators), the others to 3.
func Compute(totalGHG values.CO2e, metrics CompanyMetrics) *Report {
	return &Report{
		PerRevenue:        ratio(totalGHG, metrics.revenueDenominator(), "tCO2e/revenue", values.RevenueIntensityPrecision),
		PerEmployee:       ratio(totalGHG, metrics.employeeDenominator(), "tCO2e/employee", values.HeadcountIntensityPrecision),
		PerFloorArea:      ratio(totalGHG, metrics.floorAreaDenominator(), "tCO2e/m2", values.HeadcountIntensityPrecision),
		PerProductionUnit: ratio(totalGHG, metrics.productionDenominator(), "tCO2e/unit", values.HeadcountIntensityPrecision),
	}
}

func ratio(totalGHG values.CO2e, denominator *decimal.Decimal, unit string, precision int32) Ratio {
	if denominator == nil {
		return Ratio{Unit: unit, Note: noteMetricUnavailable}
	}
	value := totalGHG.Tonnes().Div(*denominator).Round(precision)
	return Ratio{Value: &value, Unit: unit}
}
