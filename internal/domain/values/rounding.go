package values

// Reporting-boundary rounding precision, in decimal places. Internal
// computation always retains full precision; these apply only when a result
// object is handed to the presentation layer.
const (
	// TonnesPrecision applies to emission totals in tonnes CO2e.
	TonnesPrecision int32 = 3

	// PercentPrecision applies to percentage distributions and shares.
	PercentPrecision int32 = 1

	// EnergyPrecision applies to energy totals in MWh and GJ.
	EnergyPrecision int32 = 3

	// RevenueIntensityPrecision applies to emissions-per-revenue ratios,
	// which carry large denominators.
	RevenueIntensityPrecision int32 = 6

	// HeadcountIntensityPrecision applies to per-employee, per-floor-area
	// and per-production-unit ratios.
	HeadcountIntensityPrecision int32 = 3
)
