package intensity

import (
	"github.com/shopspring/decimal"
)

// CompanyMetrics carries the optional business denominators intensity ratios
// are derived from. A nil field means the company did not report that metric;
// a non-positive value is treated the same way, since it cannot serve as a
// denominator.
type CompanyMetrics struct {
	Revenue         *decimal.Decimal
	Employees       *int
	FloorAreaM2     *decimal.Decimal
	ProductionUnits *decimal.Decimal
}

// revenueDenominator returns the usable revenue denominator, or nil.
func (m CompanyMetrics) revenueDenominator() *decimal.Decimal {
	if m.Revenue == nil || !m.Revenue.IsPositive() {
		return nil
	}
	return m.Revenue
}

func (m CompanyMetrics) employeeDenominator() *decimal.Decimal {
	if m.Employees == nil || *m.Employees <= 0 {
		return nil
	}
	d := decimal.NewFromInt(int64(*m.Employees))
	return &d
}

func (m CompanyMetrics) floorAreaDenominator() *decimal.Decimal {
	if m.FloorAreaM2 == nil || !m.FloorAreaM2.IsPositive() {
		return nil
	}
	return m.FloorAreaM2
}

func (m CompanyMetrics) productionDenominator() *decimal.Decimal {
	if m.ProductionUnits == nil || !m.ProductionUnits.IsPositive() {
		return nil
	}
	return m.ProductionUnits
}
