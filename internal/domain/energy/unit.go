package energy

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

// Unit is a physical energy unit accepted by the converter.
type Unit string

// Supported energy units
const (
	UnitKWh   Unit = "kWh"
	UnitMWh   Unit = "MWh"
	UnitMMBtu Unit = "MMBtu"
	UnitGJ    Unit = "GJ"
	UnitMJ    Unit = "MJ"
)

var one = decimal.NewFromInt(1)

// conversion is a rational factor to MWh, applied as multiply-then-divide so
// terminating conversions (3600 MJ -> 1 MWh) stay exact instead of passing
// through a truncated reciprocal.
type conversion struct {
	num decimal.Decimal
	den decimal.Decimal
}

// Factors to MWh: 1 MWh = 1000 kWh = 3.6 GJ = 3600 MJ; 1 MMBtu = 0.293071 MWh.
var mwhConversionByUnit = map[Unit]conversion{
	UnitKWh:   {num: one, den: decimal.NewFromInt(1000)},
	UnitMWh:   {num: one, den: one},
	UnitMMBtu: {num: decimal.RequireFromString("0.293071"), den: one},
	UnitGJ:    {num: one, den: decimal.RequireFromString("3.6")},
	UnitMJ:    {num: one, den: decimal.NewFromInt(3600)},
}

// ConvertEnergy converts a quantity in any supported unit to MWh. The unit
// set is closed: anything else is an UNSUPPORTED_UNIT error, never a silently
// assumed default.
func ConvertEnergy(quantity decimal.Decimal, unit Unit) (values.EnergyAmount, error) {
	factor, ok := mwhConversionByUnit[unit]
	if !ok {
		return values.EnergyAmount{}, errors.NewDomainError(
			errors.CodeUnsupportedUnit,
			fmt.Sprintf("energy unit %q is not supported", unit),
		)
	}

	mwh := quantity.Mul(factor.num)
	if !factor.den.Equal(one) {
		mwh = mwh.Div(factor.den)
	}
	return values.NewEnergyAmount(mwh)
}

// ParseUnit validates a raw unit string against the supported set.
func ParseUnit(raw string) (Unit, error) {
	unit := Unit(raw)
	if _, ok := mwhConversionByUnit[unit]; !ok {
		return "", errors.NewDomainError(
			errors.CodeUnsupportedUnit,
			fmt.Sprintf("energy unit %q is not supported", raw),
		)
	}
	return unit, nil
}

func (u Unit) String() string {
	return string(u)
}
