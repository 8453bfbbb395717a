package energy

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Source identifies where consumed energy came from.
type Source string

// Energy sources
const (
	SourceElectricity Source = "electricity"
	SourceFuel        Source = "fuel"
	SourceSteam       Source = "steam"
)

// ParseSource validates a raw source string.
func ParseSource(raw string) (Source, error) {
	switch Source(raw) {
	case SourceElectricity, SourceFuel, SourceSteam:
		return Source(raw), nil
	default:
		return "", fmt.Errorf("unknown energy source %q", raw)
	}
}

func (s Source) String() string {
	return string(s)
}

// Record is one energy consumption line derived from the activity sub-tables
// (stationary combustion, electricity, steam).
//
// Renewability resolution: fuel rows carry a FuelType and are classified by
// the static renewability table; electricity and steam rows use the Renewable
// flag, which reflects the supply contract and cannot be derived statically.
type Record struct {
	Source    Source
	Quantity  decimal.Decimal
	Unit      Unit
	FuelType  FuelType // required when Source == SourceFuel
	Renewable bool     // used when no fuel type applies
}

// IsRenewable resolves the record's renewability. Fuel rows always go
// through the renewability table, so a fuel row missing its fuel type is an
// UNKNOWN_FUEL_TYPE error rather than a silent non-renewable default.
func (r Record) IsRenewable() (bool, error) {
	if r.Source == SourceFuel {
		return IsRenewableFuel(r.FuelType)
	}
	return r.Renewable, nil
}
