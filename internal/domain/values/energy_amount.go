package values

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// mwhToGJ is the exact conversion factor: 1 MWh = 3.6 GJ.
var mwhToGJ = decimal.NewFromFloat(3.6)

// EnergyAmount represents a quantity of energy held internally in
// megawatt-hours. Disclosure consumers expect both MWh and GJ, so both views
// are exposed; the GJ view is always the fixed ×3.6 conversion.
type EnergyAmount struct {
	mwh decimal.Decimal
}

// NewEnergyAmount creates an EnergyAmount from a MWh quantity.
func NewEnergyAmount(mwh decimal.Decimal) (EnergyAmount, error) {
	if mwh.IsNegative() {
		return EnergyAmount{}, fmt.Errorf("energy quantity cannot be negative: %s", mwh)
	}
	return EnergyAmount{mwh: mwh}, nil
}

// MustNewEnergyAmount creates an EnergyAmount and panics on error (for constants/tests)
func MustNewEnergyAmount(mwh decimal.Decimal) EnergyAmount {
	e, err := NewEnergyAmount(mwh)
	if err != nil {
		panic(err)
	}
	return e
}

// MustNewEnergyAmountFromFloat creates an EnergyAmount from a float and panics on error
func MustNewEnergyAmountFromFloat(mwh float64) EnergyAmount {
	return MustNewEnergyAmount(decimal.NewFromFloat(mwh))
}

// ZeroEnergy returns a zero energy quantity.
func ZeroEnergy() EnergyAmount {
	return EnergyAmount{mwh: decimal.Zero}
}

// MWh returns the full-precision amount in megawatt-hours.
func (e EnergyAmount) MWh() decimal.Decimal {
	return e.mwh
}

// GJ returns the full-precision amount in gigajoules.
func (e EnergyAmount) GJ() decimal.Decimal {
	return e.mwh.Mul(mwhToGJ)
}

// Add sums two energy quantities.
func (e EnergyAmount) Add(other EnergyAmount) EnergyAmount {
	return EnergyAmount{mwh: e.mwh.Add(other.mwh)}
}

// IsZero checks if the quantity is zero.
func (e EnergyAmount) IsZero() bool {
	return e.mwh.IsZero()
}

// Equal checks if two quantities are numerically equal.
func (e EnergyAmount) Equal(other EnergyAmount) bool {
	return e.mwh.Equal(other.mwh)
}

// RoundedMWh returns the MWh amount at reporting precision.
func (e EnergyAmount) RoundedMWh() decimal.Decimal {
	return e.mwh.Round(EnergyPrecision)
}

// RoundedGJ returns the GJ amount at reporting precision.
func (e EnergyAmount) RoundedGJ() decimal.Decimal {
	return e.GJ().Round(EnergyPrecision)
}

// String returns the amount formatted at reporting precision (e.g. "2.000 MWh").
func (e EnergyAmount) String() string {
	return e.mwh.StringFixed(EnergyPrecision) + " MWh"
}

func (e EnergyAmount) MarshalJSON() ([]byte, error) {
	data := struct {
		MWh string `json:"mwh"`
		GJ  string `json:"gj"`
	}{
		MWh: e.RoundedMWh().String(),
		GJ:  e.RoundedGJ().String(),
	}
	return json.Marshal(data)
}

func (e *EnergyAmount) UnmarshalJSON(data []byte) error {
	var raw struct {
		MWh string `json:"mwh"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	mwh, err := decimal.NewFromString(raw.MWh)
	if err != nil {
		return fmt.Errorf("invalid energy amount: %w", err)
	}
	amount, err := NewEnergyAmount(mwh)
	if err != nil {
		return err
	}
	*e = amount
	return nil
}
