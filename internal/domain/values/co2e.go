package values

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CO2e represents a quantity of greenhouse gas in tonnes of CO2-equivalent.
// Internal computation keeps full decimal precision; rounding happens only
// at the reporting boundary via Rounded.
type CO2e struct {
	tonnes decimal.Decimal
}

// NewCO2e creates a CO2e quantity. Emission quantities are never negative.
func NewCO2e(tonnes decimal.Decimal) (CO2e, error) {
	if tonnes.IsNegative() {
		return CO2e{}, fmt.Errorf("co2e quantity cannot be negative: %s", tonnes)
	}
	return CO2e{tonnes: tonnes}, nil
}

// NewCO2eFromString creates a CO2e quantity from a decimal string.
func NewCO2eFromString(tonnes string) (CO2e, error) {
	dec, err := decimal.NewFromString(tonnes)
	if err != nil {
		return CO2e{}, fmt.Errorf("invalid co2e amount: %w", err)
	}
	return NewCO2e(dec)
}

// NewCO2eFromFloat creates a CO2e quantity from a float64.
// Note: Use with caution due to floating point precision issues
func NewCO2eFromFloat(tonnes float64) (CO2e, error) {
	return NewCO2e(decimal.NewFromFloat(tonnes))
}

// MustNewCO2e creates a CO2e quantity and panics on error (for constants/tests)
func MustNewCO2e(tonnes decimal.Decimal) CO2e {
	c, err := NewCO2e(tonnes)
	if err != nil {
		panic(err)
	}
	return c
}

// MustNewCO2eFromFloat creates a CO2e quantity from a float and panics on error
func MustNewCO2eFromFloat(tonnes float64) CO2e {
	c, err := NewCO2eFromFloat(tonnes)
	if err != nil {
		panic(err)
	}
	return c
}

// ZeroCO2e returns a zero emission quantity.
func ZeroCO2e() CO2e {
	return CO2e{tonnes: decimal.Zero}
}

// Tonnes returns the decimal amount in tonnes CO2e.
func (c CO2e) Tonnes() decimal.Decimal {
	return c.tonnes
}

// Add sums two CO2e quantities.
func (c CO2e) Add(other CO2e) CO2e {
	return CO2e{tonnes: c.tonnes.Add(other.tonnes)}
}

// Sub subtracts other from this quantity. The result may be negative and is
// returned as a raw decimal since a deficit is not itself an emission quantity.
func (c CO2e) Sub(other CO2e) decimal.Decimal {
	return c.tonnes.Sub(other.tonnes)
}

// IsZero checks if the quantity is zero.
func (c CO2e) IsZero() bool {
	return c.tonnes.IsZero()
}

// IsPositive checks if the quantity is strictly positive.
func (c CO2e) IsPositive() bool {
	return c.tonnes.IsPositive()
}

// Equal checks if two quantities are numerically equal.
func (c CO2e) Equal(other CO2e) bool {
	return c.tonnes.Equal(other.tonnes)
}

// GreaterThan reports whether this quantity exceeds other.
func (c CO2e) GreaterThan(other CO2e) bool {
	return c.tonnes.GreaterThan(other.tonnes)
}

// Rounded returns the quantity rounded to the reporting precision for tonnes.
func (c CO2e) Rounded() decimal.Decimal {
	return c.tonnes.Round(TonnesPrecision)
}

// String returns the quantity formatted at reporting precision (e.g. "35.000 tCO2e").
func (c CO2e) String() string {
	return c.tonnes.StringFixed(TonnesPrecision) + " tCO2e"
}

func (c CO2e) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Rounded().String())
}

func (c *CO2e) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	co2e, err := NewCO2eFromString(raw)
	if err != nil {
		return err
	}
	*c = co2e
	return nil
}
