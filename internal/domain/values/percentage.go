package values

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percentage represents a share of a whole expressed in percent. Shares are
// always computed through Share so the zero-denominator case is handled in
// exactly one place.
type Percentage struct {
	value decimal.Decimal
}

// Share computes part/whole as a percentage. A zero or negative whole yields
// exactly 0% — a period with no emissions has no distribution, and callers
// must never see NaN or a division panic.
func Share(part, whole decimal.Decimal) Percentage {
	if whole.IsZero() || whole.IsNegative() {
		return Percentage{value: decimal.Zero}
	}
	return Percentage{value: part.Div(whole).Mul(hundred)}
}

// NewPercentage wraps an already-computed percent value.
func NewPercentage(value decimal.Decimal) Percentage {
	return Percentage{value: value}
}

// Value returns the full-precision percent value.
func (p Percentage) Value() decimal.Decimal {
	return p.value
}

// Rounded returns the percent value at reporting precision.
func (p Percentage) Rounded() decimal.Decimal {
	return p.value.Round(PercentPrecision)
}

// IsZero checks if the percentage is exactly zero.
func (p Percentage) IsZero() bool {
	return p.value.IsZero()
}

// String returns the percentage formatted at reporting precision (e.g. "28.6%").
func (p Percentage) String() string {
	return p.value.StringFixed(PercentPrecision) + "%"
}

func (p Percentage) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Rounded().String())
}

func (p *Percentage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return err
	}
	*p = Percentage{value: value}
	return nil
}
