package target

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

// Progress is the expected-versus-actual view of one target.
//
// ExpectedPercent is how far along the reduction path the company should be
// given elapsed time. ActualPercent is how much of the committed reduction
// has been achieved; it is nil when the target is not actually a reduction
// (denominator <= 0), with the inconsistency flagged through Notes.
type Progress struct {
	TargetID uuid.UUID `json:"target_id"`

	ExpectedPercent values.Percentage `json:"expected_percent"`
	ActualPercent   *decimal.Decimal  `json:"actual_percent"`
	OnTrack         bool              `json:"on_track"`
	Notes           []string          `json:"notes,omitempty"`
}

const (
	noteNonReductionTarget = "target emissions are not below base emissions; actual progress is undefined"
	noteMeasurementOutside = "last measured year lies outside [base_year, target_year]; progress comparison may not be meaningful"
)

// TrackProgress compares a target's measured trajectory against the linear
// path from base to target year.
//
// target_year <= base_year is an INVALID_TARGET_RANGE error: the expected
// fraction would divide by a zero or negative duration, and such a target can
// only come from malformed registration data.
func TrackProgress(t ClimateTarget) (*Progress, error) {
	if t.TargetYear <= t.BaseYear {
		return nil, errors.NewDomainError(
			errors.CodeInvalidTargetRange,
			fmt.Sprintf("target year %d must be after base year %d", t.TargetYear, t.BaseYear),
		)
	}

	progress := &Progress{TargetID: t.ID}

	if t.LastMeasuredYear < t.BaseYear || t.LastMeasuredYear > t.TargetYear {
		// Flagged, not rejected: the measurement is real data, the
		// comparison just loses meaning outside the target window.
		progress.Notes = append(progress.Notes, noteMeasurementOutside)
	}

	elapsed := decimal.NewFromInt(int64(t.LastMeasuredYear - t.BaseYear))
	duration := decimal.NewFromInt(int64(t.TargetYear - t.BaseYear))
	progress.ExpectedPercent = values.NewPercentage(elapsed.Div(duration).Mul(decimal.NewFromInt(100)))

	committed := t.BaseYearEmissions.Sub(t.TargetAbsoluteEmissions)
	if !committed.IsPositive() {
		progress.Notes = append(progress.Notes, noteNonReductionTarget)
		progress.OnTrack = false
		return progress, nil
	}

	achieved := t.BaseYearEmissions.Sub(t.LastMeasuredEmissions)
	actual := achieved.Div(committed).Mul(decimal.NewFromInt(100))
	progress.ActualPercent = &actual
	progress.OnTrack = actual.GreaterThanOrEqual(progress.ExpectedPercent.Value())

	return progress, nil
}
