package target

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

func TestTrackProgressScenario(t *testing.T) {
	// base 2020 at 100 t, target 2030 at 50 t, measured 2025 at 80 t
	// => expected 50.0%, actual 40.0%, not on track
	target := ClimateTarget{
		ID:                      uuid.New(),
		BaseYear:                2020,
		BaseYearEmissions:       values.MustNewCO2eFromFloat(100),
		TargetYear:              2030,
		TargetAbsoluteEmissions: values.MustNewCO2eFromFloat(50),
		LastMeasuredYear:        2025,
		LastMeasuredEmissions:   values.MustNewCO2eFromFloat(80),
	}

	progress, err := TrackProgress(target)
	require.NoError(t, err)

	assert.Equal(t, "50.0", progress.ExpectedPercent.Rounded().StringFixed(1))
	require.NotNil(t, progress.ActualPercent)
	assert.Equal(t, "40", progress.ActualPercent.String())
	assert.False(t, progress.OnTrack)
	assert.Empty(t, progress.Notes)
}

func TestTrackProgressOnTrack(t *testing.T) {
	target := ClimateTarget{
		ID:                      uuid.New(),
		BaseYear:                2020,
		BaseYearEmissions:       values.MustNewCO2eFromFloat(100),
		TargetYear:              2030,
		TargetAbsoluteEmissions: values.MustNewCO2eFromFloat(50),
		LastMeasuredYear:        2025,
		LastMeasuredEmissions:   values.MustNewCO2eFromFloat(70),
	}

	progress, err := TrackProgress(target)
	require.NoError(t, err)

	require.NotNil(t, progress.ActualPercent)
	assert.Equal(t, "60", progress.ActualPercent.String())
	assert.True(t, progress.OnTrack)
}

func TestTrackProgressInvalidRange(t *testing.T) {
	tests := []struct {
		name       string
		baseYear   int
		targetYear int
	}{
		{name: "equal years", baseYear: 2025, targetYear: 2025},
		{name: "target before base", baseYear: 2030, targetYear: 2020},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := ClimateTarget{
				BaseYear:   tt.baseYear,
				TargetYear: tt.targetYear,
			}
			_, err := TrackProgress(target)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidTargetRange(err))
		})
	}
}

func TestTrackProgressMeasurementAtTargetYear(t *testing.T) {
	target := ClimateTarget{
		BaseYear:                2020,
		BaseYearEmissions:       values.MustNewCO2eFromFloat(100),
		TargetYear:              2030,
		TargetAbsoluteEmissions: values.MustNewCO2eFromFloat(50),
		LastMeasuredYear:        2030,
		LastMeasuredEmissions:   values.MustNewCO2eFromFloat(50),
	}

	progress, err := TrackProgress(target)
	require.NoError(t, err)

	// expected fraction is exactly 1.0 at the target year
	assert.True(t, progress.ExpectedPercent.Value().Equal(decimal.NewFromInt(100)))
	require.NotNil(t, progress.ActualPercent)
	assert.True(t, progress.ActualPercent.Equal(decimal.NewFromInt(100)))
	assert.True(t, progress.OnTrack)
}

func TestTrackProgressNonReductionTarget(t *testing.T) {
	target := ClimateTarget{
		BaseYear:                2020,
		BaseYearEmissions:       values.MustNewCO2eFromFloat(100),
		TargetYear:              2030,
		TargetAbsoluteEmissions: values.MustNewCO2eFromFloat(120),
		LastMeasuredYear:        2025,
		LastMeasuredEmissions:   values.MustNewCO2eFromFloat(90),
	}

	progress, err := TrackProgress(target)
	require.NoError(t, err)

	// null actual with a flagged note, never a misleading ratio
	assert.Nil(t, progress.ActualPercent)
	assert.Contains(t, progress.Notes, noteNonReductionTarget)
	assert.False(t, progress.OnTrack)
}

func TestTrackProgressMeasurementOutsideWindow(t *testing.T) {
	target := ClimateTarget{
		BaseYear:                2020,
		BaseYearEmissions:       values.MustNewCO2eFromFloat(100),
		TargetYear:              2030,
		TargetAbsoluteEmissions: values.MustNewCO2eFromFloat(50),
		LastMeasuredYear:        2035,
		LastMeasuredEmissions:   values.MustNewCO2eFromFloat(40),
	}

	progress, err := TrackProgress(target)
	require.NoError(t, err)

	assert.Contains(t, progress.Notes, noteMeasurementOutside)
	require.NotNil(t, progress.ActualPercent)
}

func TestNewClimateTargetDerivesAbsolute(t *testing.T) {
	target, err := NewClimateTarget(
		uuid.New(),
		2020,
		values.MustNewCO2eFromFloat(200),
		2030,
		decimal.NewFromInt(50),
	)
	require.NoError(t, err)
	assert.True(t, target.TargetAbsoluteEmissions.Tonnes().Equal(decimal.NewFromInt(100)))
}

func TestNewClimateTargetRejectsBadPercent(t *testing.T) {
	_, err := NewClimateTarget(
		uuid.New(),
		2020,
		values.MustNewCO2eFromFloat(200),
		2030,
		decimal.NewFromInt(150),
	)
	assert.Error(t, err)
}
