package offsets

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
)

func offsetRecord(offsetType OffsetType, amount float64, standard, verifier string, status RetirementStatus) OffsetRecord {
	return OffsetRecord{
		ID:                    uuid.New(),
		Type:                  offsetType,
		Amount:                values.MustNewCO2eFromFloat(amount),
		VintageYear:           2024,
		CertificationStandard: standard,
		VerifiedBy:            verifier,
		RetirementStatus:      status,
	}
}

func TestClassifySplitsRemovalsFromAvoidance(t *testing.T) {
	records := []OffsetRecord{
		offsetRecord(TypeReforestation, 10.0, "Gold Standard", "Verra", StatusRetired),
		offsetRecord(TypeDirectAirCapture, 5.0, "Gold Standard", "Verra", StatusRetired),
		offsetRecord(TypeRenewableEnergy, 7.5, "Gold Standard", "Verra", StatusRetired),
		offsetRecord(TypeMethaneCapture, 2.5, "Gold Standard", "Verra", StatusRetired),
	}

	report := Classify(records)

	assert.True(t, report.Removals.Tonnes().Equal(decimal.NewFromFloat(15.0)))
	assert.True(t, report.AvoidedEmissions.Tonnes().Equal(decimal.NewFromFloat(10.0)))
	assert.True(t, report.Total.Tonnes().Equal(decimal.NewFromFloat(25.0)))
	assert.Equal(t, 2, report.RemovalCount)
	assert.Equal(t, 2, report.AvoidanceCount)
	assert.True(t, report.HasOffsets)
	assert.True(t, report.AllCertified)
	assert.True(t, report.AllVerified)
	assert.True(t, report.AllRetired)
}

func TestClassifyRemovalSetMembership(t *testing.T) {
	tests := []struct {
		offsetType OffsetType
		isRemoval  bool
	}{
		{TypeReforestation, true},
		{TypeAfforestation, true},
		{TypeDirectAirCapture, true},
		{TypeSoilSequestration, true},
		{TypeBiochar, true},
		{TypeEnhancedWeather, true},
		{TypeRenewableEnergy, false},
		{TypeCookstoves, false},
		{TypeMethaneCapture, false},
		{TypeAvoidedDeforest, false},
		{OffsetType("something_new"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.offsetType), func(t *testing.T) {
			assert.Equal(t, tt.isRemoval, tt.offsetType.IsRemoval())
		})
	}
}

func TestClassifyQualityFlagsANDReduce(t *testing.T) {
	records := []OffsetRecord{
		offsetRecord(TypeReforestation, 1.0, "Gold Standard", "Verra", StatusRetired),
		offsetRecord(TypeReforestation, 1.0, "", "Verra", StatusHeld),
	}

	report := Classify(records)

	assert.False(t, report.AllCertified)
	assert.True(t, report.AllVerified)
	assert.False(t, report.AllRetired)
}

func TestClassifyEmptyInputIsVacuouslyTrue(t *testing.T) {
	report := Classify(nil)

	require.NotNil(t, report)
	assert.False(t, report.HasOffsets)
	assert.True(t, report.Total.IsZero())

	// vacuous truth: callers must read this together with HasOffsets
	assert.True(t, report.AllCertified)
	assert.True(t, report.AllVerified)
	assert.True(t, report.AllRetired)
}
