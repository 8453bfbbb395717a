package emissions

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

func testRecord(t *testing.T, periodID uuid.UUID, category ActivityCategory, scope Scope, co2e, biogenic float64) ActivityEmissionRecord {
	t.Helper()
	record, err := NewActivityEmissionRecord(
		periodID,
		category,
		scope,
		values.MustNewCO2eFromFloat(co2e),
		values.MustNewCO2eFromFloat(biogenic),
	)
	require.NoError(t, err)
	return *record
}

func TestAggregateScenario(t *testing.T) {
	// Scope 1 10.0, Scope 2 5.0, Scope 3 20.0 => total 35.0 with shares
	// 28.6 / 14.3 / 57.1
	periodID := uuid.New()
	records := []ActivityEmissionRecord{
		testRecord(t, periodID, CategoryStationaryCombustion, Scope1, 10.0, 0),
		testRecord(t, periodID, CategoryPurchasedElectricity, Scope2, 5.0, 0),
		testRecord(t, periodID, CategoryBusinessTravel, Scope3, 20.0, 0),
	}

	report, err := Aggregate(records, Scope2MethodLocationBased)
	require.NoError(t, err)

	assert.True(t, report.TotalGHG.Tonnes().Equal(decimal.NewFromFloat(35.0)))
	assert.Equal(t, "28.6", report.Scope1.ShareOfTotal.Rounded().StringFixed(1))
	assert.Equal(t, "14.3", report.Scope2.ShareOfTotal.Rounded().StringFixed(1))
	assert.Equal(t, "57.1", report.Scope3.ShareOfTotal.Rounded().StringFixed(1))
	assert.True(t, report.BiogenicCO2.IsZero())
	assert.Equal(t, 3, report.TotalRecords)
}

func TestAggregateScopeTotalsSumToTotalGHG(t *testing.T) {
	periodID := uuid.New()
	records := []ActivityEmissionRecord{
		testRecord(t, periodID, CategoryStationaryCombustion, Scope1, 1.25, 0),
		testRecord(t, periodID, CategoryMobileCombustion, Scope1, 2.75, 0),
		testRecord(t, periodID, CategoryPurchasedHeatSteam, Scope2, 0.5, 0),
		testRecord(t, periodID, CategoryWasteGenerated, Scope3, 7.125, 0),
	}

	report, err := Aggregate(records, Scope2MethodMarketBased)
	require.NoError(t, err)

	sum := report.Scope1.Total.Add(report.Scope2.Total).Add(report.Scope3.Total)
	assert.True(t, sum.Equal(report.TotalGHG))

	// category subtotals within a scope sum to the scope total
	var scope1Sum decimal.Decimal
	for _, breakdown := range report.Scope1.Categories {
		scope1Sum = scope1Sum.Add(breakdown.Total.Tonnes())
	}
	assert.True(t, scope1Sum.Equal(report.Scope1.Total.Tonnes()))
}

func TestAggregateIdempotent(t *testing.T) {
	periodID := uuid.New()
	records := []ActivityEmissionRecord{
		testRecord(t, periodID, CategoryStationaryCombustion, Scope1, 3.3, 0.1),
		testRecord(t, periodID, CategoryStationaryCombustion, Scope1, 1.7, 0),
		testRecord(t, periodID, CategoryPurchasedElectricity, Scope2, 2.0, 0),
	}

	first, err := Aggregate(records, Scope2MethodLocationBased)
	require.NoError(t, err)
	second, err := Aggregate(records, Scope2MethodLocationBased)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateEmptyInput(t *testing.T) {
	_, err := Aggregate(nil, Scope2MethodLocationBased)
	require.Error(t, err)
	assert.True(t, errors.IsEmptyInput(err))
}

func TestAggregateRequiresDesignatedMethod(t *testing.T) {
	periodID := uuid.New()
	records := []ActivityEmissionRecord{
		testRecord(t, periodID, CategoryStationaryCombustion, Scope1, 1.0, 0),
	}

	_, err := Aggregate(records, Scope2MethodUnspecified)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
}

func TestAggregateScopeMismatch(t *testing.T) {
	periodID := uuid.New()
	record := testRecord(t, periodID, CategoryBusinessTravel, Scope3, 1.0, 0)
	record.Scope = Scope1 // corrupt the record the way a bad upstream join would

	_, err := Aggregate([]ActivityEmissionRecord{record}, Scope2MethodLocationBased)
	require.Error(t, err)
	assert.True(t, errors.IsScopeMismatch(err))
}

func TestAggregateMixedPeriods(t *testing.T) {
	records := []ActivityEmissionRecord{
		testRecord(t, uuid.New(), CategoryStationaryCombustion, Scope1, 1.0, 0),
		testRecord(t, uuid.New(), CategoryBusinessTravel, Scope3, 1.0, 0),
	}

	_, err := Aggregate(records, Scope2MethodLocationBased)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
}

func TestAggregateZeroTotalPercentages(t *testing.T) {
	periodID := uuid.New()
	records := []ActivityEmissionRecord{
		testRecord(t, periodID, CategoryStationaryCombustion, Scope1, 0, 0),
	}

	report, err := Aggregate(records, Scope2MethodLocationBased)
	require.NoError(t, err)

	assert.True(t, report.TotalGHG.IsZero())
	assert.True(t, report.Scope1.ShareOfTotal.IsZero())
	assert.True(t, report.Scope2.ShareOfTotal.IsZero())
	assert.True(t, report.Scope3.ShareOfTotal.IsZero())
}

func TestAggregateDualScope2Methods(t *testing.T) {
	periodID := uuid.New()
	location := testRecord(t, periodID, CategoryPurchasedElectricity, Scope2, 8.0, 0).
		WithScope2Method(Scope2MethodLocationBased)
	market := testRecord(t, periodID, CategoryPurchasedElectricity, Scope2, 3.0, 0).
		WithScope2Method(Scope2MethodMarketBased)
	steam := testRecord(t, periodID, CategoryPurchasedHeatSteam, Scope2, 1.0, 0)

	report, err := Aggregate([]ActivityEmissionRecord{location, market, steam}, Scope2MethodLocationBased)
	require.NoError(t, err)

	// method-neutral steam counts under both methods
	assert.True(t, report.Scope2LocationBased.Tonnes().Equal(decimal.NewFromFloat(9.0)))
	assert.True(t, report.Scope2MarketBased.Tonnes().Equal(decimal.NewFromFloat(4.0)))
	assert.True(t, report.Scope2.Total.Tonnes().Equal(decimal.NewFromFloat(9.0)))
	assert.True(t, report.TotalGHG.Tonnes().Equal(decimal.NewFromFloat(9.0)))

	// same input, market designated
	marketReport, err := Aggregate([]ActivityEmissionRecord{location, market, steam}, Scope2MethodMarketBased)
	require.NoError(t, err)
	assert.True(t, marketReport.Scope2.Total.Tonnes().Equal(decimal.NewFromFloat(4.0)))
	assert.True(t, marketReport.TotalGHG.Tonnes().Equal(decimal.NewFromFloat(4.0)))
}

func TestAggregateOffMethodScope2StillCountsAsCoverage(t *testing.T) {
	periodID := uuid.New()
	market := testRecord(t, periodID, CategoryPurchasedElectricity, Scope2, 12.0, 0).
		WithScope2Method(Scope2MethodMarketBased)

	report, err := Aggregate([]ActivityEmissionRecord{market}, Scope2MethodLocationBased)
	require.NoError(t, err)

	// excluded from the designated total, but the scope was still measured
	assert.True(t, report.Scope2.Total.IsZero())
	assert.Equal(t, 0, report.Scope2.RecordCount)
	assert.True(t, report.Scope2MarketBased.Tonnes().Equal(decimal.NewFromFloat(12.0)))
	assert.Equal(t, 1, report.Scope2AllMethodRecords)
	assert.True(t, report.HasScope2())
}

func TestAggregateRejectsNonReportableScope(t *testing.T) {
	record := ActivityEmissionRecord{
		ID:                uuid.New(),
		ReportingPeriodID: uuid.New(),
		Category:          CategoryCarbonOffsets,
		Scope:             ScopeOther,
		CO2eTotal:         values.MustNewCO2eFromFloat(5.0),
		BiogenicCO2:       values.ZeroCO2e(),
	}

	_, err := Aggregate([]ActivityEmissionRecord{record}, Scope2MethodLocationBased)
	require.Error(t, err)
	assert.True(t, errors.IsScopeMismatch(err))
}

func TestAggregateBiogenicTrackedSeparately(t *testing.T) {
	periodID := uuid.New()
	records := []ActivityEmissionRecord{
		testRecord(t, periodID, CategoryStationaryCombustion, Scope1, 10.0, 2.5),
	}

	report, err := Aggregate(records, Scope2MethodLocationBased)
	require.NoError(t, err)

	// biogenic never enters the scope totals
	assert.True(t, report.TotalGHG.Tonnes().Equal(decimal.NewFromFloat(10.0)))
	assert.True(t, report.BiogenicCO2.Tonnes().Equal(decimal.NewFromFloat(2.5)))
}

func TestNewActivityEmissionRecordRejectsMismatch(t *testing.T) {
	_, err := NewActivityEmissionRecord(
		uuid.New(),
		CategoryPurchasedElectricity,
		Scope1,
		values.ZeroCO2e(),
		values.ZeroCO2e(),
	)
	require.Error(t, err)
	assert.True(t, errors.IsScopeMismatch(err))
}
