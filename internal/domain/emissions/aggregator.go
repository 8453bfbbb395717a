package emissions

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

// CategoryBreakdown is one category's contribution within a scope.
type CategoryBreakdown struct {
	Category     ActivityCategory  `json:"category"`
	Total        values.CO2e       `json:"total"`
	RecordCount  int               `json:"record_count"`
	ShareOfScope values.Percentage `json:"share_of_scope"`
}

// ScopeSummary is one scope's aggregated view. For Scope 2 it reflects the
// designated accounting method.
type ScopeSummary struct {
	Scope        Scope               `json:"scope"`
	Total        values.CO2e         `json:"total"`
	RecordCount  int                 `json:"record_count"`
	Categories   []CategoryBreakdown `json:"categories"`
	ShareOfTotal values.Percentage   `json:"share_of_total"`
}

// ScopeReport is the aggregation result for one reporting period. Biogenic
// CO2 is excluded from the scope totals per disclosure convention and carried
// only as a supplementary figure.
type ScopeReport struct {
	ReportingPeriodID      uuid.UUID    `json:"reporting_period_id"`
	DesignatedScope2Method Scope2Method `json:"designated_scope_2_method"`

	Scope1 ScopeSummary `json:"scope_1"`
	Scope2 ScopeSummary `json:"scope_2"`
	Scope3 ScopeSummary `json:"scope_3"`

	// Both Scope 2 method totals are always computed; the designated one is
	// the one inside Scope2 and TotalGHG.
	Scope2LocationBased values.CO2e `json:"scope_2_location_based"`
	Scope2MarketBased   values.CO2e `json:"scope_2_market_based"`

	// Scope2AllMethodRecords counts every Scope 2 record regardless of its
	// accounting method. Presence of Scope 2 data must not depend on which
	// method the caller designated.
	Scope2AllMethodRecords int `json:"scope_2_all_method_records"`

	TotalGHG     values.CO2e `json:"total_ghg"`
	BiogenicCO2  values.CO2e `json:"biogenic_co2"`
	TotalRecords int         `json:"total_records"`
}

// scopeAccumulator collects totals and per-category buckets for one scope.
type scopeAccumulator struct {
	total      values.CO2e
	count      int
	byCategory map[ActivityCategory]*CategoryBreakdown
}

func newScopeAccumulator() *scopeAccumulator {
	return &scopeAccumulator{
		total:      values.ZeroCO2e(),
		byCategory: make(map[ActivityCategory]*CategoryBreakdown),
	}
}

func (a *scopeAccumulator) add(record ActivityEmissionRecord) {
	a.total = a.total.Add(record.CO2eTotal)
	a.count++

	bucket, ok := a.byCategory[record.Category]
	if !ok {
		bucket = &CategoryBreakdown{Category: record.Category, Total: values.ZeroCO2e()}
		a.byCategory[record.Category] = bucket
	}
	bucket.Total = bucket.Total.Add(record.CO2eTotal)
	bucket.RecordCount++
}

func (a *scopeAccumulator) summary(scope Scope, totalGHG values.CO2e) ScopeSummary {
	categories := make([]CategoryBreakdown, 0, len(a.byCategory))
	for _, bucket := range a.byCategory {
		bucket.ShareOfScope = values.Share(bucket.Total.Tonnes(), a.total.Tonnes())
		categories = append(categories, *bucket)
	}
	// Stable ordering so repeated aggregation of the same input is
	// bit-identical.
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	return ScopeSummary{
		Scope:        scope,
		Total:        a.total,
		RecordCount:  a.count,
		Categories:   categories,
		ShareOfTotal: values.Share(a.total.Tonnes(), totalGHG.Tonnes()),
	}
}

// Aggregate groups a reporting period's records by scope and category. The
// caller designates which Scope 2 method feeds the Scope 1+2+3 total; both
// method totals are reported regardless.
//
// An empty collection is an EMPTY_INPUT error: a period with genuinely zero
// emissions must be represented by at least one zero-valued record, so the
// two cases stay distinguishable downstream.
func Aggregate(records []ActivityEmissionRecord, designated Scope2Method) (*ScopeReport, error) {
	if designated != Scope2MethodLocationBased && designated != Scope2MethodMarketBased {
		return nil, errors.NewValidationError(
			errors.CodeValidation,
			"a designated scope 2 method (location_based or market_based) is required",
		)
	}
	if len(records) == 0 {
		return nil, errors.NewDomainError(
			errors.CodeEmptyInput,
			"no emission records for reporting period; zero emissions require an explicit zero-valued record",
		)
	}

	periodID := records[0].ReportingPeriodID
	scope1 := newScopeAccumulator()
	scope2 := newScopeAccumulator()
	scope3 := newScopeAccumulator()
	scope2Location := values.ZeroCO2e()
	scope2Market := values.ZeroCO2e()
	scope2Records := 0
	biogenic := values.ZeroCO2e()

	for _, record := range records {
		expected, err := Classify(record.Category)
		if err != nil {
			return nil, err
		}
		if expected != record.Scope {
			return nil, errors.NewDomainError(
				errors.CodeScopeMismatch,
				fmt.Sprintf("record %s: category %q classifies as %s, record claims %s",
					record.ID, record.Category, expected, record.Scope),
			)
		}
		if !record.Scope.IsReportable() {
			return nil, errors.NewDomainError(
				errors.CodeScopeMismatch,
				fmt.Sprintf("record %s: category %q classifies outside the reporting scopes",
					record.ID, record.Category),
			)
		}
		if record.ReportingPeriodID != periodID {
			return nil, errors.NewValidationError(
				errors.CodeValidation,
				fmt.Sprintf("record %s belongs to period %s, expected %s",
					record.ID, record.ReportingPeriodID, periodID),
			)
		}

		biogenic = biogenic.Add(record.BiogenicCO2)

		switch record.Scope {
		case Scope1:
			scope1.add(record)
		case Scope2:
			scope2Records++
			switch record.Scope2Method {
			case Scope2MethodLocationBased:
				scope2Location = scope2Location.Add(record.CO2eTotal)
			case Scope2MethodMarketBased:
				scope2Market = scope2Market.Add(record.CO2eTotal)
			default:
				// Method-neutral Scope 2 counts under both methods.
				scope2Location = scope2Location.Add(record.CO2eTotal)
				scope2Market = scope2Market.Add(record.CO2eTotal)
			}
			if record.Scope2Method == designated || record.Scope2Method == Scope2MethodUnspecified {
				scope2.add(record)
			}
		case Scope3:
			scope3.add(record)
		}
	}

	totalGHG := scope1.total.Add(scope2.total).Add(scope3.total)

	report := &ScopeReport{
		ReportingPeriodID:      periodID,
		DesignatedScope2Method: designated,
		Scope1:                 scope1.summary(Scope1, totalGHG),
		Scope2:                 scope2.summary(Scope2, totalGHG),
		Scope3:                 scope3.summary(Scope3, totalGHG),
		Scope2LocationBased:    scope2Location,
		Scope2MarketBased:      scope2Market,
		Scope2AllMethodRecords: scope2Records,
		TotalGHG:               totalGHG,
		BiogenicCO2:            biogenic,
		TotalRecords:           len(records),
	}
	return report, nil
}

// HasScope1 reports whether any Scope 1 records were aggregated.
func (r *ScopeReport) HasScope1() bool { return r.Scope1.RecordCount > 0 }

// HasScope2 reports whether any Scope 2 records were aggregated under either
// accounting method. A period measured only under the non-designated method
// still has Scope 2 coverage.
func (r *ScopeReport) HasScope2() bool { return r.Scope2AllMethodRecords > 0 }

// HasScope3 reports whether any Scope 3 records were aggregated.
func (r *ScopeReport) HasScope3() bool { return r.Scope3.RecordCount > 0 }
