package emissions

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

// ActivityEmissionRecord is one activity's already-computed emission result
// for a reporting period. The CO2e and biogenic values are produced by the
// upstream factor-calculation collaborator; records are immutable once handed
// to the aggregator.
type ActivityEmissionRecord struct {
	ID                uuid.UUID
	ReportingPeriodID uuid.UUID
	Category          ActivityCategory
	Scope             Scope

	// Scope2Method tags Scope 2 electricity records with the accounting
	// method their factor was derived from. Method-neutral Scope 2 records
	// (purchased heat/steam) leave it unspecified and count toward both
	// method totals.
	Scope2Method Scope2Method

	CO2eTotal   values.CO2e
	BiogenicCO2 values.CO2e
}

// NewActivityEmissionRecord builds a record and enforces category/scope
// consistency. A record whose scope disagrees with the category table is a
// data-integrity error from upstream, surfaced rather than silently corrected.
func NewActivityEmissionRecord(
	periodID uuid.UUID,
	category ActivityCategory,
	scope Scope,
	co2eTotal values.CO2e,
	biogenicCO2 values.CO2e,
) (*ActivityEmissionRecord, error) {
	expected, err := Classify(category)
	if err != nil {
		return nil, err
	}
	if !scope.IsReportable() || expected != scope {
		return nil, errors.NewDomainError(
			errors.CodeScopeMismatch,
			fmt.Sprintf("category %q classifies as %s, record claims %s", category, expected, scope),
		)
	}

	return &ActivityEmissionRecord{
		ID:                uuid.New(),
		ReportingPeriodID: periodID,
		Category:          category,
		Scope:             scope,
		CO2eTotal:         co2eTotal,
		BiogenicCO2:       biogenicCO2,
	}, nil
}

// WithScope2Method returns a copy of the record tagged with a Scope 2 method.
// Only meaningful for purchased electricity records.
func (r ActivityEmissionRecord) WithScope2Method(method Scope2Method) ActivityEmissionRecord {
	r.Scope2Method = method
	return r
}
