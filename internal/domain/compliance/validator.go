package compliance

import (
	"fmt"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/emissions"
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/offsets"
)

// Check names, in the order the validator runs them.
const (
	CheckScope1Coverage     = "scope_1_coverage"
	CheckScope2Coverage     = "scope_2_coverage"
	CheckScope3Coverage     = "scope_3_coverage"
	CheckOverallCoverage    = "overall_scope_coverage"
	CheckBiogenicDisclosure = "biogenic_disclosure"
	CheckOffsetQuality      = "offset_quality"
	CheckOffsetRetirement   = "offset_retirement"
	CheckOffsetMagnitude    = "offset_magnitude"
)

const msgInsufficientData = "insufficient data for compliance reporting"

// Report is the result of one validation run. Findings keep their emission
// order so the disclosure renders them deterministically.
type Report struct {
	Findings     []Finding `json:"findings"`
	IsCompliant  bool      `json:"is_compliant"`
	ErrorCount   int       `json:"error_count"`
	WarningCount int       `json:"warning_count"`
}

// Validate runs the disclosure rule set over an aggregated scope report and
// the period's offsets. It never mutates its inputs and never returns an
// error: incompleteness is communicated through findings.
//
// IsCompliant holds iff no error-level finding exists and at least Scope 1 or
// Scope 2 data is present.
func Validate(scopeReport *emissions.ScopeReport, offsetsReport *offsets.Report) *Report {
	report := &Report{}

	scopeChecks := []struct {
		name    string
		scope   emissions.Scope
		present bool
	}{
		{CheckScope1Coverage, emissions.Scope1, scopeReport.HasScope1()},
		{CheckScope2Coverage, emissions.Scope2, scopeReport.HasScope2()},
		{CheckScope3Coverage, emissions.Scope3, scopeReport.HasScope3()},
	}

	for _, check := range scopeChecks {
		if check.present {
			report.add(Finding{
				CheckName: check.name,
				Status:    StatusPass,
				Message:   fmt.Sprintf("%s data present", check.scope),
			})
			continue
		}
		// Absence is a warning, not an error: not every scope applies to
		// every company.
		report.add(Finding{
			CheckName: check.name,
			Status:    StatusWarning,
			Message:   fmt.Sprintf("no %s records for the reporting period", check.scope),
		})
	}

	// Minimum-scope-coverage rule: a disclosure without Scope 1 or Scope 2
	// data cannot stand, however much Scope 3 it carries.
	if scopeReport.HasScope1() || scopeReport.HasScope2() {
		report.add(Finding{
			CheckName: CheckOverallCoverage,
			Status:    StatusPass,
			Message:   "minimum scope coverage met",
		})
	} else {
		report.add(Finding{
			CheckName: CheckOverallCoverage,
			Status:    StatusError,
			Message:   msgInsufficientData,
		})
	}

	if scopeReport.BiogenicCO2.IsPositive() {
		report.add(Finding{
			CheckName: CheckBiogenicDisclosure,
			Status:    StatusPass,
			Message: fmt.Sprintf("biogenic CO2 of %s disclosed separately from scope totals",
				scopeReport.BiogenicCO2),
		})
	}

	if offsetsReport != nil && offsetsReport.HasOffsets {
		validateOffsets(report, scopeReport, offsetsReport)
	}

	report.IsCompliant = report.ErrorCount == 0 &&
		(scopeReport.HasScope1() || scopeReport.HasScope2())
	return report
}

func validateOffsets(report *Report, scopeReport *emissions.ScopeReport, offsetsReport *offsets.Report) {
	if offsetsReport.AllCertified && offsetsReport.AllVerified {
		report.add(Finding{
			CheckName: CheckOffsetQuality,
			Status:    StatusPass,
			Message:   "all claimed offsets are certified and verified",
		})
	} else {
		report.add(Finding{
			CheckName: CheckOffsetQuality,
			Status:    StatusWarning,
			Message:   "claimed offsets include uncertified or unverified credits",
		})
	}

	if offsetsReport.AllRetired {
		report.add(Finding{
			CheckName: CheckOffsetRetirement,
			Status:    StatusPass,
			Message:   "all claimed offsets are retired",
		})
	} else {
		// Held credits remain tradable and can be claimed twice.
		report.add(Finding{
			CheckName: CheckOffsetRetirement,
			Status:    StatusWarning,
			Message:   "claimed offsets include credits not yet retired",
		})
	}

	if offsetsReport.Total.GreaterThan(scopeReport.TotalGHG) {
		report.add(Finding{
			CheckName: CheckOffsetMagnitude,
			Status:    StatusWarning,
			Message: fmt.Sprintf("claimed offsets (%s) exceed gross emissions (%s)",
				offsetsReport.Total, scopeReport.TotalGHG),
		})
	}
}

func (r *Report) add(finding Finding) {
	r.Findings = append(r.Findings, finding)
	switch finding.Status {
	case StatusWarning:
		r.WarningCount++
	case StatusError:
		r.ErrorCount++
	}
}

// FindingsByStatus filters findings by severity, preserving order.
func (r *Report) FindingsByStatus(status FindingStatus) []Finding {
	var matched []Finding
	for _, finding := range r.Findings {
		if finding.Status == status {
			matched = append(matched, finding)
		}
	}
	return matched
}
