package offsets

import (
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
)

// Report splits a period's purchased credits into removals and avoided
// emissions with AND-reduced quality flags.
//
// An empty input yields vacuously-true quality flags; HasOffsets lets callers
// distinguish "no offsets claimed" from "perfect quality".
type Report struct {
	Removals         values.CO2e `json:"removals"`
	AvoidedEmissions values.CO2e `json:"avoided_emissions"`
	Total            values.CO2e `json:"total"`

	RemovalCount   int `json:"removal_count"`
	AvoidanceCount int `json:"avoidance_count"`

	AllCertified bool `json:"all_certified"`
	AllVerified  bool `json:"all_verified"`
	AllRetired   bool `json:"all_retired"`

	HasOffsets bool `json:"has_offsets"`
}

// Classify buckets credits by the removal-type membership set and reduces the
// per-record quality attributes over the whole input.
func Classify(records []OffsetRecord) *Report {
	report := &Report{
		Removals:         values.ZeroCO2e(),
		AvoidedEmissions: values.ZeroCO2e(),
		Total:            values.ZeroCO2e(),
		AllCertified:     true,
		AllVerified:      true,
		AllRetired:       true,
	}

	for _, record := range records {
		if record.Type.IsRemoval() {
			report.Removals = report.Removals.Add(record.Amount)
			report.RemovalCount++
		} else {
			report.AvoidedEmissions = report.AvoidedEmissions.Add(record.Amount)
			report.AvoidanceCount++
		}
		report.Total = report.Total.Add(record.Amount)

		report.AllCertified = report.AllCertified && record.IsCertified()
		report.AllVerified = report.AllVerified && record.IsVerified()
		report.AllRetired = report.AllRetired && record.IsRetired()
	}

	report.HasOffsets = len(records) > 0
	return report
}
