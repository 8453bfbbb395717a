package energy

import (
	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
)

// Report is the energy-mix disclosure for one reporting period. All totals
// are carried in both MWh and GJ (EnergyAmount exposes both views) because
// different disclosure consumers expect different units.
type Report struct {
	Electricity values.EnergyAmount `json:"electricity"`
	Fuel        values.EnergyAmount `json:"fuel"`
	Steam       values.EnergyAmount `json:"steam"`

	Renewable    values.EnergyAmount `json:"renewable"`
	NonRenewable values.EnergyAmount `json:"non_renewable"`

	Total               values.EnergyAmount `json:"total"`
	RenewablePercentage values.Percentage   `json:"renewable_percentage"`

	RecordCount int `json:"record_count"`
}

// BuildReport converts every record to MWh, sums by source, and splits the
// grand total into renewable and non-renewable energy. An empty collection is
// a valid disclosure of zero consumption, reported with 0% renewable.
func BuildReport(records []Record) (*Report, error) {
	report := &Report{
		Electricity:  values.ZeroEnergy(),
		Fuel:         values.ZeroEnergy(),
		Steam:        values.ZeroEnergy(),
		Renewable:    values.ZeroEnergy(),
		NonRenewable: values.ZeroEnergy(),
		Total:        values.ZeroEnergy(),
	}

	for _, record := range records {
		amount, err := ConvertEnergy(record.Quantity, record.Unit)
		if err != nil {
			return nil, err
		}

		switch record.Source {
		case SourceElectricity:
			report.Electricity = report.Electricity.Add(amount)
		case SourceFuel:
			report.Fuel = report.Fuel.Add(amount)
		case SourceSteam:
			report.Steam = report.Steam.Add(amount)
		}

		renewable, err := record.IsRenewable()
		if err != nil {
			return nil, err
		}
		if renewable {
			report.Renewable = report.Renewable.Add(amount)
		} else {
			report.NonRenewable = report.NonRenewable.Add(amount)
		}

		report.Total = report.Total.Add(amount)
		report.RecordCount++
	}

	report.RenewablePercentage = values.Share(report.Renewable.MWh(), report.Total.MWh())
	return report, nil
}
