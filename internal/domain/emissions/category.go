package emissions

import (
	"fmt"
	"sort"

	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

// ActivityCategory identifies the kind of activity an emission record was
// derived from.
type ActivityCategory string

// Known activity categories
const (
	CategoryStationaryCombustion ActivityCategory = "stationary_combustion"
	CategoryMobileCombustion     ActivityCategory = "mobile_combustion"
	CategoryFugitiveRefrigerants ActivityCategory = "fugitive_refrigerants"
	CategoryProcessEmissions     ActivityCategory = "process_emissions"
	CategoryPurchasedElectricity ActivityCategory = "purchased_electricity"
	CategoryPurchasedHeatSteam   ActivityCategory = "purchased_heat_steam"
	CategoryBusinessTravel       ActivityCategory = "business_travel"
	CategoryEmployeeCommuting    ActivityCategory = "employee_commuting"
	CategoryPurchasedGoods       ActivityCategory = "purchased_goods_services"
	CategoryUpstreamTransport    ActivityCategory = "upstream_transport"
	CategoryFuelAndEnergyRelated ActivityCategory = "fuel_and_energy_related"
	CategoryWasteGenerated       ActivityCategory = "waste_generated"
	CategoryCarbonOffsets        ActivityCategory = "carbon_offsets"
)

// scopeByCategory is the single, exhaustive source of truth for scope
// classification. The mapping is a closed table: an unrecognized category is
// surfaced as an error, never defaulted — silent misclassification is the
// most damaging failure mode a compliance engine can have.
var scopeByCategory = map[ActivityCategory]Scope{
	CategoryStationaryCombustion: Scope1,
	CategoryMobileCombustion:     Scope1,
	CategoryFugitiveRefrigerants: Scope1,
	CategoryProcessEmissions:     Scope1,
	CategoryPurchasedElectricity: Scope2,
	CategoryPurchasedHeatSteam:   Scope2,
	CategoryBusinessTravel:       Scope3,
	CategoryEmployeeCommuting:    Scope3,
	CategoryPurchasedGoods:       Scope3,
	CategoryUpstreamTransport:    Scope3,
	CategoryFuelAndEnergyRelated: Scope3,
	CategoryWasteGenerated:       Scope3,
	CategoryCarbonOffsets:        ScopeOther,
}

// Classify maps an activity category to its scope. Returns an
// UNKNOWN_ACTIVITY_CATEGORY error for anything outside the table.
func Classify(category ActivityCategory) (Scope, error) {
	scope, ok := scopeByCategory[category]
	if !ok {
		return 0, errors.NewDomainError(
			errors.CodeUnknownActivityCategory,
			fmt.Sprintf("activity category %q is not in the scope table", category),
		)
	}
	return scope, nil
}

// ParseActivityCategory validates a raw string against the category table.
func ParseActivityCategory(raw string) (ActivityCategory, error) {
	category := ActivityCategory(raw)
	if _, ok := scopeByCategory[category]; !ok {
		return "", errors.NewDomainError(
			errors.CodeUnknownActivityCategory,
			fmt.Sprintf("activity category %q is not in the scope table", raw),
		)
	}
	return category, nil
}

// KnownCategories returns every category in the table, sorted for stable output.
func KnownCategories() []ActivityCategory {
	categories := make([]ActivityCategory, 0, len(scopeByCategory))
	for category := range scopeByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

func (c ActivityCategory) String() string {
	return string(c)
}
