package energy

import (
	"fmt"

	"github.com/verdanta/emissions-disclosure-engine/internal/errors"
)

// FuelType identifies a combusted fuel for renewable/non-renewable
// classification.
type FuelType string

// Known fuel types
const (
	FuelNaturalGas FuelType = "natural_gas"
	FuelDiesel     FuelType = "diesel"
	FuelPetrol     FuelType = "petrol"
	FuelCoal       FuelType = "coal"
	FuelLPG        FuelType = "lpg"
	FuelHeatingOil FuelType = "heating_oil"

	FuelWoodChips   FuelType = "wood_chips"
	FuelWoodPellets FuelType = "wood_pellets"
	FuelBiogas      FuelType = "biogas"
	FuelBiodiesel   FuelType = "biodiesel"
	FuelBioethanol  FuelType = "bioethanol"
)

// renewableByFuel is the static renewability classification. Biomass-derived
// fuels are renewable; fossil fuels are not. The table is closed for the same
// reason the scope table is: an unknown fuel must not silently land in either
// bucket of the energy mix.
var renewableByFuel = map[FuelType]bool{
	FuelNaturalGas: false,
	FuelDiesel:     false,
	FuelPetrol:     false,
	FuelCoal:       false,
	FuelLPG:        false,
	FuelHeatingOil: false,

	FuelWoodChips:   true,
	FuelWoodPellets: true,
	FuelBiogas:      true,
	FuelBiodiesel:   true,
	FuelBioethanol:  true,
}

// IsRenewableFuel classifies a fuel via the static table.
func IsRenewableFuel(fuel FuelType) (bool, error) {
	renewable, ok := renewableByFuel[fuel]
	if !ok {
		return false, errors.NewDomainError(
			errors.CodeUnknownFuelType,
			fmt.Sprintf("fuel type %q is not in the renewability table", fuel),
		)
	}
	return renewable, nil
}

func (f FuelType) String() string {
	return string(f)
}
