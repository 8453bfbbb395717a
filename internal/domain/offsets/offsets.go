package offsets

import (
	"github.com/google/uuid"

	"github.com/verdanta/emissions-disclosure-engine/internal/domain/values"
)

// OffsetType identifies the project category a purchased credit came from.
type OffsetType string

// Known offset project types
const (
	TypeReforestation     OffsetType = "reforestation"
	TypeAfforestation     OffsetType = "afforestation"
	TypeDirectAirCapture  OffsetType = "direct_air_capture"
	TypeSoilSequestration OffsetType = "soil_carbon_sequestration"
	TypeBiochar           OffsetType = "biochar"
	TypeEnhancedWeather   OffsetType = "enhanced_weathering"
	TypeRenewableEnergy   OffsetType = "renewable_energy"
	TypeCookstoves        OffsetType = "efficient_cookstoves"
	TypeMethaneCapture    OffsetType = "methane_capture"
	TypeAvoidedDeforest   OffsetType = "avoided_deforestation"
)

// removalTypes is the fixed membership set deciding removal vs avoidance.
// Removals actively extract CO2 from the atmosphere; everything outside the
// set prevents emissions that would otherwise have occurred and is disclosed
// separately as avoided emissions.
var removalTypes = map[OffsetType]bool{
	TypeReforestation:     true,
	TypeAfforestation:     true,
	TypeDirectAirCapture:  true,
	TypeSoilSequestration: true,
	TypeBiochar:           true,
	TypeEnhancedWeather:   true,
}

// IsRemoval reports whether the offset type is in the removal set.
func (t OffsetType) IsRemoval() bool {
	return removalTypes[t]
}

func (t OffsetType) String() string {
	return string(t)
}

// RetirementStatus tracks whether a credit has been retired against a claim
// or is still held (and therefore tradable — a double-counting risk).
type RetirementStatus string

const (
	StatusRetired RetirementStatus = "retired"
	StatusHeld    RetirementStatus = "held"
)

// OffsetRecord is one purchased credit line for a reporting period.
type OffsetRecord struct {
	ID                    uuid.UUID
	Type                  OffsetType
	Amount                values.CO2e
	VintageYear           int
	CertificationStandard string // empty when uncertified
	VerifiedBy            string // empty when unverified
	RetirementStatus      RetirementStatus
}

// IsCertified reports whether the credit carries a certification standard.
func (r OffsetRecord) IsCertified() bool {
	return r.CertificationStandard != ""
}

// IsVerified reports whether a third party verified the credit.
func (r OffsetRecord) IsVerified() bool {
	return r.VerifiedBy != ""
}

// IsRetired reports whether the credit has been retired.
func (r OffsetRecord) IsRetired() bool {
	return r.RetirementStatus == StatusRetired
}
