package emissions

import "fmt"

// Scope is the GHG Protocol scope a quantity of emissions is attributed to.
type Scope int

const (
	// Scope1 covers direct emissions from owned or controlled sources.
	Scope1 Scope = iota + 1
	// Scope2 covers indirect emissions from purchased energy.
	Scope2
	// Scope3 covers all other value-chain emissions.
	Scope3
	// ScopeOther covers categories outside the three reporting scopes,
	// such as purchased offsets. Activity records never carry it; it exists
	// so the classifier can map every known category.
	ScopeOther
)

func (s Scope) String() string {
	switch s {
	case Scope1:
		return "scope_1"
	case Scope2:
		return "scope_2"
	case Scope3:
		return "scope_3"
	case ScopeOther:
		return "other"
	default:
		return "unknown"
	}
}

// IsReportable reports whether the scope participates in the Scope 1+2+3 total.
func (s Scope) IsReportable() bool {
	return s == Scope1 || s == Scope2 || s == Scope3
}

// Scope2Method selects between the two parallel Scope 2 accounting methods.
// They are two values of the same underlying activity, not two scopes; the
// caller designates which one feeds the Scope 1+2+3 total.
type Scope2Method int

const (
	Scope2MethodUnspecified Scope2Method = iota
	Scope2MethodLocationBased
	Scope2MethodMarketBased
)

func (m Scope2Method) String() string {
	switch m {
	case Scope2MethodLocationBased:
		return "location_based"
	case Scope2MethodMarketBased:
		return "market_based"
	default:
		return "unspecified"
	}
}

// ParseScope2Method maps a configured method name to its enum value.
func ParseScope2Method(raw string) (Scope2Method, error) {
	switch raw {
	case "location_based":
		return Scope2MethodLocationBased, nil
	case "market_based":
		return Scope2MethodMarketBased, nil
	default:
		return Scope2MethodUnspecified, fmt.Errorf("unknown scope 2 method %q", raw)
	}
}
