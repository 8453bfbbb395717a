package compliance

// FindingStatus is the severity of one validation finding.
type FindingStatus int

const (
	StatusPass FindingStatus = iota
	StatusWarning
	StatusError
)

func (s FindingStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

func (s FindingStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is one rule's outcome. Findings carry data-completeness gaps and
// quality observations; they are never raised as errors, because legitimately
// incomplete company data must still produce a report.
type Finding struct {
	CheckName string        `json:"check_name"`
	Status    FindingStatus `json:"status"`
	Message   string        `json:"message"`
}
