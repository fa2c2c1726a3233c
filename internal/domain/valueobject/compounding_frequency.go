package valueobject

import "fmt"

// CompoundingFrequency represents how often a certificate of deposit compounds
// interest. This is an immutable value object.
type CompoundingFrequency string

const (
	CompoundingDaily     CompoundingFrequency = "DAILY"
	CompoundingMonthly   CompoundingFrequency = "MONTHLY"
	CompoundingQuarterly CompoundingFrequency = "QUARTERLY"
	CompoundingAnnually  CompoundingFrequency = "ANNUALLY"
)

// validFrequencies contains all valid compounding frequencies for validation.
var validFrequencies = map[CompoundingFrequency]bool{
	CompoundingDaily:     true,
	CompoundingMonthly:   true,
	CompoundingQuarterly: true,
	CompoundingAnnually:  true,
}

// NewCompoundingFrequency creates a validated CompoundingFrequency from a string.
func NewCompoundingFrequency(s string) (CompoundingFrequency, error) {
	f := CompoundingFrequency(s)
	if !validFrequencies[f] {
		return "", fmt.Errorf("invalid compounding frequency: %q", s)
	}
	return f, nil
}

// String returns the string representation of the CompoundingFrequency.
func (f CompoundingFrequency) String() string {
	return string(f)
}

// PeriodsPerYear returns the number of compounding periods per year.
// An unrecognized frequency falls back to monthly compounding rather than
// erroring, so certificates reconstructed from stale records still value.
func (f CompoundingFrequency) PeriodsPerYear() int {
	switch f {
	case CompoundingDaily:
		return 365
	case CompoundingQuarterly:
		return 4
	case CompoundingAnnually:
		return 1
	case CompoundingMonthly:
		return 12
	default:
		return 12
	}
}
