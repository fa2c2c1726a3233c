package valueobject

import "fmt"

// PocketType determines how a pocket derives its balance: normal pockets
// aggregate their movements, fixed pockets aggregate their sub-pockets.
type PocketType string

const (
	PocketTypeNormal PocketType = "NORMAL"
	PocketTypeFixed  PocketType = "FIXED"
)

// NewPocketType creates a validated PocketType from a string.
func NewPocketType(s string) (PocketType, error) {
	pt := PocketType(s)
	if pt != PocketTypeNormal && pt != PocketTypeFixed {
		return "", fmt.Errorf("invalid pocket type: %q", s)
	}
	return pt, nil
}

// String returns the string representation of the PocketType.
func (pt PocketType) String() string {
	return string(pt)
}

// IsFixed returns true if the pocket derives its balance from sub-pockets.
func (pt PocketType) IsFixed() bool {
	return pt == PocketTypeFixed
}
