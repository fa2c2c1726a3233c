package valueobject

// CertificateStatus is the presentation classification of a certificate of
// deposit derived from its valuation: matured wins over near-maturity, which
// wins over active.
type CertificateStatus string

const (
	CertificateStatusActive       CertificateStatus = "ACTIVE"
	CertificateStatusNearMaturity CertificateStatus = "NEAR_MATURITY"
	CertificateStatusMatured      CertificateStatus = "MATURED"
)

// String returns the string representation of the CertificateStatus.
func (s CertificateStatus) String() string {
	return string(s)
}
