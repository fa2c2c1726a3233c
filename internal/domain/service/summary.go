package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
)

var twelve = decimal.NewFromInt(12)

// CertificateSummary is the presentation view of a valued certificate: a
// status classification plus return figures, derived entirely from the
// valuation engine's output.
type CertificateSummary struct {
	Status              valueobject.CertificateStatus
	Valuation           ValuationResult
	TotalReturn         decimal.Decimal
	NetReturn           decimal.Decimal
	ReturnPercentage    decimal.Decimal
	NetReturnPercentage decimal.Decimal
	MonthlyRatePercent  decimal.Decimal
}

// SummaryBuilder derives certificate summaries for presentation. It adds no
// arithmetic of its own beyond return deltas; the valuation engine remains the
// single source of numeric truth.
type SummaryBuilder struct {
	engine *ValuationEngine
}

// NewSummaryBuilder creates a SummaryBuilder on top of the given engine.
func NewSummaryBuilder(engine *ValuationEngine) *SummaryBuilder {
	return &SummaryBuilder{engine: engine}
}

// Build summarizes the certificate at the given instant. Status precedence is
// matured over near-maturity over active.
func (b *SummaryBuilder) Build(cert model.Certificate, asOf time.Time) (CertificateSummary, error) {
	valuation, err := b.engine.CurrentValue(cert, asOf)
	if err != nil {
		return CertificateSummary{}, err
	}

	status := valueobject.CertificateStatusActive
	switch {
	case valuation.IsMatured:
		status = valueobject.CertificateStatusMatured
	case b.engine.IsNearMaturity(cert, asOf, DefaultNearMaturityDays):
		status = valueobject.CertificateStatusNearMaturity
	}

	totalReturn := valuation.CurrentValue.Sub(cert.Principal())
	netReturn := valuation.NetCurrentValue.Sub(cert.Principal())

	return CertificateSummary{
		Status:              status,
		Valuation:           valuation,
		TotalReturn:         totalReturn,
		NetReturn:           netReturn,
		ReturnPercentage:    totalReturn.Div(cert.Principal()).Mul(hundred),
		NetReturnPercentage: netReturn.Div(cert.Principal()).Mul(hundred),
		MonthlyRatePercent:  cert.AnnualRatePercent().Div(twelve),
	}, nil
}
