package service

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/model"
	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
)

// DefaultNearMaturityDays is the threshold below which a certificate counts as
// near maturity.
const DefaultNearMaturityDays = 30

var (
	hundred      = decimal.NewFromInt(100)
	daysPerYear  = 365.25
	hoursPerDay  = 24.0
)

// ValuationResult holds everything derived from valuing a certificate at an
// instant. All monetary fields are rounded to 2 decimal places at the point of
// computation; downstream code must not re-round them.
type ValuationResult struct {
	CurrentValue            decimal.Decimal
	AccruedInterest         decimal.Decimal
	TotalInterestAtMaturity decimal.Decimal
	EffectiveYieldPercent   decimal.Decimal
	WithholdingTax          decimal.Decimal
	NetInterest             decimal.Decimal
	NetCurrentValue         decimal.Decimal
	DaysToMaturity          int
	IsMatured               bool
}

// CompoundResult is the output of a single compound-interest computation.
type CompoundResult struct {
	FinalAmount    decimal.Decimal
	InterestEarned decimal.Decimal
}

// ValuationEngine is a domain service that values certificates of deposit:
// current value, accrued interest, maturity status and after-tax figures.
// It is pure: the as-of instant is always an explicit argument and the engine
// never reads the wall clock, so results are reproducible.
type ValuationEngine struct{}

// NewValuationEngine creates a new ValuationEngine.
func NewValuationEngine() *ValuationEngine {
	return &ValuationEngine{}
}

// CurrentValue values the certificate at the given instant.
//
// A certificate without an opening date is treated as opened at asOf, so it is
// fresh: zero days elapsed, zero accrued interest. A maturity date at or before
// the opening date would make the term negative and is rejected as validation
// error rather than silently fed to the compounding formula.
func (e *ValuationEngine) CurrentValue(cert model.Certificate, asOf time.Time) (ValuationResult, error) {
	if err := validateForValuation(cert); err != nil {
		return ValuationResult{}, err
	}

	opened := cert.OpenedAt()
	if opened.IsZero() {
		opened = asOf
	}
	if !cert.MaturityAt().After(opened) {
		return ValuationResult{}, fmt.Errorf("%w: maturity date must be after opening date", model.ErrValidation)
	}

	daysElapsed := clampDays(wholeDaysBetween(opened, asOf))
	totalTermDays := wholeDaysBetween(opened, cert.MaturityAt())
	daysToMaturity := clampDays(wholeDaysBetween(asOf, cert.MaturityAt()))
	isMatured := !asOf.Before(cert.MaturityAt())

	// Once matured the certificate stops earning: value it over the full term,
	// not over the days that kept elapsing afterwards.
	effectiveDays := daysElapsed
	if isMatured {
		effectiveDays = totalTermDays
	}

	annualRate := cert.AnnualRatePercent().Div(hundred)
	current := e.CompoundInterest(cert.Principal(), annualRate, effectiveDays, cert.Compounding())
	atMaturity := e.CompoundInterest(cert.Principal(), annualRate, totalTermDays, cert.Compounding())

	withholdingTax := current.InterestEarned.Mul(cert.TaxRatePercent()).Div(hundred).Round(2)
	netInterest := current.InterestEarned.Sub(withholdingTax)

	return ValuationResult{
		CurrentValue:            current.FinalAmount,
		AccruedInterest:         current.InterestEarned,
		TotalInterestAtMaturity: atMaturity.InterestEarned,
		EffectiveYieldPercent:   atMaturity.InterestEarned.Div(cert.Principal()).Mul(hundred),
		WithholdingTax:          withholdingTax,
		NetInterest:             netInterest,
		NetCurrentValue:         cert.Principal().Add(netInterest).Round(2),
		DaysToMaturity:          daysToMaturity,
		IsMatured:               isMatured,
	}, nil
}

// CompoundInterest computes compound growth of a principal over a number of
// days at the given annual rate (as a decimal fraction, e.g. 0.045) and
// compounding frequency.
//
// Zero or negative day counts return the principal unchanged: a certificate
// valued on its opening day is valid, not malformed. The year fraction uses
// the 365.25-day average year rather than calendar-exact day counts. Both
// outputs are rounded half-up to 2 decimal places and are the authoritative
// values; callers must not re-round figures derived from them.
func (e *ValuationEngine) CompoundInterest(
	principal, annualRate decimal.Decimal,
	days int,
	frequency valueobject.CompoundingFrequency,
) CompoundResult {
	if days <= 0 {
		return CompoundResult{FinalAmount: principal, InterestEarned: decimal.Zero}
	}

	periodsPerYear := float64(frequency.PeriodsPerYear())
	years := float64(days) / daysPerYear
	rate := annualRate.InexactFloat64()
	p := principal.InexactFloat64()

	finalAmount := p * math.Pow(1+rate/periodsPerYear, periodsPerYear*years)

	return CompoundResult{
		FinalAmount:    decimal.NewFromFloat(finalAmount).Round(2),
		InterestEarned: decimal.NewFromFloat(finalAmount - p).Round(2),
	}
}

// EarlyWithdrawalPenalty returns the penalty charged for withdrawing at the
// given instant: the interest accrued so far times the configured penalty rate.
// Withdrawing at or after maturity, or from a certificate without a configured
// penalty, costs nothing.
func (e *ValuationEngine) EarlyWithdrawalPenalty(cert model.Certificate, withdrawalAt time.Time) (decimal.Decimal, error) {
	if !cert.HasPenalty() || !withdrawalAt.Before(cert.MaturityAt()) {
		return decimal.Zero, nil
	}

	valuation, err := e.CurrentValue(cert, withdrawalAt)
	if err != nil {
		return decimal.Zero, err
	}

	return valuation.AccruedInterest.Mul(cert.PenaltyPercent()).Div(hundred).Round(2), nil
}

// EarlyWithdrawalAmount returns what the depositor receives when withdrawing at
// the given instant: principal plus the interest surviving the penalty, net of
// withholding tax. Tax applies only to the surviving interest; the penalty
// itself is not taxed.
func (e *ValuationEngine) EarlyWithdrawalAmount(cert model.Certificate, withdrawalAt time.Time) (decimal.Decimal, error) {
	valuation, err := e.CurrentValue(cert, withdrawalAt)
	if err != nil {
		return decimal.Zero, err
	}

	penalty, err := e.EarlyWithdrawalPenalty(cert, withdrawalAt)
	if err != nil {
		return decimal.Zero, err
	}

	survivingInterest := valuation.AccruedInterest.Sub(penalty)
	if survivingInterest.IsNegative() {
		survivingInterest = decimal.Zero
	}

	taxFactor := decimal.NewFromInt(1).Sub(cert.TaxRatePercent().Div(hundred))
	return cert.Principal().Add(survivingInterest.Mul(taxFactor)).Round(2), nil
}

// IsNearMaturity returns true if the certificate matures within thresholdDays
// of asOf. A certificate exactly at maturity is matured, not near maturity.
func (e *ValuationEngine) IsNearMaturity(cert model.Certificate, asOf time.Time, thresholdDays int) bool {
	daysToMaturity := clampDays(wholeDaysBetween(asOf, cert.MaturityAt()))
	return daysToMaturity > 0 && daysToMaturity <= thresholdDays
}

func validateForValuation(cert model.Certificate) error {
	if cert.Principal().LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: principal must be positive", model.ErrValidation)
	}
	if cert.AnnualRatePercent().LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: annual interest rate must be positive", model.ErrValidation)
	}
	if cert.MaturityAt().IsZero() {
		return fmt.Errorf("%w: maturity date is required", model.ErrValidation)
	}
	return nil
}

// wholeDaysBetween returns the number of complete 24-hour days from one
// instant to another. Partial days are floored away; the result is negative
// when to precedes from by at least a day.
func wholeDaysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / hoursPerDay))
}

func clampDays(days int) int {
	if days < 0 {
		return 0
	}
	return days
}
