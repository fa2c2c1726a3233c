package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdramirezl/finance-app-sub001/internal/domain/valueobject"
	"github.com/jdramirezl/finance-app-sub001/pkg/money"
)

// Certificate is an immutable snapshot of a certificate of deposit: principal,
// annual rate, term and compounding configuration. The valuation engine only
// reads it; all mutation happens in the CRUD layer that owns persistence.
type Certificate struct {
	openedAt          time.Time
	maturityAt        time.Time
	principal         decimal.Decimal
	annualRatePercent decimal.Decimal
	penaltyPercent    decimal.Decimal
	taxRatePercent    decimal.Decimal
	name              string
	compounding       valueobject.CompoundingFrequency
	currency          money.Currency
	id                uuid.UUID
	accountID         uuid.UUID
}

// NewCertificate creates a validated Certificate.
// The opened instant may be zero: records created before the tracker stored an
// opening date carry none, and the valuation engine treats them as opened at
// the as-of instant (zero days elapsed).
func NewCertificate(
	accountID uuid.UUID,
	name string,
	principal decimal.Decimal,
	annualRatePercent decimal.Decimal,
	compounding valueobject.CompoundingFrequency,
	openedAt time.Time,
	maturityAt time.Time,
	penaltyPercent decimal.Decimal,
	taxRatePercent decimal.Decimal,
	currency money.Currency,
) (Certificate, error) {
	if accountID == uuid.Nil {
		return Certificate{}, fmt.Errorf("%w: account ID is required", ErrValidation)
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return Certificate{}, fmt.Errorf("%w: principal must be positive", ErrValidation)
	}
	if annualRatePercent.LessThanOrEqual(decimal.Zero) {
		return Certificate{}, fmt.Errorf("%w: annual interest rate must be positive", ErrValidation)
	}
	if maturityAt.IsZero() {
		return Certificate{}, fmt.Errorf("%w: maturity date is required", ErrValidation)
	}
	if !openedAt.IsZero() && !maturityAt.After(openedAt) {
		return Certificate{}, fmt.Errorf("%w: maturity date must be after opening date", ErrValidation)
	}
	if penaltyPercent.IsNegative() {
		return Certificate{}, fmt.Errorf("%w: early withdrawal penalty must not be negative", ErrValidation)
	}
	if taxRatePercent.IsNegative() {
		return Certificate{}, fmt.Errorf("%w: withholding tax rate must not be negative", ErrValidation)
	}

	return Certificate{
		id:                uuid.New(),
		accountID:         accountID,
		name:              name,
		principal:         principal,
		annualRatePercent: annualRatePercent,
		compounding:       compounding,
		openedAt:          openedAt,
		maturityAt:        maturityAt,
		penaltyPercent:    penaltyPercent,
		taxRatePercent:    taxRatePercent,
		currency:          currency,
	}, nil
}

// ReconstructCertificate recreates a Certificate from persistence (no validation).
func ReconstructCertificate(
	id, accountID uuid.UUID,
	name string,
	principal decimal.Decimal,
	annualRatePercent decimal.Decimal,
	compounding valueobject.CompoundingFrequency,
	openedAt time.Time,
	maturityAt time.Time,
	penaltyPercent decimal.Decimal,
	taxRatePercent decimal.Decimal,
	currency money.Currency,
) Certificate {
	return Certificate{
		id:                id,
		accountID:         accountID,
		name:              name,
		principal:         principal,
		annualRatePercent: annualRatePercent,
		compounding:       compounding,
		openedAt:          openedAt,
		maturityAt:        maturityAt,
		penaltyPercent:    penaltyPercent,
		taxRatePercent:    taxRatePercent,
		currency:          currency,
	}
}

// Accessors
func (c Certificate) ID() uuid.UUID                                 { return c.id }
func (c Certificate) AccountID() uuid.UUID                          { return c.accountID }
func (c Certificate) Name() string                                  { return c.name }
func (c Certificate) Principal() decimal.Decimal                    { return c.principal }
func (c Certificate) AnnualRatePercent() decimal.Decimal            { return c.annualRatePercent }
func (c Certificate) Compounding() valueobject.CompoundingFrequency { return c.compounding }
func (c Certificate) OpenedAt() time.Time                           { return c.openedAt }
func (c Certificate) MaturityAt() time.Time                         { return c.maturityAt }
func (c Certificate) PenaltyPercent() decimal.Decimal               { return c.penaltyPercent }
func (c Certificate) TaxRatePercent() decimal.Decimal               { return c.taxRatePercent }
func (c Certificate) Currency() money.Currency                      { return c.currency }

// HasPenalty returns true if an early withdrawal penalty is configured.
func (c Certificate) HasPenalty() bool {
	return c.penaltyPercent.IsPositive()
}

// PrincipalMoney returns the principal as a Money value in the certificate's currency.
func (c Certificate) PrincipalMoney() money.Money {
	return money.New(c.principal, c.currency)
}
