package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubPocket is a savings goal inside a fixed pocket: a target amount spread
// over a number of months. Its balance is the running contribution total and
// may go negative when a contribution was missed (debt).
type SubPocket struct {
	name              string
	valueTotal        decimal.Decimal
	balance           decimal.Decimal
	periodicityMonths int
	enabled           bool
	id                uuid.UUID
	pocketID          uuid.UUID
}

// NewSubPocket creates a validated SubPocket with a zero balance, enabled.
func NewSubPocket(
	pocketID uuid.UUID,
	name string,
	valueTotal decimal.Decimal,
	periodicityMonths int,
) (SubPocket, error) {
	if pocketID == uuid.Nil {
		return SubPocket{}, fmt.Errorf("%w: pocket ID is required", ErrValidation)
	}
	if name == "" {
		return SubPocket{}, fmt.Errorf("%w: sub-pocket name is required", ErrValidation)
	}
	if valueTotal.LessThanOrEqual(decimal.Zero) {
		return SubPocket{}, fmt.Errorf("%w: target amount must be positive", ErrValidation)
	}
	if periodicityMonths <= 0 {
		return SubPocket{}, fmt.Errorf("%w: periodicity months must be positive", ErrValidation)
	}

	return SubPocket{
		id:                uuid.New(),
		pocketID:          pocketID,
		name:              name,
		valueTotal:        valueTotal,
		periodicityMonths: periodicityMonths,
		balance:           decimal.Zero,
		enabled:           true,
	}, nil
}

// ReconstructSubPocket recreates a SubPocket from persistence (no validation).
func ReconstructSubPocket(
	id, pocketID uuid.UUID,
	name string,
	valueTotal decimal.Decimal,
	periodicityMonths int,
	balance decimal.Decimal,
	enabled bool,
) SubPocket {
	return SubPocket{
		id:                id,
		pocketID:          pocketID,
		name:              name,
		valueTotal:        valueTotal,
		periodicityMonths: periodicityMonths,
		balance:           balance,
		enabled:           enabled,
	}
}

// Accessors
func (s SubPocket) ID() uuid.UUID               { return s.id }
func (s SubPocket) PocketID() uuid.UUID         { return s.pocketID }
func (s SubPocket) Name() string                { return s.name }
func (s SubPocket) ValueTotal() decimal.Decimal { return s.valueTotal }
func (s SubPocket) PeriodicityMonths() int      { return s.periodicityMonths }
func (s SubPocket) Balance() decimal.Decimal    { return s.balance }
func (s SubPocket) Enabled() bool               { return s.enabled }

// InDebt returns true if the running balance is negative, meaning a past
// contribution was missed and must be caught up on top of the normal installment.
func (s SubPocket) InDebt() bool {
	return s.balance.IsNegative()
}
